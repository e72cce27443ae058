package emulator

type Arch int

const (
	ARCH_UNKNOWN Arch = iota
	ARCH_RV32
)

func (a Arch) String() string {
	switch a {
	case ARCH_RV32:
		return "rv32"
	default:
		return "unknown"
	}
}
