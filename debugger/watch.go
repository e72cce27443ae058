package debugger

import "fmt"

type WatchKind int

const (
	WatchKind_Write WatchKind = iota
	WatchKind_Read
	WatchKind_Access
)

func (k WatchKind) String() string {
	switch k {
	case WatchKind_Write:
		return "write"
	case WatchKind_Read:
		return "read"
	case WatchKind_Access:
		return "access"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Accepts reports whether an access in the given direction is of interest to
// a watchpoint of kind k.
func (k WatchKind) Accepts(isWrite bool) bool {
	switch k {
	case WatchKind_Read:
		return !isWrite
	case WatchKind_Write:
		return isWrite
	default:
		return true
	}
}

// Watchpoint monitors the half-open byte range [Addr, Addr+Len).
type Watchpoint struct {
	Addr uint32
	Len  uint32
	Kind WatchKind
}

func (w Watchpoint) String() string {
	return fmt.Sprintf("%08X+%d %s", w.Addr, w.Len, w.Kind)
}

// Trigger is a pending watchpoint hit. Addr is the start address of the
// access that hit, not the first overlapping byte.
type Trigger struct {
	Kind WatchKind
	Addr uint32
}

func (t Trigger) String() string {
	return fmt.Sprintf("%s watchpoint hit at %08X", t.Kind, t.Addr)
}

type WatchManager interface {
	AddWatchpoint(addr, size uint32, kind WatchKind) error
	RemoveWatchpoint(addr, size uint32, kind WatchKind) error
	ClearWatchpoints()
	Watchpoints() []Watchpoint
	Trigger() (Trigger, bool)
	ClearTrigger()
}
