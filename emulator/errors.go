package emulator

import "errors"

var (
	ErrArchUnsupported = errors.New("architecture unsupported")
	ErrOutOfRange      = errors.New("address out of range")
	ErrAccessSize      = errors.New("access size unsupported")
)
