// Package model defines shared data structures.
package model

import "fmt"

// Mode selects how the conversion direction is chosen for a session.
type Mode int

// Session modes.
const (
	ModeBinToDec Mode = iota
	ModeDecToBin
	ModeMixed
)

// ParseMode converts a flag/config value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "b2d":
		return ModeBinToDec, nil
	case "d2b":
		return ModeDecToBin, nil
	case "mixed":
		return ModeMixed, nil
	}
	return 0, fmt.Errorf("unknown mode %q (expected b2d, d2b, or mixed)", s)
}

// String implements fmt.Stringer using the flag spelling.
func (m Mode) String() string {
	switch m {
	case ModeBinToDec:
		return "b2d"
	case ModeDecToBin:
		return "d2b"
	case ModeMixed:
		return "mixed"
	}
	return "unknown"
}

// Label returns a human-readable mode name for the UI.
func (m Mode) Label() string {
	switch m {
	case ModeBinToDec:
		return "binary → decimal"
	case ModeDecToBin:
		return "decimal → binary"
	case ModeMixed:
		return "mixed"
	}
	return "unknown"
}

// Direction is the conversion direction of a single round.
type Direction int

// Round directions.
const (
	BinToDec Direction = iota
	DecToBin
)

// Config defines the settings of one session, immutable while it runs.
type Config struct {
	Mode            Mode
	Bits            int
	DurationSeconds int
}

// MaxValue returns the largest value representable in Bits bits.
func (c Config) MaxValue() int {
	return 1<<c.Bits - 1
}

// Round is one challenge: a target value and a conversion direction.
type Round struct {
	Value     int
	Direction Direction
}

// BitWidths lists the supported bit widths.
var BitWidths = []int{4, 8, 12}

// ValidBits reports whether bits is a supported width.
func ValidBits(bits int) bool {
	for _, b := range BitWidths {
		if b == bits {
			return true
		}
	}
	return false
}
