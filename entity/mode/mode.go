package mode

import "fmt"

// Mode controls how the option file grammar treats lines that hold text but
// no usable key:value split.
type Mode uint8

const (
	// Strict reports such lines as format errors.
	Strict Mode = iota
	// Lenient drops them with a warning.
	Lenient
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "strict":
		return Strict, nil
	case "lenient":
		return Lenient, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Strict:
		return "strict"
	case Lenient:
		return "lenient"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
