package mode

import "fmt"

type Mode uint8

const (
	Refraction Mode = iota
	Variation
)

func UnmarshalText(text string) (Mode, error) {
	switch text {
	case "r":
		return Refraction, nil
	case "v":
		return Variation, nil
	default:
		return 0, fmt.Errorf("invalid mode: %q", text)
	}
}

func (m Mode) String() string {
	switch m {
	case Refraction:
		return "refraction"
	case Variation:
		return "variation"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}
