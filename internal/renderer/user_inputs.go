package renderer

import "skyball/internal/ansii"

type UiAction rune

const (
	Unknown    UiAction = iota
	Quit       UiAction = 81 // 'Q'
	Left       UiAction = 65
	Right      UiAction = 68
	Pause      UiAction = 80
	Restart    UiAction = 82
	LeftArrow  UiAction = 8592
	RightArrow UiAction = 8594
	Click      UiAction = -1
)

const (
	esc   = 27
	ctrlC = 3
)

// Input is one decoded keypress or mouse press. Cell is only set for Click.
type Input struct {
	Action UiAction
	Cell   ansii.Offset
}

func ProcessInput(rawInput rune) (action UiAction) {
	inputVal := int(rawInput)
	// Convert to UpperCase
	if inputVal >= 97 && inputVal <= 122 {
		inputVal = inputVal - 32
	}
	switch a := UiAction(inputVal); a {
	case Quit, Left, Right, Pause, Restart:
		return a
	}
	if rawInput == ctrlC {
		return Quit
	}
	return Unknown
}

// ParseInput decodes one read from a raw terminal. A read can hold several
// keys; arrows and xterm mouse reports (ESC [ M b x y) arrive as escape
// sequences. Unknown bytes are skipped.
func ParseInput(buf []byte) []Input {
	var out []Input
	for i := 0; i < len(buf); {
		if buf[i] != esc {
			if a := ProcessInput(rune(buf[i])); a != Unknown {
				out = append(out, Input{Action: a})
			}
			i++
			continue
		}

		if i+2 >= len(buf) || buf[i+1] != '[' {
			i++
			continue
		}

		switch buf[i+2] {
		case 'C':
			out = append(out, Input{Action: RightArrow})
			i += 3
		case 'D':
			out = append(out, Input{Action: LeftArrow})
			i += 3
		case 'M':
			if i+5 >= len(buf) {
				return out
			}
			button := buf[i+3] - 32
			cell := ansii.Offset{X: int(buf[i+4]) - 32, Y: int(buf[i+5]) - 32}
			// Left press only: no release, wheel or motion reports.
			if button&3 == 0 && button&(32|64) == 0 {
				out = append(out, Input{Action: Click, Cell: cell})
			}
			i += 6
		default:
			i += 3
		}
	}
	return out
}
