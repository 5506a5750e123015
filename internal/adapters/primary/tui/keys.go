package tui

// Key is a decoded navigation action
type Key int

const (
	KeyNone Key = iota
	KeyQuit
	KeyNext
	KeyPrev
	KeyFirst
	KeyLast
	KeyReload
)

// Control bytes read from the raw terminal
const (
	byteCtrlC = 0x03
	byteCtrlD = 0x04
	byteEsc   = 0x1b
)

// decodeKey maps one raw input chunk to a navigation action. Arrow keys
// arrive as three-byte CSI sequences; a lone escape byte quits. Unrecognized
// input decodes to KeyNone and is ignored by the presenter.
func decodeKey(buf []byte) Key {
	if len(buf) == 0 {
		return KeyNone
	}

	switch buf[0] {
	case 'q', byteCtrlC, byteCtrlD:
		return KeyQuit
	case 'l', 'n', ' ':
		return KeyNext
	case 'h', 'p':
		return KeyPrev
	case 'g':
		return KeyFirst
	case 'G':
		return KeyLast
	case 'r':
		return KeyReload
	case byteEsc:
		if len(buf) >= 3 && buf[1] == '[' {
			switch buf[2] {
			case 'C': // right arrow
				return KeyNext
			case 'D': // left arrow
				return KeyPrev
			case 'H': // home
				return KeyFirst
			case 'F': // end
				return KeyLast
			}
			return KeyNone
		}
		return KeyQuit
	}

	return KeyNone
}
