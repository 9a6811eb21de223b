package explorer

import "fmt"

// Kind tags an Event.
type Kind int

const (
	ButtonDown Kind = iota
	ButtonUp
	Motion
	KeyDown
	KeyUp
	Quit
)

func (k Kind) String() string {
	switch k {
	case ButtonDown:
		return "button_down"
	case ButtonUp:
		return "button_up"
	case Motion:
		return "motion"
	case KeyDown:
		return "key_down"
	case KeyUp:
		return "key_up"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Key identifies the keys the explorer reacts to.
type Key int

const (
	KeyOther Key = iota
	// KeyModifier must be held while KeyUndo is released to undo.
	KeyModifier
	KeyUndo
)

// Event is a normalized input event. X and Y are buffer pixel coordinates
// and only set for the mouse kinds; Key is only set for the key kinds.
type Event struct {
	Kind Kind
	X, Y int
	Key  Key
}

func Down(x, y int) Event { return Event{Kind: ButtonDown, X: x, Y: y} }
func Up(x, y int) Event   { return Event{Kind: ButtonUp, X: x, Y: y} }
func Move(x, y int) Event { return Event{Kind: Motion, X: x, Y: y} }
func Press(k Key) Event   { return Event{Kind: KeyDown, Key: k} }
func Release(k Key) Event { return Event{Kind: KeyUp, Key: k} }
func QuitEvent() Event    { return Event{Kind: Quit} }
