package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/starvingfish/systems"
)

// CommandKind identifies what an input event asks for.
type CommandKind uint8

const (
	CommandNone CommandKind = iota
	CommandQuit
	CommandTap
	CommandOrient
	CommandResize
	CommandTogglePause
)

// Command is a terminal event translated into game terms.
type Command struct {
	Kind        CommandKind
	X, Y        float64 // playfield point for CommandTap
	Orientation systems.Orientation
}

// keyOrientations maps arrow keys to the orientation that makes bubbles
// drift in the arrow's direction.
var keyOrientations = map[tcell.Key]systems.Orientation{
	tcell.KeyUp:    systems.OrientationPortrait,
	tcell.KeyDown:  systems.OrientationPortraitUpsideDown,
	tcell.KeyLeft:  systems.OrientationLandscapeRight,
	tcell.KeyRight: systems.OrientationLandscapeLeft,
}

// Input translates tcell events. Mouse taps fire on button press only.
type Input struct {
	view *View
	held bool
}

// NewInput creates an input translator for a view.
func NewInput(view *View) *Input {
	return &Input{view: view}
}

// Translate converts one tcell event.
func (in *Input) Translate(ev tcell.Event, worldW, worldH float64) Command {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev, worldW, worldH)
	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		wasHeld := in.held
		in.held = pressed
		if !pressed || wasHeld {
			return Command{}
		}
		col, row := ev.Position()
		x, y := in.view.ToWorld(col, row)
		return Command{Kind: CommandTap, X: x, Y: y}
	case *tcell.EventResize:
		return Command{Kind: CommandResize}
	}
	return Command{}
}

func (in *Input) key(ev *tcell.EventKey, worldW, worldH float64) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}
	case tcell.KeyEnter:
		return Command{Kind: CommandTap, X: worldW / 2, Y: worldH / 2}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return Command{Kind: CommandQuit}
		case ' ':
			return Command{Kind: CommandTap, X: worldW / 2, Y: worldH / 2}
		case 'p':
			return Command{Kind: CommandTogglePause}
		}
		return Command{}
	}
	if o, ok := keyOrientations[ev.Key()]; ok {
		return Command{Kind: CommandOrient, Orientation: o}
	}
	return Command{}
}
