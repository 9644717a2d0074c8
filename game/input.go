package game

import (
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/logging"
)

// Key names delivered by the host drivers
const (
	KeyUp     = "ArrowUp"
	KeyDown   = "ArrowDown"
	KeyLeft   = "ArrowLeft"
	KeyRight  = "ArrowRight"
	KeySpace  = " "
	KeyEscape = "Escape"
)

var arrowDirections = map[string]types.Point{
	KeyUp:    types.Up,
	KeyDown:  types.Down,
	KeyLeft:  types.Left,
	KeyRight: types.Right,
}

// IsGameKey reports whether the host should suppress its default handling
func IsGameKey(key string) bool {
	switch key {
	case KeyUp, KeyDown, KeyLeft, KeyRight, KeySpace, KeyEscape:
		return true
	}
	return false
}

// Action is what a key press asks the session to do
type Action int

const (
	NoAction Action = iota
	QueueDirection
	RequestTransition
)

// Command is a routed key press
type Command struct {
	Action    Action
	Direction types.Point
	Target    manager.GameState
}

// Route maps a key in the given state to a command
func Route(state manager.GameState, key string) Command {
	switch state {
	case manager.Start:
		if key == KeySpace {
			return Command{Action: RequestTransition, Target: manager.Playing}
		}
	case manager.Playing:
		if dir, ok := arrowDirections[key]; ok {
			return Command{Action: QueueDirection, Direction: dir}
		}
		switch key {
		case KeySpace:
			return Command{Action: RequestTransition, Target: manager.Paused}
		case KeyEscape:
			return Command{Action: RequestTransition, Target: manager.Start}
		}
	case manager.Paused:
		switch key {
		case KeySpace:
			return Command{Action: RequestTransition, Target: manager.Playing}
		case KeyEscape:
			return Command{Action: RequestTransition, Target: manager.Start}
		}
	case manager.GameOver:
		if key == KeySpace {
			return Command{Action: RequestTransition, Target: manager.Start}
		}
	}
	return Command{Action: NoAction}
}

// HandleKey routes and applies a key press. The result tells the host
// whether the key belongs to the game.
func (s *Session) HandleKey(key string) bool {
	cmd := Route(s.State(), key)
	switch cmd.Action {
	case QueueDirection:
		if !s.snake.QueueDirection(cmd.Direction) {
			logging.Logger().Debug("direction dropped", "key", key)
		}
	case RequestTransition:
		s.states.Transition(cmd.Target)
	}
	return IsGameKey(key)
}
