package manager

import (
	"classic-snake/logging"
)

// GameState is the current screen of a session
type GameState int

const (
	Start GameState = iota
	Playing
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Start:
		return "start"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Valid reports whether s is a member of the enum
func (s GameState) Valid() bool {
	return s >= Start && s <= GameOver
}

// TransitionPolicy decides which transitions the state manager accepts
type TransitionPolicy int

const (
	// Strict accepts only the gameplay transition table
	Strict TransitionPolicy = iota
	// Permissive accepts any valid target from any state
	Permissive
)

var legalTransitions = map[GameState][]GameState{
	Start:    {Playing},
	Playing:  {Paused, Start, GameOver},
	Paused:   {Playing, Start},
	GameOver: {Start},
}

// EnterHook runs after the state changed; from is the state that was left
type EnterHook func(state, from GameState)

// ExitHook runs before the state changes; to is the state being entered
type ExitHook func(state, to GameState)

type StateManager struct {
	current GameState
	policy  TransitionPolicy
	onEnter []EnterHook
	onExit  []ExitHook
}

func NewStateManager(policy TransitionPolicy) *StateManager {
	return &StateManager{
		current: Start,
		policy:  policy,
	}
}

// Current returns the active state
func (sm *StateManager) Current() GameState {
	return sm.current
}

// OnEnter registers a hook called on every state entry
func (sm *StateManager) OnEnter(hook EnterHook) {
	sm.onEnter = append(sm.onEnter, hook)
}

// OnExit registers a hook called on every state exit
func (sm *StateManager) OnExit(hook ExitHook) {
	sm.onExit = append(sm.onExit, hook)
}

// CanTransition reports whether target would be accepted from the current state
func (sm *StateManager) CanTransition(target GameState) bool {
	if !target.Valid() {
		return false
	}
	if sm.policy == Permissive {
		return true
	}
	for _, allowed := range legalTransitions[sm.current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Transition moves to target, running exit and enter hooks.
// Rejected requests leave the state untouched.
func (sm *StateManager) Transition(target GameState) bool {
	if !sm.CanTransition(target) {
		logging.Logger().Debug("state transition ignored", "from", sm.current.String(), "to", target.String())
		return false
	}

	from := sm.current
	logging.Logger().Info("state transition", "from", from.String(), "to", target.String())

	for _, hook := range sm.onExit {
		hook(from, target)
	}
	sm.current = target
	for _, hook := range sm.onEnter {
		hook(target, from)
	}
	return true
}
