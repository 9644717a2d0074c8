package game

import (
	"time"

	"github.com/google/uuid"

	"classic-snake/game/entity"
	"classic-snake/game/manager"
	"classic-snake/game/types"
	"classic-snake/logging"
)

// Options configures a new Session
type Options struct {
	Grid   types.Grid
	Random manager.RandomSource
	Policy manager.TransitionPolicy
	Clock  func() time.Time
}

// Session owns everything one player's game needs: the state machine,
// snake, food, score and round statistics. It is not safe for concurrent
// use; the host driver calls it from a single goroutine.
type Session struct {
	ID   string
	Grid types.Grid

	snake      *entity.Snake
	food       *manager.FoodManager
	collisions *manager.CollisionManager
	states     *manager.StateManager
	stats      *manager.StatsManager

	score         int
	ticks         int
	roundActive   bool
	roundStart    time.Time
	lastCollision manager.CollisionType
	now           func() time.Time
}

func NewSession(opts Options) *Session {
	if opts.Grid.Width == 0 || opts.Grid.Height == 0 {
		opts.Grid = types.NewSquareGrid(types.GridSize)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	s := &Session{
		ID:         uuid.New().String(),
		Grid:       opts.Grid,
		snake:      entity.NewSnake(opts.Grid),
		food:       manager.NewFoodManager(opts.Grid, opts.Random),
		collisions: manager.NewCollisionManager(opts.Grid),
		states:     manager.NewStateManager(opts.Policy),
		stats:      manager.NewStatsManager(),
		now:        opts.Clock,
	}
	s.states.OnEnter(s.onEnter)
	return s
}

func (s *Session) onEnter(state, from manager.GameState) {
	switch state {
	case manager.Playing:
		// Resuming keeps the round; anything else starts a new one.
		if from == manager.Paused && s.roundActive {
			return
		}
		s.startRound()
	case manager.GameOver:
		s.endRound()
	case manager.Start:
		if s.roundActive {
			logging.Logger().Info("round abandoned", "session", s.ID, "score", s.score)
		}
		s.roundActive = false
	}
}

func (s *Session) startRound() {
	s.score = 0
	s.ticks = 0
	s.lastCollision = manager.NoCollision
	s.snake.Reset(s.Grid)
	_ = s.food.Place(s.snake.Occupied())
	s.roundActive = true
	s.roundStart = s.now()
	logging.Logger().Info("round started", "session", s.ID)
}

func (s *Session) endRound() {
	if !s.roundActive {
		return
	}
	s.roundActive = false
	s.stats.AddRound(manager.RoundRecord{
		StartTime: s.roundStart,
		EndTime:   s.now(),
		Score:     s.score,
		Length:    s.snake.Len(),
		Ticks:     s.ticks,
	})
	logging.Logger().Info("round over",
		"session", s.ID,
		"score", s.score,
		"length", s.snake.Len(),
		"ticks", s.ticks,
		"cause", s.lastCollision.String())
}

// Tick runs one simulation step. Outside Playing it does nothing.
func (s *Session) Tick() manager.CollisionType {
	if s.states.Current() != manager.Playing {
		return manager.NoCollision
	}
	s.ticks++

	// Growth is requested before stepping so the eating step keeps its tail.
	if s.food.IsAt(s.snake.NextHead()) {
		s.snake.Grow()
	}
	s.snake.Step()

	hit := s.collisions.Check(s.snake.Body, s.food)
	switch {
	case hit.Fatal():
		s.lastCollision = hit
		logging.Logger().Debug("collision", "type", hit.String(), "head", s.snake.GetHead())
		s.states.Transition(manager.GameOver)
	case hit == manager.FoodCollision:
		s.score += types.ScoreIncrement
		_ = s.food.Place(s.snake.Occupied())
		logging.Logger().Debug("food consumed", "score", s.score, "length", s.snake.Len())
	}
	return hit
}

// Transition requests a state change
func (s *Session) Transition(target manager.GameState) bool {
	return s.states.Transition(target)
}

func (s *Session) State() manager.GameState {
	return s.states.Current()
}

func (s *Session) Score() int {
	return s.score
}

// HighScore is the best score seen this session, including the live round
func (s *Session) HighScore() int {
	if s.roundActive && s.score > s.stats.GetHighScore() {
		return s.score
	}
	return s.stats.GetHighScore()
}

func (s *Session) Ticks() int {
	return s.ticks
}

// Segments returns a copy of the snake body, head first
func (s *Session) Segments() []types.Point {
	return s.snake.Segments()
}

func (s *Session) Direction() types.Point {
	return s.snake.Direction
}

// Food returns the food cell and whether food is present
func (s *Session) Food() (types.Point, bool) {
	return s.food.Position()
}

// LastCollision returns what ended the latest round
func (s *Session) LastCollision() manager.CollisionType {
	return s.lastCollision
}

func (s *Session) Stats() *manager.StatsManager {
	return s.stats
}
