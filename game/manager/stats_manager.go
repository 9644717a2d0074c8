package manager

import (
	"time"
)

// MaxHistory bounds the number of rounds kept in memory
const MaxHistory = 50

// RoundRecord describes one finished round
type RoundRecord struct {
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Length    int
	Ticks     int
}

// Duration returns how long the round lasted
func (r RoundRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StatsManager tracks finished rounds for the lifetime of a session.
// Nothing is written to disk.
type StatsManager struct {
	highScore    int
	roundsPlayed int
	history      []RoundRecord
}

func NewStatsManager() *StatsManager {
	return &StatsManager{
		history: make([]RoundRecord, 0, MaxHistory),
	}
}

// AddRound records a finished round
func (sm *StatsManager) AddRound(r RoundRecord) {
	sm.roundsPlayed++
	sm.UpdateScore(r.Score)

	if len(sm.history) >= MaxHistory {
		sm.history = append(sm.history[:0], sm.history[1:]...)
	}
	sm.history = append(sm.history, r)
}

// UpdateScore raises the high score if score beats it
func (sm *StatsManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StatsManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StatsManager) GetRoundsPlayed() int {
	return sm.roundsPlayed
}

// GetHistory returns the retained rounds, oldest first
func (sm *StatsManager) GetHistory() []RoundRecord {
	history := make([]RoundRecord, len(sm.history))
	copy(history, sm.history)
	return history
}

// GetLastRound returns the most recent round, if any
func (sm *StatsManager) GetLastRound() (RoundRecord, bool) {
	if len(sm.history) == 0 {
		return RoundRecord{}, false
	}
	return sm.history[len(sm.history)-1], true
}

// GetAverageScore averages the retained rounds
func (sm *StatsManager) GetAverageScore() float64 {
	if len(sm.history) == 0 {
		return 0
	}
	sum := 0
	for _, r := range sm.history {
		sum += r.Score
	}
	return float64(sum) / float64(len(sm.history))
}
