package manager

import (
	"sort"
	"time"

	"classic-snake/game/types"
)

// GameRecord describes one finished run.
type GameRecord struct {
	UUID      string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Ticks     int
	Cause     types.CollisionType
	Cleared   bool // Filled the board instead of colliding
}

// Duration is the wall-clock length of the run.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// StateManager keeps the session's high score and the most recent runs.
// Nothing is written to disk; a new process starts from zero.
type StateManager struct {
	highScore    int
	scoreHistory []GameRecord
}

func NewStateManager() *StateManager {
	return &StateManager{
		scoreHistory: make([]GameRecord, 0, types.MaxScores),
	}
}

// UpdateScore raises the high score if score beats it.
func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

// AddToHistory records a finished run, dropping the oldest one past
// types.MaxScores.
func (sm *StateManager) AddToHistory(rec GameRecord) {
	sm.UpdateScore(rec.Score)
	if len(sm.scoreHistory) >= types.MaxScores {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, rec)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

// GetScoreHistory returns a copy of the recorded runs, oldest first.
func (sm *StateManager) GetScoreHistory() []GameRecord {
	out := make([]GameRecord, len(sm.scoreHistory))
	copy(out, sm.scoreHistory)
	return out
}

// AverageScore is the mean score of the recorded runs.
func (sm *StateManager) AverageScore() float64 {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	sum := 0
	for _, rec := range sm.scoreHistory {
		sum += rec.Score
	}
	return float64(sum) / float64(len(sm.scoreHistory))
}

// MedianScore is the median score of the recorded runs.
func (sm *StateManager) MedianScore() float64 {
	n := len(sm.scoreHistory)
	if n == 0 {
		return 0
	}
	scores := make([]int, n)
	for i, rec := range sm.scoreHistory {
		scores[i] = rec.Score
	}
	sort.Ints(scores)
	if n%2 == 0 {
		return float64(scores[n/2-1]+scores[n/2]) / 2
	}
	return float64(scores[n/2])
}

// AverageDuration is the mean wall-clock length of the recorded runs.
func (sm *StateManager) AverageDuration() time.Duration {
	if len(sm.scoreHistory) == 0 {
		return 0
	}
	var total time.Duration
	for _, rec := range sm.scoreHistory {
		total += rec.Duration()
	}
	return total / time.Duration(len(sm.scoreHistory))
}

// GamesPlayed is the number of recorded runs.
func (sm *StateManager) GamesPlayed() int {
	return len(sm.scoreHistory)
}
