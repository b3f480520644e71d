package sim

import "fmt"

// State is the lifecycle state of a session.
type State int

const (
	StateActive State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "Active"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// SessionRules are the bookkeeping constants of a session.
type SessionRules struct {
	Lives       int // Lives at the start of a session
	SpawnReward int // Points awarded per spawned brick
	KeepPercent int // Share of the score kept after a collision, in percent
}

// DefaultSessionRules returns three lives, ten points per brick and a 30%
// score loss per collision.
func DefaultSessionRules() SessionRules {
	return SessionRules{Lives: 3, SpawnReward: 10, KeepPercent: 70}
}

// Session owns score, lives and the active/game-over state.
// Only its own methods mutate those fields; once the session is over every
// mutation except Reset is a no-op.
type Session struct {
	rules SessionRules
	score int
	lives int
	state State
}

// NewSession creates an active session with a full life pool.
func NewSession(rules SessionRules) *Session {
	if rules.Lives <= 0 {
		panic(fmt.Sprintf("sim: session needs at least one life, got %d", rules.Lives))
	}
	if rules.KeepPercent < 0 || rules.KeepPercent > 100 {
		panic(fmt.Sprintf("sim: keep percent %d outside [0, 100]", rules.KeepPercent))
	}
	s := &Session{rules: rules}
	s.Reset()
	return s
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Over reports whether the session has ended.
func (s *Session) Over() bool { return s.state == StateGameOver }

// Rules returns the session's bookkeeping constants.
func (s *Session) Rules() SessionRules { return s.rules }

// ApplyScoreDelta adds delta to the score. Reports whether it was applied.
func (s *Session) ApplyScoreDelta(delta int) bool {
	if delta < 0 {
		panic(fmt.Sprintf("sim: negative score delta %d", delta))
	}
	if s.Over() {
		return false
	}
	s.score += delta
	return true
}

// ApplySpawnReward credits the points for one spawned brick.
func (s *Session) ApplySpawnReward() bool {
	return s.ApplyScoreDelta(s.rules.SpawnReward)
}

// ApplyCollisionPenalty cuts the score to KeepPercent (rounded down) and
// takes one life. It returns true only on the call that ends the game.
func (s *Session) ApplyCollisionPenalty() (gameOver bool) {
	if s.Over() {
		return false
	}
	s.score = s.score * s.rules.KeepPercent / 100
	s.lives--
	if s.lives == 0 {
		s.state = StateGameOver
		return true
	}
	return false
}

// Reset restores the initial score, lives and state.
func (s *Session) Reset() {
	s.score = 0
	s.lives = s.rules.Lives
	s.state = StateActive
}
