package game

import (
	"context"
	"strings"

	"github.com/arvhem/bitdrill/internal/generator"
	"github.com/arvhem/bitdrill/internal/model"
)

// State identifies where a session is in its lifecycle.
type State int

// Session states. No transition targets StatePaused yet.
const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// Feedback marks the outcome of the most recent answer while it is shown.
type Feedback int

// Feedback values.
const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackIncorrect
)

// ScoreStore persists the best score across sessions.
type ScoreStore interface {
	HighScore(ctx context.Context) (int, error)
	SetHighScore(ctx context.Context, score int) error
}

// Session is the full game state as a value. Transitions return the next
// state instead of mutating, so sequences are trivially testable. Epoch
// increments on every transition that invalidates scheduled timers; a
// timer fired for an older epoch must be ignored by the caller.
type Session struct {
	Config    model.Config
	State     State
	Round     model.Round
	Stats     Stats
	Feedback  Feedback
	Remaining int
	Epoch     int
	NewBest   bool
}

// NewSession returns a session sitting in the menu with the persisted best
// score already loaded.
func NewSession(cfg model.Config, highScore int) Session {
	return Session{
		Config: cfg,
		State:  StateMenu,
		Stats:  Stats{HighScore: highScore},
	}
}

// Start begins play from the menu or the game-over screen. Per-session
// counters reset, the countdown rearms, and the first round is drawn. The
// best score survives.
func (s Session) Start(gen *generator.Generator) Session {
	if s.State != StateMenu && s.State != StateGameOver {
		return s
	}
	s.Stats = Stats{HighScore: s.Stats.HighScore}
	s.State = StatePlaying
	s.Remaining = s.Config.DurationSeconds
	s.Feedback = FeedbackNone
	s.NewBest = false
	s.Round = gen.Round(s.Config)
	s.Epoch++
	return s
}

// Submit answers the current round. Blank input is a no-op, and so is any
// submission while feedback from the previous answer is still showing.
func (s Session) Submit(raw string) Session {
	if s.State != StatePlaying || s.Feedback != FeedbackNone {
		return s
	}
	if strings.TrimSpace(raw) == "" {
		return s
	}
	if Validate(s.Round, raw) {
		s.Stats = ApplyResult(s.Stats, true)
		s.Feedback = FeedbackCorrect
	} else {
		s.Stats = ApplyResult(s.Stats, false)
		s.Feedback = FeedbackIncorrect
	}
	return s
}

// AdvanceRound clears feedback and draws the next round. It only applies
// after Submit has set feedback, which keeps a stale delayed advance from
// skipping a round.
func (s Session) AdvanceRound(gen *generator.Generator) Session {
	if s.State != StatePlaying || s.Feedback == FeedbackNone {
		return s
	}
	s.Feedback = FeedbackNone
	s.Round = gen.Round(s.Config)
	return s
}

// Tick counts the session clock down one second. When it reaches zero the
// session ends; ended reports that transition so the caller can persist a
// new best score when NewBest is set.
func (s Session) Tick() (next Session, ended bool) {
	if s.State != StatePlaying {
		return s, false
	}
	s.Remaining--
	if s.Remaining > 0 {
		return s, false
	}
	s.Remaining = 0
	s.State = StateGameOver
	s.Feedback = FeedbackNone
	s.Epoch++
	if s.Stats.Score > s.Stats.HighScore {
		s.Stats.HighScore = s.Stats.Score
		s.NewBest = true
	}
	return s, true
}

// SaveBest persists the session's best score when the finished run set a
// new one. It is a no-op otherwise.
func SaveBest(ctx context.Context, st ScoreStore, s Session) error {
	if !s.NewBest {
		return nil
	}
	return st.SetHighScore(ctx, s.Stats.HighScore)
}

// BackToMenu leaves the game-over screen, or abandons a running session
// without recording its score. Transient answer state is cleared and the
// epoch bump cancels any timer still in flight.
func (s Session) BackToMenu() Session {
	if s.State != StatePlaying && s.State != StateGameOver {
		return s
	}
	s.State = StateMenu
	s.Feedback = FeedbackNone
	s.Epoch++
	return s
}
