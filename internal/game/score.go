package game

import "math"

// Stats accumulates scoring for one session plus the persisted best score.
type Stats struct {
	Score         int
	Streak        int
	MaxStreak     int
	TotalCorrect  int
	TotalAnswered int
	HighScore     int
}

// ApplyResult folds one answered round into the stats. A correct answer
// awards 10 points plus 2 per consecutive correct answer already on the
// streak; an incorrect answer resets the streak and leaves the score alone.
func ApplyResult(s Stats, correct bool) Stats {
	s.TotalAnswered++
	if correct {
		s.TotalCorrect++
		s.Score += 10 + 2*s.Streak
		s.Streak++
	} else {
		s.Streak = 0
	}
	if s.Streak > s.MaxStreak {
		s.MaxStreak = s.Streak
	}
	return s
}

// Accuracy returns the rounded percentage of correct answers, 0 when
// nothing has been answered yet.
func Accuracy(s Stats) int {
	if s.TotalAnswered == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.TotalCorrect) / float64(s.TotalAnswered)))
}
