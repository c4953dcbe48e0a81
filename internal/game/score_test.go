package game

import "testing"

func TestApplyResultStreakBonus(t *testing.T) {
	var s Stats
	for n := 1; n <= 10; n++ {
		s = ApplyResult(s, true)
		want := 10*n + n*(n-1)
		if s.Score != want {
			t.Fatalf("after %d correct: score %d, want %d", n, s.Score, want)
		}
	}
}

func TestApplyResultIncorrect(t *testing.T) {
	var s Stats
	s = ApplyResult(s, true)
	s = ApplyResult(s, true)
	s = ApplyResult(s, true)
	if s.Score != 36 {
		t.Fatalf("expected score 36 after 3 correct, got %d", s.Score)
	}
	s = ApplyResult(s, false)
	if s.Score != 36 {
		t.Fatalf("incorrect answer changed score: %d", s.Score)
	}
	if s.Streak != 0 {
		t.Fatalf("incorrect answer should reset streak, got %d", s.Streak)
	}
	if s.MaxStreak != 3 {
		t.Fatalf("max streak should survive a miss, got %d", s.MaxStreak)
	}
	if s.TotalAnswered != 4 || s.TotalCorrect != 3 {
		t.Fatalf("unexpected counters: %+v", s)
	}
}

func TestApplyResultInvariants(t *testing.T) {
	// Alternating and clustered results; the counters must stay consistent
	// after every step.
	sequences := [][]bool{
		{true, false, true, false, true},
		{false, false, false},
		{true, true, false, true, true, true, false},
	}
	for _, seq := range sequences {
		var s Stats
		maxSeen := 0
		for i, correct := range seq {
			s = ApplyResult(s, correct)
			if s.TotalCorrect > s.TotalAnswered {
				t.Fatalf("step %d: totalCorrect %d > totalAnswered %d", i, s.TotalCorrect, s.TotalAnswered)
			}
			if s.Streak > s.MaxStreak {
				t.Fatalf("step %d: streak %d > maxStreak %d", i, s.Streak, s.MaxStreak)
			}
			if s.MaxStreak < maxSeen {
				t.Fatalf("step %d: maxStreak decreased from %d to %d", i, maxSeen, s.MaxStreak)
			}
			maxSeen = s.MaxStreak
		}
	}
}

func TestAccuracy(t *testing.T) {
	if got := Accuracy(Stats{}); got != 0 {
		t.Fatalf("accuracy of empty stats = %d, want 0", got)
	}
	if got := Accuracy(Stats{TotalCorrect: 3, TotalAnswered: 4}); got != 75 {
		t.Fatalf("accuracy 3/4 = %d, want 75", got)
	}
	if got := Accuracy(Stats{TotalCorrect: 2, TotalAnswered: 3}); got != 67 {
		t.Fatalf("accuracy 2/3 = %d, want 67", got)
	}
}
