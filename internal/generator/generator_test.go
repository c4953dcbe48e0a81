package generator

import (
	"testing"

	"github.com/arvhem/bitdrill/internal/model"
)

func TestRoundValueInRange(t *testing.T) {
	for _, bits := range model.BitWidths {
		gen := NewSeeded(42)
		cfg := model.Config{Mode: model.ModeMixed, Bits: bits, DurationSeconds: 30}
		maxValue := cfg.MaxValue()
		for i := 0; i < 1000; i++ {
			round := gen.Round(cfg)
			if round.Value < 0 || round.Value > maxValue {
				t.Fatalf("bits=%d: value %d out of [0, %d]", bits, round.Value, maxValue)
			}
		}
	}
}

func TestRoundDirectionFixedModes(t *testing.T) {
	cases := []struct {
		mode model.Mode
		want model.Direction
	}{
		{model.ModeBinToDec, model.BinToDec},
		{model.ModeDecToBin, model.DecToBin},
	}
	for _, tc := range cases {
		gen := NewSeeded(7)
		cfg := model.Config{Mode: tc.mode, Bits: 8, DurationSeconds: 30}
		for i := 0; i < 100; i++ {
			if got := gen.Round(cfg).Direction; got != tc.want {
				t.Fatalf("mode %s: round %d got direction %d, want %d", tc.mode, i, got, tc.want)
			}
		}
	}
}

func TestRoundDirectionMixedProducesBoth(t *testing.T) {
	gen := NewSeeded(1)
	cfg := model.Config{Mode: model.ModeMixed, Bits: 4, DurationSeconds: 30}
	seen := map[model.Direction]bool{}
	for i := 0; i < 200; i++ {
		seen[gen.Round(cfg).Direction] = true
	}
	if !seen[model.BinToDec] || !seen[model.DecToBin] {
		t.Fatalf("mixed mode never sampled both directions: %v", seen)
	}
}
