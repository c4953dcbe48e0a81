package game

import (
	"fmt"
	"testing"

	"github.com/arvhem/bitdrill/internal/model"
)

func TestValidateBinToDec(t *testing.T) {
	round := model.Round{Value: 10, Direction: model.BinToDec}
	cases := []struct {
		input string
		want  bool
	}{
		{"10", true},
		{"  10  ", true},
		{"11", false},
		{"ten", false},
		{"1 0", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Validate(round, tc.input); got != tc.want {
			t.Fatalf("Validate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestValidateDecToBinFiltersNonDigits(t *testing.T) {
	round := model.Round{Value: 10, Direction: model.DecToBin}
	cases := []struct {
		input string
		want  bool
	}{
		{"1010", true},
		{" 1010 ", true},
		{"1 0 1 0", true},
		{"1x0y1z0", true},
		{"0001010", true},
		{"1011", false},
		{"xyz", false},
		{"2345", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := Validate(round, tc.input); got != tc.want {
			t.Fatalf("Validate(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestValidateRoundTripsPrompt(t *testing.T) {
	for _, bits := range model.BitWidths {
		maxValue := 1<<bits - 1
		for v := 0; v <= maxValue; v++ {
			round := model.Round{Value: v, Direction: model.DecToBin}
			padded := fmt.Sprintf("%0*b", bits, v)
			if !Validate(round, padded) {
				t.Fatalf("bits=%d value=%d: %q rejected", bits, v, padded)
			}
		}
	}
}

func TestValidateOverlongBinaryInput(t *testing.T) {
	round := model.Round{Value: 3, Direction: model.DecToBin}
	long := ""
	for i := 0; i < 80; i++ {
		long += "1"
	}
	if Validate(round, long) {
		t.Fatalf("expected overlong binary input to be incorrect")
	}
}

func TestPromptAndAnswer(t *testing.T) {
	b2d := model.Round{Value: 10, Direction: model.BinToDec}
	if got := Prompt(b2d, 8); got != "00001010" {
		t.Fatalf("Prompt b2d = %q", got)
	}
	if got := Answer(b2d, 8); got != "10" {
		t.Fatalf("Answer b2d = %q", got)
	}
	d2b := model.Round{Value: 10, Direction: model.DecToBin}
	if got := Prompt(d2b, 8); got != "10" {
		t.Fatalf("Prompt d2b = %q", got)
	}
	if got := Answer(d2b, 4); got != "1010" {
		t.Fatalf("Answer d2b = %q", got)
	}
}
