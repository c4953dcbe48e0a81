// Package game contains the conversion drill rules: answer validation,
// scoring, and the session state machine.
package game

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arvhem/bitdrill/internal/model"
)

// Validate reports whether raw is the correct answer for the round.
// Malformed input is incorrect, never an error.
func Validate(round model.Round, raw string) bool {
	raw = strings.TrimSpace(raw)
	switch round.Direction {
	case model.BinToDec:
		v, err := strconv.Atoi(raw)
		return err == nil && v == round.Value
	case model.DecToBin:
		digits := filterBinaryDigits(raw)
		if digits == "" {
			return false
		}
		v, err := strconv.ParseInt(digits, 2, 64)
		return err == nil && int(v) == round.Value
	}
	return false
}

func filterBinaryDigits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r == '0' || r == '1' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Prompt renders the challenge shown to the player: zero-padded binary for
// binary→decimal rounds, plain decimal otherwise.
func Prompt(round model.Round, bits int) string {
	if round.Direction == model.BinToDec {
		return fmt.Sprintf("%0*b", bits, round.Value)
	}
	return strconv.Itoa(round.Value)
}

// Answer renders the expected answer for feedback display.
func Answer(round model.Round, bits int) string {
	if round.Direction == model.BinToDec {
		return strconv.Itoa(round.Value)
	}
	return fmt.Sprintf("%0*b", bits, round.Value)
}
