// Package generator produces random conversion rounds.
package generator

import (
	"math/rand"
	"time"

	"github.com/arvhem/bitdrill/internal/model"
)

// Generator draws random rounds for a session.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed for reproducible rounds.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Round draws a value uniformly from [0, 2^bits - 1] and picks the
// direction: fixed by the session mode, or a coin flip in mixed mode.
func (g *Generator) Round(cfg model.Config) model.Round {
	value := g.rnd.Intn(cfg.MaxValue() + 1)
	return model.Round{Value: value, Direction: g.direction(cfg.Mode)}
}

func (g *Generator) direction(mode model.Mode) model.Direction {
	switch mode {
	case model.ModeBinToDec:
		return model.BinToDec
	case model.ModeDecToBin:
		return model.DecToBin
	}
	if g.rnd.Intn(2) == 0 {
		return model.BinToDec
	}
	return model.DecToBin
}
