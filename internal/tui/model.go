// Package tui provides the Bubble Tea game interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arvhem/bitdrill/internal/game"
	"github.com/arvhem/bitdrill/internal/generator"
	"github.com/arvhem/bitdrill/internal/model"
)

const feedbackDelay = time.Second

var (
	titleStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	promptStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	labelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	selectedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	unselectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	correctStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	incorrectStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	timerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	urgentStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	footerStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type tickMsg struct {
	epoch int
}

type clearFeedbackMsg struct {
	epoch int
}

// Model implements the Bubble Tea game UI.
type Model struct {
	session game.Session
	gen     *generator.Generator
	scores  game.ScoreStore

	input textinput.Model

	width  int
	height int

	modeIdx int
	bitsIdx int
}

// NewModel constructs a game UI model sitting in the menu.
func NewModel(cfg model.Config, scores game.ScoreStore, gen *generator.Generator, highScore int) *Model {
	input := textinput.New()
	input.Prompt = "> "
	input.CharLimit = 24
	input.Width = 24

	m := &Model{
		session: game.NewSession(cfg, highScore),
		gen:     gen,
		scores:  scores,
		input:   input,
	}
	m.modeIdx = int(cfg.Mode)
	m.bitsIdx = 0
	for i, b := range model.BitWidths {
		if b == cfg.Bits {
			m.bitsIdx = i
		}
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		return m.handleTick(msg)
	case clearFeedbackMsg:
		return m.handleClearFeedback(msg)
	case tea.KeyMsg:
		switch m.session.State {
		case game.StateMenu:
			return m.updateMenu(msg)
		case game.StatePlaying:
			return m.updatePlaying(msg)
		case game.StateGameOver:
			return m.updateGameOver(msg)
		}
	}
	return m, nil
}

func (m *Model) handleTick(msg tickMsg) (tea.Model, tea.Cmd) {
	if msg.epoch != m.session.Epoch || m.session.State != game.StatePlaying {
		return m, nil
	}
	var ended bool
	m.session, ended = m.session.Tick()
	if ended {
		if err := game.SaveBest(context.Background(), m.scores, m.session); err != nil {
			logErrf("failed to save high score: %v\n", err)
		}
		return m, nil
	}
	return m, tickCmd(m.session.Epoch)
}

func (m *Model) handleClearFeedback(msg clearFeedbackMsg) (tea.Model, tea.Cmd) {
	if msg.epoch != m.session.Epoch || m.session.State != game.StatePlaying {
		return m, nil
	}
	m.session = m.session.AdvanceRound(m.gen)
	m.input.Reset()
	return m, textinput.Blink
}

func (m *Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.modeIdx = (m.modeIdx + 2) % 3
		m.applyMenuSelection()
		return m, nil
	case "right", "l":
		m.modeIdx = (m.modeIdx + 1) % 3
		m.applyMenuSelection()
		return m, nil
	case "up", "k", "shift+tab":
		m.bitsIdx = (m.bitsIdx + len(model.BitWidths) - 1) % len(model.BitWidths)
		m.applyMenuSelection()
		return m, nil
	case "down", "j", "tab":
		m.bitsIdx = (m.bitsIdx + 1) % len(model.BitWidths)
		m.applyMenuSelection()
		return m, nil
	case "enter":
		return m.startSession()
	}
	return m, nil
}

func (m *Model) applyMenuSelection() {
	m.session.Config.Mode = model.Mode(m.modeIdx)
	m.session.Config.Bits = model.BitWidths[m.bitsIdx]
}

func (m *Model) startSession() (tea.Model, tea.Cmd) {
	m.session = m.session.Start(m.gen)
	m.input.Reset()
	m.input.Focus()
	return m, tea.Batch(textinput.Blink, tickCmd(m.session.Epoch))
}

func (m *Model) updatePlaying(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.session = m.session.BackToMenu()
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}
	// The answer box is locked while feedback is showing; the pending
	// clear timer is the only thing allowed to move the session forward.
	if m.session.Feedback != game.FeedbackNone {
		return m, nil
	}
	if msg.String() == "enter" {
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		m.session = m.session.Submit(m.input.Value())
		if m.session.Feedback != game.FeedbackNone {
			return m, clearFeedbackCmd(m.session.Epoch)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) updateGameOver(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "enter":
		return m.startSession()
	case "esc", "m":
		m.session = m.session.BackToMenu()
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.session.State {
	case game.StateMenu:
		content = m.viewMenu()
	case game.StatePlaying:
		content = m.viewPlaying()
	case game.StateGameOver:
		content = m.viewGameOver()
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewMenu() string {
	lines := []string{
		titleStyle.Render("bitdrill"),
		labelStyle.Render("binary ↔ decimal conversion drill"),
		"",
		"Mode  " + m.renderModeChoices(),
		"Bits  " + m.renderBitsChoices(),
		"",
		labelStyle.Render(fmt.Sprintf("Best score %d", m.session.Stats.HighScore)),
		"",
		m.hints("←/→ mode", "↑/↓ bits", "enter start", "q quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderModeChoices() string {
	parts := make([]string, 0, 3)
	for i, mode := range []model.Mode{model.ModeBinToDec, model.ModeDecToBin, model.ModeMixed} {
		label := mode.Label()
		if i == m.modeIdx {
			parts = append(parts, selectedStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, unselectedStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) renderBitsChoices() string {
	parts := make([]string, 0, len(model.BitWidths))
	for i, bits := range model.BitWidths {
		label := fmt.Sprintf("%d", bits)
		if i == m.bitsIdx {
			parts = append(parts, selectedStyle.Render("["+label+"]"))
		} else {
			parts = append(parts, unselectedStyle.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m *Model) viewPlaying() string {
	s := m.session
	timer := timerStyle
	if s.Remaining <= 5 {
		timer = urgentStyle
	}
	lines := []string{
		timer.Render(fmt.Sprintf("%2ds", s.Remaining)),
		"",
		labelStyle.Render(directionLabel(s.Round.Direction)),
		promptStyle.Render(game.Prompt(s.Round, s.Config.Bits)),
		"",
		m.input.View(),
		m.renderFeedback(),
		"",
		footerStyle.Render(statusLine(s.Stats)),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFeedback() string {
	switch m.session.Feedback {
	case game.FeedbackCorrect:
		return correctStyle.Render("correct")
	case game.FeedbackIncorrect:
		answer := game.Answer(m.session.Round, m.session.Config.Bits)
		return incorrectStyle.Render("incorrect, answer " + answer)
	}
	return ""
}

func (m *Model) viewGameOver() string {
	s := m.session
	best := fmt.Sprintf("Best %d", s.Stats.HighScore)
	if s.NewBest {
		best = selectedStyle.Render(fmt.Sprintf("Best %d (new best!)", s.Stats.HighScore))
	}
	lines := []string{
		titleStyle.Render("Time's up"),
		"",
		fmt.Sprintf("Score %d", s.Stats.Score),
		best,
		fmt.Sprintf("Answered %d, correct %d (%d%%)", s.Stats.TotalAnswered, s.Stats.TotalCorrect, game.Accuracy(s.Stats)),
		fmt.Sprintf("Longest streak %d", s.Stats.MaxStreak),
		"",
		m.hints("enter play again", "m menu", "q quit"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) hints(parts ...string) string {
	text := strings.Join(parts, " · ")
	width := m.width
	if width <= 0 {
		width = len(text)
	}
	return footerStyle.Render(wrapHints(text, width))
}

func directionLabel(d model.Direction) string {
	if d == model.BinToDec {
		return "Convert to decimal"
	}
	return "Convert to binary"
}

func statusLine(s game.Stats) string {
	return fmt.Sprintf("Score %d  Streak %d  Best %d  Accuracy %d%%",
		s.Score, s.Streak, s.HighScore, game.Accuracy(s))
}

func tickCmd(epoch int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return tickMsg{epoch: epoch}
	})
}

func clearFeedbackCmd(epoch int) tea.Cmd {
	return tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return clearFeedbackMsg{epoch: epoch}
	})
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
