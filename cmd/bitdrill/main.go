// Package main provides the CLI entrypoint for bitdrill.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/arvhem/bitdrill/internal/config"
	"github.com/arvhem/bitdrill/internal/generator"
	"github.com/arvhem/bitdrill/internal/model"
	"github.com/arvhem/bitdrill/internal/store"
	"github.com/arvhem/bitdrill/internal/tui"
)

const (
	defaultMode    = "mixed"
	defaultBits    = 8
	sessionSeconds = 30
)

var (
	gameMode string
	gameBits int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bitdrill",
		Short:         "TUI binary/decimal conversion drill",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runGameCmd,
	}

	rootCmd.Flags().StringVar(&gameMode, "mode", defaultMode, "conversion mode: b2d, d2b, or mixed")
	rootCmd.Flags().IntVar(&gameBits, "bits", defaultBits, "bit width: 4, 8, or 12")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newBestCmd())

	return rootCmd
}

func runGameCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &gameMode, fileCfg.Game.Mode)
	applyIntConfig(cmd, "bits", &gameBits, fileCfg.Game.Bits)

	mode, err := model.ParseMode(gameMode)
	if err != nil {
		return err
	}
	if !model.ValidBits(gameBits) {
		return fmt.Errorf("--bits must be one of 4, 8, or 12")
	}

	cfg := model.Config{
		Mode:            mode,
		Bits:            gameBits,
		DurationSeconds: sessionSeconds,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	highScore, err := st.HighScore(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read high score: %w", err)
	}

	gen := generator.New()
	model := tui.NewModel(cfg, st, gen, highScore)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newBestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "best",
		Short: "Print the stored high score",
		Args:  cobra.NoArgs,
		RunE:  runBestCmd,
	}
}

func runBestCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	score, err := st.HighScore(context.Background())
	if err != nil {
		return fmt.Errorf("failed to read high score: %w", err)
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), score); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bitdrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# mode = %q          # Conversion mode: b2d, d2b, or mixed
# bits = %d               # Bit width: 4, 8, or 12
`,
		defaultMode,
		defaultBits,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
