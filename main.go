package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/LFroesch/lsl/internal/browser"
	"github.com/LFroesch/lsl/internal/config"
	"github.com/LFroesch/lsl/internal/fileops"
	"github.com/LFroesch/lsl/internal/logger"
	"github.com/LFroesch/lsl/internal/render"
)

func newRootCmd() *cobra.Command {
	var colorTest bool

	cmd := &cobra.Command{
		Use:   "lsl",
		Short: "Browse the working directory in the terminal",
		Long: `lsl lists the working directory page by page and lets you move around,
open files in your editor, run commands and create or remove entries
without leaving the terminal.

Keys:
  j/k        move focus          enter  open file or directory
  esc        parent directory    :      run a command (:q quits)
  space f    change directory    n      new file or directory
  d          delete              /      fuzzy find
  space v    preview file        y      copy path
  o          open with default   g/G    first/last entry
  q          quit`,
		Version:       config.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if colorTest {
				return render.ColorTest(cmd.OutOrStdout())
			}
			return run()
		},
	}
	cmd.SetVersionTemplate("lsl {{.Version}}\n")
	cmd.Flags().BoolVar(&colorTest, "colortest", false, "print the color palette and exit")
	return cmd
}

func run() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("lsl needs an interactive terminal")
	}

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		logger.Disable()
	}
	defer logger.Close()

	cfg := config.Load()
	m, err := browser.New(fileops.OS{}, browser.ExecLauncher{}, cfg)
	if err != nil {
		logger.Error("Startup failed: %v", err)
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("Terminal failure: %v", err)
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lsl:", err)
		os.Exit(1)
	}
}
