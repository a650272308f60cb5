package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"studentlife/internal/sim"
)

// Run opens the interactive play screen. The save callback persists the
// session after every applied action.
func Run(ctx context.Context, session *sim.Session, collector *Collector, save func() error, out io.Writer) error {
	m := newPlayModel(ctx, session, collector, save)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
