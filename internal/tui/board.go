package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"shinobi/internal/game"
	"shinobi/internal/store"
)

func RunBoard(ctx context.Context, eng *game.Engine, tracker *game.Tracker, st *store.Store, out io.Writer) error {
	m := newBoardModel(ctx, eng, tracker, st)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
