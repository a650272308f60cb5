package root

import (
	"context"
	"errors"

	"studentlife/internal/config"
	"studentlife/internal/sim"
	"studentlife/internal/storage"
)

// ErrNoGame signals that no playthrough exists yet.
var ErrNoGame = errors.New(`no active playthrough (run "sl new <name>" to start one)`)

// gameEnv bundles everything a command needs: the store, the balance in
// effect, and the player's settings.
type gameEnv struct {
	store    *storage.Store
	bal      config.Balance
	settings storage.Settings
}

func openEnv(ctx context.Context) (*gameEnv, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	path := cfg.DBPath
	if path == "" {
		path, err = storage.DefaultPath()
		if err != nil {
			return nil, nil, err
		}
	}

	bal, err := config.LoadBalance(cfg.BalanceFile)
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = store.Close()
	}

	settings, err := storage.LoadSettings(ctx, store)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return &gameEnv{store: store, bal: bal, settings: settings}, cleanup, nil
}

// loadSession restores the saved playthrough. A failed decode leaves the
// stored record untouched and surfaces the error.
func (e *gameEnv) loadSession(ctx context.Context, ev sim.Events) (*sim.Session, error) {
	st, exists, err := storage.LoadGame(ctx, e.store)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNoGame
	}
	diff := sim.ParseDifficulty(e.settings.Difficulty)
	return sim.NewSession(st, e.bal, diff, ev), nil
}

// saveSession persists the session's state.
func (e *gameEnv) saveSession(ctx context.Context, s *sim.Session) error {
	return storage.SaveGame(ctx, e.store, s.State())
}
