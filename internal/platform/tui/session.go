package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/metal-tycoon/internal/catalog"
	"github.com/vovakirdan/metal-tycoon/internal/config"
	"github.com/vovakirdan/metal-tycoon/internal/core"
	"github.com/vovakirdan/metal-tycoon/internal/economy"
	"github.com/vovakirdan/metal-tycoon/internal/games/detector"
	"github.com/vovakirdan/metal-tycoon/internal/save"
	"github.com/vovakirdan/metal-tycoon/internal/storage"
)

// Session is everything one player's run needs.
type Session struct {
	Catalog *catalog.Catalog
	Game    config.GameConfig
	Runtime core.RuntimeConfig

	// Store persists progress and finds. A nil store plays without saving.
	Store *storage.Store
	Slot  string

	Logger *log.Logger
	// Bell receives terminal bell rings for audio cues. Nil is silent.
	Bell io.Writer
}

func (s Session) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.New(io.Discard)
}

func (s Session) slot() string {
	if s.Slot == "" {
		return save.DefaultSlot
	}
	return s.Slot
}

// LoadState reads the slot's progress. A missing slot yields a fresh state
// and false.
func LoadState(store *storage.Store, cat *catalog.Catalog, slot string) (economy.State, bool, error) {
	if store == nil {
		return economy.NewState(cat), false, nil
	}
	data, ok, err := store.LoadState(slot)
	if err != nil {
		return economy.State{}, false, err
	}
	if !ok {
		return economy.NewState(cat), false, nil
	}
	s, err := save.Decode(cat, data)
	if err != nil {
		return economy.State{}, false, fmt.Errorf("slot %s: %w", slot, err)
	}
	return s, true, nil
}

// SaveState writes progress to the slot.
func SaveState(store *storage.Store, slot string, s economy.State) error {
	if store == nil {
		return nil
	}
	data, err := save.Encode(s)
	if err != nil {
		return err
	}
	return store.SaveState(slot, data)
}

// NewGame loads the session's slot and builds a game whose notable finds
// go to the store's ledger.
func (s Session) NewGame() (*detector.Game, error) {
	state, _, err := LoadState(s.Store, s.Catalog, s.slot())
	if err != nil {
		return nil, err
	}

	logger := s.logger()
	slot := s.slot()
	store := s.Store
	hook := func(f detector.Find) {
		logger.Info("notable find", "slot", slot, "item", f.Item.Label(), "value", f.Item.Value, "signal", f.Signal)
		if store == nil {
			return
		}
		_, err := store.RecordFind(slot, storage.FindEntry{
			ItemID:   f.Item.ID,
			Metal:    f.Item.Metal.ID,
			Variants: f.Item.VariantIDs(),
			Tier:     f.Item.Metal.Tier,
			Value:    f.Item.Value,
			Area:     f.Area,
			Signal:   f.Signal,
			FoundAt:  time.UnixMilli(f.Item.FoundAt),
		})
		if err != nil {
			logger.Warn("could not record find", "error", err)
		}
	}

	return detector.New(s.Catalog, s.Game, state, detector.WithFindHook(hook)), nil
}
