package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// SlotInfo describes a stored save slot.
type SlotInfo struct {
	Slot      string
	Size      int // compressed bytes
	RawSize   int
	UpdatedAt time.Time
}

// SaveState writes a save payload to a slot, replacing any previous one.
// The payload is stored zstd-compressed.
func (s *Store) SaveState(slot string, payload []byte) error {
	compressed := s.enc.EncodeAll(payload, nil)
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, payload, raw_size, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(slot) DO UPDATE SET
		   payload = excluded.payload,
		   raw_size = excluded.raw_size,
		   updated_at = excluded.updated_at`,
		slot, compressed, len(payload), time.Now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save slot %s: %w", slot, err)
	}
	return nil
}

// LoadState reads a slot's payload. The bool is false if the slot is empty.
func (s *Store) LoadState(slot string) ([]byte, bool, error) {
	var compressed []byte
	err := s.db.QueryRow("SELECT payload FROM saves WHERE slot = ?", slot).Scan(&compressed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot load slot %s: %w", slot, err)
	}

	payload, err := s.dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, false, fmt.Errorf("storage: cannot decompress slot %s: %w", slot, err)
	}
	return payload, true, nil
}

// DeleteState removes a slot and its finds.
func (s *Store) DeleteState(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete slot %s: %w", slot, err)
	}
	return s.ClearFinds(slot)
}

// Slots lists stored save slots, most recently updated first.
func (s *Store) Slots() ([]SlotInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, length(payload), raw_size, updated_at
		 FROM saves
		 ORDER BY updated_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query slots: %w", err)
	}
	defer rows.Close()

	var slots []SlotInfo
	for rows.Next() {
		var info SlotInfo
		var updated int64
		if err := rows.Scan(&info.Slot, &info.Size, &info.RawSize, &updated); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = fromMillis(updated)
		slots = append(slots, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return slots, nil
}
