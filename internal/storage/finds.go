package storage

import (
	"fmt"
	"strings"
	"time"
)

// FindEntry is one notable find in the ledger.
type FindEntry struct {
	ID       int64
	Slot     string
	ItemID   string
	Metal    string
	Variants []string
	Tier     int
	Value    int64
	Area     string
	Signal   float64
	FoundAt  time.Time
}

// FindStats aggregates a slot's ledger.
type FindStats struct {
	Slot       string
	Count      int
	BestValue  int64
	TotalValue int64
	BestTier   int
	LastFound  time.Time
}

// RecordFind appends a find for the given slot.
// Returns the ID of the inserted record.
func (s *Store) RecordFind(slot string, e FindEntry) (int64, error) {
	foundAt := e.FoundAt
	if foundAt.IsZero() {
		foundAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO finds (slot, item_id, metal, variants, tier, value, area, signal, found_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		slot, e.ItemID, e.Metal, strings.Join(e.Variants, ","), e.Tier, e.Value, e.Area, e.Signal,
		foundAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record find: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopFinds retrieves the N most valuable finds for a slot.
func (s *Store) TopFinds(slot string, limit int) ([]FindEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryFinds(
		`SELECT id, slot, item_id, metal, variants, tier, value, area, signal, found_at
		 FROM finds
		 WHERE slot = ?
		 ORDER BY value DESC, id ASC
		 LIMIT ?`,
		slot, limit,
	)
}

// AllFinds retrieves every find for a slot, newest first.
func (s *Store) AllFinds(slot string) ([]FindEntry, error) {
	return s.queryFinds(
		`SELECT id, slot, item_id, metal, variants, tier, value, area, signal, found_at
		 FROM finds
		 WHERE slot = ?
		 ORDER BY found_at DESC, id DESC`,
		slot,
	)
}

func (s *Store) queryFinds(query string, args ...any) ([]FindEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query finds: %w", err)
	}
	defer rows.Close()

	var entries []FindEntry
	for rows.Next() {
		var e FindEntry
		var variants string
		var foundAt int64
		if err := rows.Scan(&e.ID, &e.Slot, &e.ItemID, &e.Metal, &variants, &e.Tier, &e.Value, &e.Area, &e.Signal, &foundAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		if variants != "" {
			e.Variants = strings.Split(variants, ",")
		}
		e.FoundAt = fromMillis(foundAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// FindStats retrieves aggregated ledger statistics for a slot.
func (s *Store) FindStats(slot string) (*FindStats, error) {
	stats := &FindStats{Slot: slot}
	var last int64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(value), 0), COALESCE(SUM(value), 0),
		        COALESCE(MAX(tier), 0), COALESCE(MAX(found_at), 0)
		 FROM finds WHERE slot = ?`,
		slot,
	).Scan(&stats.Count, &stats.BestValue, &stats.TotalValue, &stats.BestTier, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get find stats: %w", err)
	}
	stats.LastFound = fromMillis(last)
	return stats, nil
}

// ClearFinds deletes all finds for a slot.
func (s *Store) ClearFinds(slot string) error {
	_, err := s.db.Exec("DELETE FROM finds WHERE slot = ?", slot)
	if err != nil {
		return fmt.Errorf("storage: cannot clear finds: %w", err)
	}
	return nil
}
