// ABOUTME: Database maintenance for the local command store
// ABOUTME: Checkpoints the WAL, checks integrity and vacuums
package db

import (
	"fmt"
)

// RepairResult reports which maintenance steps succeeded.
type RepairResult struct {
	WalCheckpointed bool
	IntegrityOK     bool
	Problems        []string
	Vacuumed        bool
}

// Repair runs SQLite maintenance on the open store. VACUUM is skipped when the
// integrity check reports problems so a damaged file is left as-is for inspection.
func (s *Store) Repair() (*RepairResult, error) {
	result := &RepairResult{}

	var busy, logFrames, checkpointed int
	err := s.db.QueryRow("PRAGMA wal_checkpoint(TRUNCATE)").Scan(&busy, &logFrames, &checkpointed)
	if err != nil {
		return result, fmt.Errorf("checkpoint wal: %w", err)
	}
	result.WalCheckpointed = busy == 0

	rows, err := s.db.Query("PRAGMA integrity_check")
	if err != nil {
		return result, fmt.Errorf("integrity check: %w", err)
	}
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			_ = rows.Close()
			return result, fmt.Errorf("integrity check: %w", err)
		}
		if line != "ok" {
			result.Problems = append(result.Problems, line)
		}
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return result, fmt.Errorf("integrity check: %w", err)
	}
	_ = rows.Close()
	result.IntegrityOK = len(result.Problems) == 0

	if !result.IntegrityOK {
		return result, nil
	}

	if _, err := s.db.Exec("VACUUM"); err != nil {
		return result, fmt.Errorf("vacuum: %w", err)
	}
	result.Vacuumed = true

	return result, nil
}
