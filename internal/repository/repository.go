// Package repository persists the classification history as an
// append-only YAML log under the data directory. Writes go through a
// copy-on-write transaction guarded by an exclusive file lock, so a
// crashed or concurrent writer can never leave a half-written history.
package repository

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"reqstage/pkg/schema"
)

const historyFile = "history.yaml"

// historyLog is the on-disk shape of the classification history.
type historyLog struct {
	Records []schema.ClassificationRecord `yaml:"records"`
}

// Repository handles file I/O for the classification history directory.
type Repository struct {
	baseDir string
}

// NewRepository creates a new repository rooted at baseDir. The
// directory is created lazily on first write.
func NewRepository(baseDir string) *Repository {
	return &Repository{baseDir: baseDir}
}

// ReadHistory reads all recorded classification runs, oldest first. A
// missing history file yields an empty slice, not an error.
func (r *Repository) ReadHistory() ([]schema.ClassificationRecord, error) {
	data, err := os.ReadFile(filepath.Join(r.baseDir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return []schema.ClassificationRecord{}, nil
		}
		return nil, fmt.Errorf("read history: %w", err)
	}

	var log historyLog
	if err := yaml.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("parse history: %w", err)
	}

	if log.Records == nil {
		log.Records = []schema.ClassificationRecord{}
	}
	return log.Records, nil
}

// AppendRecord appends one classification run to the history atomically.
func (r *Repository) AppendRecord(record *schema.ClassificationRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("invalid record: %w", err)
	}

	lock := NewFileLock(r.baseDir+".lock", "service")
	if err := lock.Acquire(); err != nil {
		return fmt.Errorf("acquire history lock: %w", err)
	}
	defer func() {
		_ = lock.Release()
	}()

	tx := NewCopyOnWriteTx(r.baseDir)
	if err := tx.Begin(); err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	var log historyLog
	data, err := tx.ReadFile(historyFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		rollback(tx)
		return fmt.Errorf("read history: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &log); err != nil {
			rollback(tx)
			return fmt.Errorf("parse history: %w", err)
		}
	}

	log.Records = append(log.Records, *record)

	data, err = yaml.Marshal(&log)
	if err != nil {
		rollback(tx)
		return fmt.Errorf("marshal history: %w", err)
	}

	if err := tx.WriteFile(historyFile, data); err != nil {
		rollback(tx)
		return fmt.Errorf("write history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		rollback(tx)
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

// rollback is best-effort; a failed rollback leaves a stale temp
// directory behind but never corrupts the committed history.
func rollback(tx *CopyOnWriteTx) {
	_ = tx.Rollback()
}
