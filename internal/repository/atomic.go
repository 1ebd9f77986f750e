package repository

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// CopyOnWriteTx implements atomic file operations using a copy-on-write
// pattern. All modifications happen in a temporary sibling directory,
// then the directories are atomically swapped on commit. True file
// copies, not hard links: a hard-linked "copy" shares the inode, so
// writing through either path would corrupt the original before commit.
type CopyOnWriteTx struct {
	baseDir   string
	tempDir   string
	backupDir string
	committed bool
}

// NewCopyOnWriteTx creates a new copy-on-write transaction for baseDir.
func NewCopyOnWriteTx(baseDir string) *CopyOnWriteTx {
	timestamp := time.Now().UnixNano()
	return &CopyOnWriteTx{
		baseDir:   baseDir,
		tempDir:   fmt.Sprintf("%s.tmp.%d", baseDir, timestamp),
		backupDir: fmt.Sprintf("%s.backup.%d", baseDir, timestamp),
	}
}

// Begin starts the transaction by copying the base directory into the
// temp directory. A missing base directory is not an error; the temp
// directory starts empty and commit creates the base.
func (tx *CopyOnWriteTx) Begin() error {
	if _, err := os.Stat(tx.baseDir); err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(tx.tempDir, 0755); err != nil {
				return fmt.Errorf("create temp directory: %w", err)
			}
			return nil
		}
		return fmt.Errorf("stat base directory: %w", err)
	}

	if err := copyDirRecursive(tx.baseDir, tx.tempDir); err != nil {
		_ = os.RemoveAll(tx.tempDir)
		return fmt.Errorf("copy directory tree: %w", err)
	}

	return nil
}

// WriteFile writes content to a file within the transaction's temp directory.
func (tx *CopyOnWriteTx) WriteFile(relativePath string, content []byte) error {
	if tx.committed {
		return fmt.Errorf("transaction already committed")
	}

	fullPath := filepath.Join(tx.tempDir, relativePath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	return nil
}

// ReadFile reads a file from the transaction's temp directory.
func (tx *CopyOnWriteTx) ReadFile(relativePath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(tx.tempDir, relativePath))
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// Commit atomically swaps the temp directory with the base directory.
// On failure mid-swap it restores the backup, so the base directory is
// always either the old state or the new one, never a mix.
func (tx *CopyOnWriteTx) Commit() error {
	if tx.committed {
		return fmt.Errorf("transaction already committed")
	}

	baseExists := true
	if _, err := os.Stat(tx.baseDir); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat base directory: %w", err)
		}
		baseExists = false
	}

	if baseExists {
		if err := os.Rename(tx.baseDir, tx.backupDir); err != nil {
			return fmt.Errorf("backup base directory: %w", err)
		}

		if err := os.Rename(tx.tempDir, tx.baseDir); err != nil {
			if rollbackErr := os.Rename(tx.backupDir, tx.baseDir); rollbackErr != nil {
				return fmt.Errorf("commit failed and rollback failed: commit error: %w, rollback error: %v", err, rollbackErr)
			}
			return fmt.Errorf("commit base directory (rolled back): %w", err)
		}

		// Backup removal failure is non-critical; the swap already
		// succeeded.
		_ = os.RemoveAll(tx.backupDir)
	} else {
		if err := os.Rename(tx.tempDir, tx.baseDir); err != nil {
			return fmt.Errorf("commit base directory (new): %w", err)
		}
	}

	tx.committed = true
	return nil
}

// Rollback removes the temp directory, discarding all changes.
func (tx *CopyOnWriteTx) Rollback() error {
	if tx.committed {
		return fmt.Errorf("cannot rollback committed transaction")
	}

	if err := os.RemoveAll(tx.tempDir); err != nil {
		return fmt.Errorf("rollback: %w", err)
	}

	return nil
}

// copyDirRecursive copies a directory tree with true file copies.
func copyDirRecursive(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return fmt.Errorf("create destination: %w", err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("read directory: %w", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := copyDirRecursive(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// copyFile copies a single file using io.Copy.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() {
		_ = srcFile.Close()
	}()

	srcInfo, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}

	dstFile, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, srcInfo.Mode())
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		_ = dstFile.Close()
	}()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("copy contents: %w", err)
	}

	return nil
}
