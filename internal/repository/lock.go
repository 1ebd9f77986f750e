package repository

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"syscall"
	"time"
)

// staleAfter is how old a lock may grow before it is considered
// abandoned even when its process still exists.
const staleAfter = 30 * time.Minute

// LockFile is the metadata stored inside the lock file.
type LockFile struct {
	PID       int       `json:"pid"`
	Hostname  string    `json:"hostname"`
	Owner     string    `json:"owner"`
	Timestamp time.Time `json:"timestamp"`
}

// FileLock manages an exclusive flock-based lock on the history
// directory, with stale-lock detection and stealing.
type FileLock struct {
	path  string
	file  *os.File
	owner string
}

// NewFileLock creates a new file lock.
func NewFileLock(path, owner string) *FileLock {
	return &FileLock{
		path:  path,
		owner: owner,
	}
}

// Acquire attempts to acquire the file lock with stale detection.
func (l *FileLock) Acquire() error {
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(file.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		if closeErr := file.Close(); closeErr != nil {
			slog.Warn("failed to close lock file during error handling", "error", closeErr)
		}

		// Lock is held - check if stale
		existing, readErr := l.readLockFile()
		if readErr == nil && l.isStale(existing) {
			return l.stealLock()
		}

		if readErr == nil {
			age := time.Since(existing.Timestamp).Round(time.Second)
			return fmt.Errorf("history locked by %s (PID %d, %v ago)",
				existing.Owner, existing.PID, age)
		}

		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	l.file = file

	hostname, _ := os.Hostname()
	lockData := LockFile{
		PID:       os.Getpid(),
		Hostname:  hostname,
		Owner:     l.owner,
		Timestamp: time.Now(),
	}

	data, _ := json.MarshalIndent(lockData, "", "  ")
	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("truncate lock file: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("seek lock file: %w", err)
	}
	if _, err := file.Write(data); err != nil {
		return fmt.Errorf("write lock metadata: %w", err)
	}

	return nil
}

// Release releases the file lock.
func (l *FileLock) Release() error {
	if l.file == nil {
		return nil
	}

	if err := syscall.Flock(int(l.file.Fd()), syscall.LOCK_UN); err != nil {
		slog.Warn("failed to release flock", "error", err)
	}
	if err := l.file.Close(); err != nil {
		slog.Warn("failed to close lock file", "error", err)
	}
	l.file = nil

	return os.Remove(l.path)
}

// readLockFile reads the current lock metadata.
func (l *FileLock) readLockFile() (*LockFile, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, err
	}

	var lock LockFile
	if err := json.Unmarshal(data, &lock); err != nil {
		return nil, err
	}

	return &lock, nil
}

// isStale checks whether the holding process is dead or the lock has
// outlived staleAfter.
func (l *FileLock) isStale(lock *LockFile) bool {
	process, err := os.FindProcess(lock.PID)
	if err != nil {
		return true
	}

	// On Unix FindProcess always succeeds; signal 0 probes liveness.
	if err := process.Signal(syscall.Signal(0)); err != nil {
		return true
	}

	return time.Since(lock.Timestamp) > staleAfter
}

// stealLock forcibly steals a stale lock.
func (l *FileLock) stealLock() error {
	_ = os.Remove(l.path)
	return l.Acquire()
}
