package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

const backupsDir = "backups"

// BackupManager copies the top-level JSON data files into timestamped
// folders under <data>/backups and restores from them.
type BackupManager struct {
	db *DB
}

func NewBackupManager(db *DB) *BackupManager {
	return &BackupManager{db: db}
}

// Create snapshots every *.json file in the data directory into a new
// backup_YYYYMMDD_HHMMSS folder and returns its path.
func (m *BackupManager) Create() (string, error) {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	stamp := time.Now().Format("20060102_150405")
	dest := filepath.Join(m.db.dir, backupsDir, "backup_"+stamp)
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	entries, err := os.ReadDir(m.db.dir)
	if err != nil {
		return "", fmt.Errorf("read data dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		src := filepath.Join(m.db.dir, e.Name())
		if err := copyFile(src, filepath.Join(dest, e.Name())); err != nil {
			return "", err
		}
	}
	return dest, nil
}

// List returns the backup folders, newest first.
func (m *BackupManager) List() ([]string, error) {
	root := filepath.Join(m.db.dir, backupsDir)
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read backups dir: %w", err)
	}

	var backups []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "backup_") {
			backups = append(backups, filepath.Join(root, e.Name()))
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(backups)))
	return backups, nil
}

// Restore copies every *.json file from the backup folder back into the
// data directory.
func (m *BackupManager) Restore(backupPath string) error {
	m.db.mu.Lock()
	defer m.db.mu.Unlock()

	entries, err := os.ReadDir(backupPath)
	if err != nil {
		return fmt.Errorf("read backup %s: %w", backupPath, err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		src := filepath.Join(backupPath, e.Name())
		if err := copyFile(src, filepath.Join(m.db.dir, e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Cleanup removes all but the keep most recent backups and returns how
// many were removed.
func (m *BackupManager) Cleanup(keep int) (int, error) {
	backups, err := m.List()
	if err != nil {
		return 0, err
	}
	if keep < 0 {
		keep = 0
	}
	if len(backups) <= keep {
		return 0, nil
	}

	removed := 0
	for _, path := range backups[keep:] {
		if err := os.RemoveAll(path); err != nil {
			return removed, fmt.Errorf("remove backup %s: %w", path, err)
		}
		removed++
	}
	return removed, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
