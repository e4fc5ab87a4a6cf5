package config

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LoadFolder reads the music folder persisted in the state file at path.
//
// Only the first line is used. A missing or empty file yields "" and no error.
func LoadFolder(path string) (string, error) {
	f, err := os.Open(path) //#nosec G304 -- State file path is user configuration
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("open state file: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		return "", sc.Err()
	}
	return strings.TrimSpace(sc.Text()), nil
}

// SaveFolder persists folder as the single line of the state file at path.
//
// The file is replaced atomically, so a crash never leaves it truncated.
func SaveFolder(path, folder string) error {
	folder = strings.TrimSpace(folder)
	if folder == "" {
		return errors.New("folder must not be empty")
	}
	if strings.ContainsAny(folder, "\r\n") {
		return fmt.Errorf("folder %q must be a single line", folder)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ratel-state-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(folder + "\n"); err != nil {
		tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
