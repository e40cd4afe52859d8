package mission

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
)

var autosaveMark = []byte(AutosaveMark)

// StripBytes removes every line containing the autosave marker from data.
// Remaining lines keep their order and their original terminators.
func StripBytes(data []byte) (out []byte, lines, removed int) {
	out = make([]byte, 0, len(data))

	for _, line := range splitLines(data) {
		lines++
		if bytes.Contains(line, autosaveMark) {
			removed++
			continue
		}
		out = append(out, line...)
	}

	return out, lines, removed
}

// splitLines cuts data after every "\r\n", "\n" or bare "\r". Each line keeps its
// terminator; the last line may have none.
func splitLines(data []byte) [][]byte {
	var lines [][]byte

	start := 0
	for i := 0; i < len(data); i++ {
		switch data[i] {
		case '\n':
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				i++
			}
		default:
			continue
		}
		lines = append(lines, data[start:i+1])
		start = i + 1
	}
	if start < len(data) {
		lines = append(lines, data[start:])
	}

	return lines
}

// Strip removes autosave lines from the mission file at path. Files without
// marker lines are left untouched; others are replaced atomically.
func Strip(path string) (Result, error) {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return Result{Path: path}, fmt.Errorf("%s: %w", path, ErrMissingMissionFile)
	}
	if err != nil {
		return Result{Path: path}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, lines, removed := StripBytes(data)
	result := Result{Path: path, Lines: lines, Removed: removed}
	if removed == 0 {
		return result, nil
	}

	if err := replaceFile(path, out, info.Mode().Perm()); err != nil {
		return result, err
	}

	log.Debugf("\t%s: removed %d of %d lines", path, removed, lines)
	return result, nil
}

// StripAll strips the mission file of every folder in order and stops at the
// first failure. Results for the files processed so far are returned either way.
func StripAll(folders Folders) ([]Result, error) {
	results := make([]Result, 0, len(folders))

	for _, folder := range folders {
		result, err := Strip(folder.File())
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// replaceFile writes data to a temporary file next to path and renames it over
// path, so readers see either the old or the new content.
func replaceFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	// Removing is a no-op once the rename succeeded.
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
