package pak

import (
	"fmt"
	"os"
	"path/filepath"
)

// Locate resolves <base>/resource/map.pak and checks whether it exists.
// The base directory is used as given.
func Locate(base string) Archive {
	path := filepath.Join(base, ResourceDir, ArchiveName)
	_, err := os.Stat(path)
	return Archive{
		Path:   path,
		Exists: err == nil,
	}
}

// Remove deletes the archive file. An archive that is already gone is not an error.
func Remove(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotARegular)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}
