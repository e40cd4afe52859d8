// Package pak locates and extracts the ZIP-based .pak resource archives shipped
// with Men of War: Assault Squad 2.
package pak

import (
	"archive/zip"
	"path/filepath"
)

// Layout constants relative to the game base directory.
const (
	ResourceDir = "resource" // Extraction target, parent of map.pak
	ArchiveName = "map.pak"  // Mission map archive
)

// Archive describes a located .pak file.
type Archive struct {
	Path   string // Resolved path of the archive
	Exists bool   // Whether the file was present when located

	reader *zip.ReadCloser
}

// Entries returns the archive's ZIP entries. It is empty until the archive is opened.
func (a *Archive) Entries() []*zip.File {
	if a.reader == nil {
		return nil
	}
	return a.reader.File
}

// Close releases the underlying ZIP reader.
func (a *Archive) Close() {
	if a.reader != nil {
		a.reader.Close()
		a.reader = nil
	}
}

// Stats summarizes an extraction run.
type Stats struct {
	Files int    // Regular files written
	Dirs  int    // Directory entries created
	Bytes uint64 // Uncompressed bytes written
}

// ResourcePath returns <base>/resource.
func ResourcePath(base string) string {
	return filepath.Join(base, ResourceDir)
}
