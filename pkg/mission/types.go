// Package mission discovers single-player mission folders in an extracted map
// tree and strips autosave triggers from their definition files.
package mission

import (
	"path/filepath"
)

// Layout constants relative to the game base directory.
const (
	SingleDir    = "resource/map/single" // Root of the faction folders
	MissionFile  = "0.mi"                // Mission definition inside each mission folder
	AutosaveMark = `{"autosave"}`        // Lines containing this are removed
)

// Folder is a single mission directory.
type Folder struct {
	Faction string // Name of the faction folder
	Name    string // Name of the mission folder
	Path    string // Full path of the mission folder
}

// File returns the path of the mission's definition file.
func (f Folder) File() string {
	return filepath.Join(f.Path, MissionFile)
}

// Folders is an ordered list of mission folders.
//
// Factions appear in lexicographic order of their names and all missions of one
// faction precede those of the next. Missions within a faction keep the order in
// which the filesystem enumerated them and are not sorted.
type Folders []Folder

// Paths returns the folder paths in order.
func (fs Folders) Paths() []string {
	paths := make([]string, len(fs))
	for i, f := range fs {
		paths[i] = f.Path
	}
	return paths
}

// Factions returns the distinct faction names in order of first appearance.
func (fs Folders) Factions() []string {
	var names []string
	for i, f := range fs {
		if i == 0 || fs[i-1].Faction != f.Faction {
			names = append(names, f.Faction)
		}
	}
	return names
}

// Result describes the outcome of stripping one mission file.
type Result struct {
	Path    string // Mission file path
	Lines   int    // Lines read
	Removed int    // Lines dropped
}

// Changed reports whether the file was rewritten.
func (r Result) Changed() bool {
	return r.Removed > 0
}

// SinglePath returns <base>/resource/map/single.
func SinglePath(base string) string {
	return filepath.Join(base, filepath.FromSlash(SingleDir))
}
