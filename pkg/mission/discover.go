package mission

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	log "github.com/sirupsen/logrus"
)

// Discover lists every mission folder two levels below <base>/resource/map/single.
// A missing single-player root is an error; empty factions are not.
func Discover(base string) (Folders, error) {
	root := SinglePath(base)

	factions, err := listDirs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list factions: %w", err)
	}
	sort.Strings(factions)

	var folders Folders
	for _, faction := range factions {
		factionPath := filepath.Join(root, faction)

		missions, err := listDirs(factionPath)
		if err != nil {
			return nil, fmt.Errorf("failed to list missions of %s: %w", faction, err)
		}

		for _, name := range missions {
			folder := Folder{
				Faction: faction,
				Name:    name,
				Path:    filepath.Join(factionPath, name),
			}
			log.Debugf("\t%s", folder.Path)
			folders = append(folders, folder)
		}
	}

	return folders, nil
}

// listDirs returns the names of the directories directly inside dir, in the order
// the filesystem returns them. Symlinks count when they resolve to a directory.
func listDirs(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	// File.ReadDir does not sort, unlike os.ReadDir.
	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if isDir(dir, entry) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

func isDir(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}
