package pak

import (
	"fmt"
	"path/filepath"
	"strings"
)

// safeJoin joins an archive entry name onto root and refuses results outside root.
// Backslash separators written by Windows packers are treated as forward slashes
// and leading separators are dropped, so "/map/x" lands at root/map/x.
func safeJoin(root, name string) (string, error) {
	name = strings.TrimLeft(strings.ReplaceAll(name, `\`, "/"), "/")
	if name == "" || filepath.IsAbs(name) {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafePath)
	}

	cleanRoot := filepath.Clean(root)
	target := filepath.Join(cleanRoot, filepath.FromSlash(name))

	rel, err := filepath.Rel(cleanRoot, target)
	if err != nil {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafePath)
	}
	relSl := filepath.ToSlash(rel)
	if relSl == "." || relSl == ".." || strings.HasPrefix(relSl, "../") {
		return "", fmt.Errorf("%q: %w", name, ErrUnsafePath)
	}
	return target, nil
}
