package pak

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ExtractOptions configures the extraction process.
type ExtractOptions struct {
	OutputDir string // Output directory (default: directory containing the archive)
	Verbose   bool   // Log every extracted entry
}

// Extractor handles .pak archive extraction.
type Extractor struct {
	archive *Archive
	opts    ExtractOptions
	stats   Stats
}

// NewExtractor creates a new extractor for the given archive file.
func NewExtractor(archivePath string, opts ExtractOptions) (*Extractor, error) {
	if archivePath == "" {
		return nil, fmt.Errorf("archive path is empty")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = filepath.Dir(archivePath)
	}

	return &Extractor{
		opts: opts,
	}, nil
}

// Open opens the archive and reads its central directory.
func (e *Extractor) Open(archivePath string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to read archive: %w", err)
	}

	e.archive = &Archive{
		Path:   archivePath,
		Exists: true,
		reader: reader,
	}
	return nil
}

// Extract writes every entry of the archive below the output directory.
// Existing files are overwritten.
func (e *Extractor) Extract() error {
	if e.archive == nil {
		return ErrNotOpened
	}

	if err := os.MkdirAll(e.opts.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, entry := range e.archive.Entries() {
		if err := e.extractEntry(entry); err != nil {
			return err
		}
	}

	return nil
}

// extractEntry writes a single ZIP entry.
func (e *Extractor) extractEntry(entry *zip.File) error {
	outPath, err := safeJoin(e.opts.OutputDir, entry.Name)
	if err != nil {
		return err
	}

	if entry.FileInfo().IsDir() || strings.HasSuffix(entry.Name, "/") {
		if err := os.MkdirAll(outPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", outPath, err)
		}
		e.stats.Dirs++
		return nil
	}

	if dir := filepath.Dir(outPath); dir != e.opts.OutputDir {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if e.opts.Verbose {
		log.Debugf("\t%s", outPath)
	}

	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", entry.Name, err)
	}
	defer src.Close()

	dst, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	n, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		return fmt.Errorf("failed to extract %s: %w", entry.Name, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", outPath, err)
	}

	e.stats.Files++
	e.stats.Bytes += uint64(n)
	return nil
}

// Close closes the extractor and the underlying archive.
func (e *Extractor) Close() {
	if e.archive != nil {
		e.archive.Close()
	}
}

// GetArchive returns the opened archive.
func (e *Extractor) GetArchive() *Archive {
	return e.archive
}

// Stats returns counters for the entries extracted so far.
func (e *Extractor) Stats() Stats {
	return e.stats
}

// Expand opens the archive at archivePath and extracts all of it into outputDir.
func Expand(archivePath, outputDir string, verbose bool) (Stats, error) {
	extractor, err := NewExtractor(archivePath, ExtractOptions{
		OutputDir: outputDir,
		Verbose:   verbose,
	})
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create extractor: %w", err)
	}
	defer extractor.Close()

	if err := extractor.Open(archivePath); err != nil {
		return Stats{}, fmt.Errorf("failed to open archive: %w", err)
	}

	if err := extractor.Extract(); err != nil {
		return extractor.Stats(), fmt.Errorf("extraction failed: %w", err)
	}

	return extractor.Stats(), nil
}
