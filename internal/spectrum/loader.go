package spectrum

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/lightpath/cband/internal/storage"
)

// Reference lines look like "1550.12 nm / 193.41 THz". Whitespace is
// flexible and a decimal comma is accepted.
var pairRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*nm\s*/\s*(\d+(?:[.,]\d+)?)\s*thz`)

// LoadOptions configures where Load looks for reference data. Store may be
// nil, in which case only DataDir is scanned.
type LoadOptions struct {
	DataDir string
	Store   storage.ReferenceStore
	Prefix  string
}

// Load builds the wavelength reference table at startup. It scans DataDir
// for .txt files whose name contains "wavelength", then the configured
// object store under Prefix, and collects every nm/THz pair line it finds.
// Unmatched lines, unreadable files, and a missing directory all degrade to
// fewer entries; Load never fails.
func Load(ctx context.Context, opts LoadOptions) Table {
	var entries []Entry
	entries = append(entries, loadDir(opts.DataDir)...)
	if opts.Store != nil {
		entries = append(entries, loadStore(ctx, opts.Store, opts.Prefix)...)
	}
	if len(entries) > 0 {
		log.Info().Int("entries", len(entries)).Msg("Wavelength reference table loaded")
	} else {
		log.Info().Msg("No wavelength reference data found, using physical formula")
	}
	return NewTable(entries)
}

func loadDir(dir string) []Entry {
	if dir == "" {
		return nil
	}
	files, err := os.ReadDir(dir)
	if err != nil {
		// Absent directory is the documented empty-table case.
		return nil
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !isReferenceName(f.Name()) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, f.Name()))
		if err != nil {
			log.Warn().Err(err).Str("file", f.Name()).Msg("Skipping unreadable reference file")
			continue
		}
		entries = append(entries, parsePairs(string(data))...)
	}
	return entries
}

func loadStore(ctx context.Context, store storage.ReferenceStore, prefix string) []Entry {
	keys, err := store.ListKeys(ctx, prefix)
	if err != nil {
		log.Warn().Err(err).Msg("Listing reference objects failed, continuing without them")
		return nil
	}

	var entries []Entry
	for _, key := range keys {
		if !isReferenceName(filepath.Base(key)) {
			continue
		}
		data, err := store.Download(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Skipping undownloadable reference object")
			continue
		}
		entries = append(entries, parsePairs(string(data))...)
	}
	return entries
}

func isReferenceName(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".txt") && strings.Contains(lower, "wavelength")
}

func parsePairs(text string) []Entry {
	var entries []Entry
	for _, line := range strings.Split(text, "\n") {
		m := pairRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		nm, err1 := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		thz, err2 := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", "."), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		entries = append(entries, Entry{NM: nm, THz: thz})
	}
	return entries
}
