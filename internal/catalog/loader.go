package catalog

import (
	"bufio"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"

	"awsicons/internal/model"
)

// ManifestName is the listing file expected inside the asset directory.
const ManifestName = "find.txt"

// tripleKey identifies a logical icon. Two manifest entries with the same
// key are the same icon in different file formats.
type tripleKey struct {
	name           string
	category       string
	classification model.Classification
}

// Load reads the manifest in baseDir and returns the deduplicated icon
// catalog in manifest order of first appearance.
//
// Load never fails: a missing or unreadable directory/manifest is logged and
// yields an empty catalog, and malformed entries are logged and skipped.
func Load(baseDir string) []model.IconRecord {
	baseDir = ExpandTilde(baseDir)

	f, err := os.Open(filepath.Join(baseDir, ManifestName))
	if err != nil {
		log.Printf("catalog: cannot read manifest in %s: %v", baseDir, err)
		return []model.IconRecord{}
	}
	defer f.Close()

	records := []model.IconRecord{}
	index := make(map[tripleKey]int) // triple -> position in records

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")

		entry, err := ParseEntry(line)
		if err != nil {
			// Empty lines and directory entries are expected noise;
			// only genuinely malformed entries are worth logging.
			if !errors.Is(err, ErrEmptyLine) && !errors.Is(err, ErrNotFileEntry) {
				log.Printf("catalog: skipping manifest entry: %v", err)
			}
			continue
		}

		key := tripleKey{entry.Name, entry.Category, Classify(entry.Category)}
		if i, ok := index[key]; ok {
			if !records[i].HasFormat(entry.Format) {
				records[i].Formats = append(records[i].Formats, entry.Format)
			}
			continue
		}

		index[key] = len(records)
		records = append(records, model.IconRecord{
			Name:           entry.Name,
			Category:       entry.Category,
			Classification: key.classification,
			Formats:        []string{entry.Format},
			RelPath:        entry.RelPath,
			SourcePath:     filepath.Join(baseDir, filepath.FromSlash(entry.RelPath)),
		})
	}
	if err := scanner.Err(); err != nil {
		log.Printf("catalog: error reading manifest: %v", err)
	}

	return records
}

// ResolvePath returns the on-disk file for a record in the given format.
// SourcePath points at the first format encountered; other formats live next
// to it with the extension swapped.
func ResolvePath(rec model.IconRecord, format string) string {
	ext := filepath.Ext(rec.SourcePath)
	return strings.TrimSuffix(rec.SourcePath, ext) + "." + format
}

// ExpandTilde expands ~ to the user's home directory.
func ExpandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return home
		}
	}
	return path
}
