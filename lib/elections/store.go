package elections

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"electiontracker/lib/timezone"
)

const (
	jsonFileName = "elections.json"
	csvFileName  = "elections.csv"
)

// Store persists the full ordered record set under a data directory.
// elections.json is the authoritative file, elections.csv is regenerated
// from it on every save as a derived export. Writes always rewrite the
// whole set, there is no append path and no protection against a second
// concurrent writer.
type Store struct {
	dataDir string
	now     func() time.Time
}

func NewStore(dataDir string) *Store {
	return &Store{dataDir: dataDir, now: timezone.Now}
}

func (s *Store) JSONPath() string {
	return filepath.Join(s.dataDir, jsonFileName)
}

func (s *Store) CSVPath() string {
	return filepath.Join(s.dataDir, csvFileName)
}

// Load reads the full record set. A store that has never been written
// yields an empty set, a corrupt backing file surfaces the parse error.
func (s *Store) Load() ([]Election, error) {
	buf, err := os.ReadFile(s.JSONPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var records []Election
	err = json.Unmarshal(buf, &records)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.JSONPath(), err)
	}
	return records, nil
}

// Save overwrites both backing files with the given record set.
func (s *Store) Save(records []Election) error {
	err := os.MkdirAll(s.dataDir, 0755)
	if err != nil {
		return err
	}

	buf, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	err = writeFileAtomic(s.JSONPath(), buf)
	if err != nil {
		return err
	}

	return s.writeCSV(records)
}

var csvHeader = []string{
	"location", "state", "office", "district", "election_date",
	"r_plus", "is_uncontested", "incumbent", "source_url", "last_updated",
}

func (s *Store) writeCSV(records []Election) error {
	f, err := os.Create(s.CSVPath())
	if err != nil {
		return err
	}
	defer f.Close()
	return WriteCSV(f, records)
}

// WriteCSV writes the tabular export of a record set. Column names match
// the JSON field names, optional fields serialize as empty cells.
func WriteCSV(out io.Writer, records []Election) error {
	w := csv.NewWriter(out)
	err := w.Write(csvHeader)
	if err != nil {
		return err
	}
	for _, rec := range records {
		rplus := ""
		if rec.RPlus != nil {
			rplus = strconv.FormatFloat(*rec.RPlus, 'g', -1, 64)
		}
		incumbent := ""
		if rec.Incumbent != nil {
			incumbent = *rec.Incumbent
		}
		err = w.Write([]string{
			rec.Location,
			rec.State,
			rec.Office,
			rec.District,
			rec.ElectionDate,
			rplus,
			strconv.FormatBool(rec.IsUncontested),
			incumbent,
			rec.SourceURL,
			rec.LastUpdated,
		})
		if err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// Add appends a single record. Callers with many records must use
// AddBatch, every call here reloads and rewrites the whole set.
func (s *Store) Add(ctx context.Context, record Election) error {
	return s.AddBatch(ctx, []Election{record})
}

// AddBatch appends records in one validate-load-stamp-append-save pass.
// Records without a last_updated are stamped at persistence time. One
// invalid record rejects the whole batch.
func (s *Store) AddBatch(ctx context.Context, records []Election) error {
	for _, rec := range records {
		err := rec.Validate()
		if err != nil {
			return fmt.Errorf("invalid record %q: %w", rec.Location, err)
		}
	}

	existing, err := s.Load()
	if err != nil {
		return err
	}

	stamp := Timestamp(s.now())
	for _, rec := range records {
		if rec.LastUpdated == "" {
			rec.LastUpdated = stamp
		}
		existing = append(existing, rec)
	}

	slog.DebugContext(ctx, "appending records", "count", len(records), "total", len(existing))
	return s.Save(existing)
}

// RemoveDuplicates applies Deduplicate to the stored set and reports how
// many records were dropped.
func (s *Store) RemoveDuplicates(ctx context.Context) (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}

	unique := Deduplicate(records)
	removed := len(records) - len(unique)
	if removed > 0 {
		slog.InfoContext(ctx, "removed duplicate records", "count", removed)
	}

	err = s.Save(unique)
	if err != nil {
		return 0, err
	}
	return removed, nil
}

func writeFileAtomic(path string, buf []byte) error {
	tmp := path + ".tmp"
	err := os.WriteFile(tmp, buf, 0644)
	if err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
