package minpairs

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// column identifies one field of a lexicon row.
type column int

const (
	colOrthography column = iota
	colTranscription
	colFrequency
	colPOS
	colEtymology
	numColumns
)

var columnNames = [numColumns]string{"orthography", "transcription", "frequency", "pos", "etymology"}

// columnAliases maps accepted header names to a column. hangul, ipa and
// abs_freq are the headers of the Kang & Kim frequency list.
var columnAliases = map[string]column{
	"orthography":    colOrthography,
	"orth":           colOrthography,
	"word":           colOrthography,
	"hangul":         colOrthography,
	"transcription":  colTranscription,
	"ipa":            colTranscription,
	"pron":           colTranscription,
	"frequency":      colFrequency,
	"freq":           colFrequency,
	"abs_freq":       colFrequency,
	"pos":            colPOS,
	"part_of_speech": colPOS,
	"etymology":      colEtymology,
	"ety":            colEtymology,
	"origin":         colEtymology,
}

// rowDecoder turns raw string rows into records using a resolved header.
type rowDecoder struct {
	index  [numColumns]int
	logger *slog.Logger
	source string
}

func newRowDecoder(header []string, source string, logger *slog.Logger) (*rowDecoder, error) {
	d := &rowDecoder{logger: logger, source: source}
	for i := range d.index {
		d.index[i] = -1
	}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if c, ok := columnAliases[h]; ok && d.index[c] < 0 {
			d.index[c] = i
		}
	}
	for _, c := range []column{colOrthography, colTranscription, colFrequency, colPOS} {
		if d.index[c] < 0 {
			return nil, fmt.Errorf("%w: %s: missing required column %q", ErrLexiconLoad, source, columnNames[c])
		}
	}
	return d, nil
}

func (d *rowDecoder) field(row []string, c column) string {
	i := d.index[c]
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// decode returns the record for row, or false when the row is malformed.
// Malformed rows are logged and skipped.
func (d *rowDecoder) decode(row []string, line int) (Record, bool) {
	skip := func(reason string, args ...any) (Record, bool) {
		attrs := append([]any{
			slog.String("source", d.source),
			slog.Int("line", line),
			slog.String("reason", reason),
		}, args...)
		d.logger.Warn("skipping lexicon row", attrs...)
		return Record{}, false
	}

	segs := ParseTranscription(d.field(row, colTranscription))
	if len(segs) == 0 {
		return skip("missing transcription")
	}
	for _, s := range segs {
		if s == Placeholder {
			return skip("reserved symbol in transcription", slog.String("symbol", Placeholder))
		}
	}

	var freq float64
	if raw := d.field(row, colFrequency); raw != "" {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil || f < 0 {
			return skip("invalid frequency", slog.String("value", raw))
		}
		freq = f
	}

	ety, err := ParseEtymology(d.field(row, colEtymology))
	if err != nil {
		d.logger.Debug("unrecognised etymology code",
			slog.String("source", d.source),
			slog.Int("line", line),
			slog.String("value", d.field(row, colEtymology)),
		)
	}

	return Record{
		Orthography:   d.field(row, colOrthography),
		Transcription: segs,
		Frequency:     freq,
		POS:           strings.ToUpper(d.field(row, colPOS)),
		Etymology:     ety,
	}, true
}

// ReadCSV reads a lexicon from a CSV table with a header row.
// Rows with no transcription or an unparsable frequency are skipped with a
// warning. A missing required column or a read error returns ErrLexiconLoad.
func ReadCSV(r io.Reader, source string, logger *slog.Logger) (*Lexicon, error) {
	if logger == nil {
		logger = slog.Default()
	}
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: read header: %v", ErrLexiconLoad, source, err)
	}
	dec, err := newRowDecoder(header, source, logger)
	if err != nil {
		return nil, err
	}

	var records []Record
	skipped := 0
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s: line %d: %v", ErrLexiconLoad, source, line, err)
		}
		rec, ok := dec.decode(row, line)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	logger.Info("lexicon loaded",
		slog.String("source", source),
		slog.Int("records", len(records)),
		slog.Int("skipped", skipped),
	)
	return NewLexicon(records)
}

// LoadCSV opens path and reads it with ReadCSV.
func LoadCSV(path string, logger *slog.Logger) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLexiconLoad, path, err)
	}
	defer f.Close()
	return ReadCSV(f, path, logger)
}

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQLite reads a lexicon from table in the SQLite database at path.
// Columns are matched by name with the same aliases as ReadCSV.
func LoadSQLite(ctx context.Context, path, table string, logger *slog.Logger) (*Lexicon, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("%w: invalid table name %q", ErrLexiconLoad, table)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLexiconLoad, path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrLexiconLoad, path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT * FROM "`+table+`"`)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %v", ErrLexiconLoad, table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: columns %s: %v", ErrLexiconLoad, table, err)
	}
	source := path + ":" + table
	dec, err := newRowDecoder(cols, source, logger)
	if err != nil {
		return nil, err
	}

	var records []Record
	skipped := 0
	vals := make([]sql.NullString, len(cols))
	ptrs := make([]any, len(cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	row := make([]string, len(cols))
	for line := 1; rows.Next(); line++ {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("%w: %s: row %d: %v", ErrLexiconLoad, source, line, err)
		}
		for i, v := range vals {
			row[i] = v.String
		}
		rec, ok := dec.decode(row, line)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLexiconLoad, source, err)
	}

	logger.Info("lexicon loaded",
		slog.String("source", source),
		slog.Int("records", len(records)),
		slog.Int("skipped", skipped),
	)
	return NewLexicon(records)
}
