package batch

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dharanetra/dhara/internal/soil"
)

// Item is one sample read from an input file. Err is set when the row
// itself could not be turned into a sample; such items are reported, not
// classified.
type Item struct {
	Source   string
	Line     int
	Document soil.Document
	Err      error
}

// Label identifies the item in reports: the document ID when present,
// otherwise source and line.
func (it Item) Label() string {
	if it.Document.ID != "" {
		return it.Document.ID
	}
	return fmt.Sprintf("%s:%d", it.Source, it.Line)
}

// ErrUnknownFormat is returned for files that are neither CSV nor JSON lines.
var ErrUnknownFormat = errors.New("batch: unknown input format")

// ReadFile reads items from a .csv file or a .jsonl/.ndjson/.json file of
// one sample document per line.
func ReadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ReadCSV(f, path)
	case ".jsonl", ".ndjson", ".json":
		return ReadJSONLines(f, path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

const (
	columnID   = "id"
	columnKind = "kind"
)

// ReadCSV reads items from CSV with a header row. Columns are property
// keys plus the optional id and kind columns; an empty cell means the
// property was not measured. An unknown column fails the whole read, a bad
// cell fails only its row.
func ReadCSV(r io.Reader, source string) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", source, err)
	}
	for i, col := range header {
		col = strings.ToLower(strings.TrimSpace(col))
		header[i] = col
		if col != columnID && col != columnKind && !soil.Property(col).IsKnown() {
			return nil, fmt.Errorf("%s: unknown column %q", source, col)
		}
	}

	var items []Item
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", source, err)
		}
		line, _ := cr.FieldPos(0)
		items = append(items, parseRecord(header, record, source, line))
	}
	return items, nil
}

func parseRecord(header, record []string, source string, line int) Item {
	it := Item{Source: source, Line: line, Document: soil.Document{Sample: make(soil.Sample)}}
	if len(record) > len(header) {
		it.Err = fmt.Errorf("row has %d fields, header has %d", len(record), len(header))
		return it
	}

	for i, cell := range record {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		switch col := header[i]; col {
		case columnID:
			it.Document.ID = cell
		case columnKind:
			k := soil.Kind(strings.ToLower(cell))
			if k != soil.KindFine && k != soil.KindCoarse {
				it.Err = &soil.InputError{Reason: fmt.Sprintf("unknown kind %q", cell)}
				return it
			}
			it.Document.Kind = k
		default:
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				it.Err = &soil.InputError{Property: soil.Property(col), Reason: fmt.Sprintf("not a number: %q", cell)}
				return it
			}
			it.Document.Sample[soil.Property(col)] = v
		}
	}
	return it
}

// maxLineSize bounds a single JSON line.
const maxLineSize = 1 << 20

// ReadJSONLines reads one sample document per line. Blank lines and lines
// starting with # are skipped; a line that fails to parse or validate
// becomes an item carrying the error.
func ReadJSONLines(r io.Reader, source string) ([]Item, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var items []Item
	line := 0
	for sc.Scan() {
		line++
		raw := bytes.TrimSpace(sc.Bytes())
		if len(raw) == 0 || raw[0] == '#' {
			continue
		}
		doc, err := soil.ParseDocument(raw)
		items = append(items, Item{Source: source, Line: line, Document: doc, Err: err})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return items, nil
}
