// SPDX-License-Identifier: MIT
// Package semantic: CSV reader.
//
// Each row of the CSV carries an ordered class pair (class1, class2) and
// sixteen cosine similarities, one per combination of source-code token
// kinds. Columns are located by header name, so their order in the file is
// irrelevant; unnamed columns (a trailing comma on every line) and extra
// named columns are ignored.

package semantic

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CosineCount is the number of similarity columns per record.
const CosineCount = 16

// Columns lists the similarity column headers; Record.Cosine[i] holds Columns[i].
var Columns = [CosineCount]string{
	"comments#Cosine",
	"imports#Cosine",
	"methods#Cosine",
	"variables#Cosine",
	"fields#Cosine",
	"calls#Cosine",
	"imports-fields-methods-variables-comments#Cosine",
	"imports-fields-methods-variables#Cosine",
	"fields-variables-methods#Cosine",
	"fields-methods#Cosine",
	"fields-variables#Cosine",
	"imports-fields-methods-variables-comments-calls#Cosine",
	"imports-fields-methods-variables-calls#Cosine",
	"fields-variables-methods-calls#Cosine",
	"fields-methods-calls#Cosine",
	"methods-calls#Cosine",
}

const (
	fromColumn = "class1"
	toColumn   = "class2"
)

var (
	// ErrMissingColumn indicates a header without a required column.
	ErrMissingColumn = errors.New("semantic: missing column")

	// ErrMalformedRecord indicates a row that cannot be parsed.
	ErrMalformedRecord = errors.New("semantic: malformed record")
)

// Key identifies an ordered class pair.
type Key struct {
	From string
	To   string
}

// Record is one row of the table.
type Record struct {
	From   string
	To     string
	Cosine [CosineCount]float64
}

// Key returns the ordered pair of r.
func (r Record) Key() Key { return Key{From: r.From, To: r.To} }

// layout maps a logical field to its column position.
type layout struct {
	from, to int
	cosine   [CosineCount]int
}

func resolveLayout(header []string) (layout, error) {
	pos := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := pos[name]; !dup {
			pos[name] = i
		}
	}
	lookup := func(name string) (int, error) {
		i, ok := pos[name]
		if !ok {
			return 0, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return i, nil
	}

	var l layout
	var err error
	if l.from, err = lookup(fromColumn); err != nil {
		return l, err
	}
	if l.to, err = lookup(toColumn); err != nil {
		return l, err
	}
	for k, name := range Columns {
		if l.cosine[k], err = lookup(name); err != nil {
			return l, err
		}
	}
	return l, nil
}

// Read parses a whole table. The UTF-8 byte order mark some exporters
// emit is tolerated.
func Read(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("semantic: header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	l, err := resolveLayout(header)
	if err != nil {
		return nil, err
	}

	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedRecord, line, err)
		}
		rec := Record{From: row[l.from], To: row[l.to]}
		for k, col := range l.cosine {
			v, perr := strconv.ParseFloat(strings.TrimSpace(row[col]), 64)
			if perr != nil {
				return nil, fmt.Errorf("%w: line %d: column %q: %v", ErrMalformedRecord, line, Columns[k], perr)
			}
			rec.Cosine[k] = v
		}
		out = append(out, rec)
	}

	return out, nil
}

// ReadFile opens path and calls Read.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("semantic: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Index keys records by pair. A pair listed twice keeps its last row.
func Index(records []Record) map[Key]Record {
	out := make(map[Key]Record, len(records))
	for _, r := range records {
		out[r.Key()] = r
	}

	return out
}
