package family

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kilianp07/santaviz/core/model"
)

var (
	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("missing column")
	// ErrMalformed indicates a cell that does not hold a valid integer.
	ErrMalformed = errors.New("malformed family data")
)

// Column names of the family table.
const (
	ColumnID     = "family_id"
	ColumnPeople = "n_people"
)

// ChoiceColumn returns the header name of the preference at rank r.
func ChoiceColumn(r int) string { return "choice_" + strconv.Itoa(r) }

// Table lists families by index. The position of a family matches its
// position in an assignment record.
type Table []model.Family

// Len returns the number of families.
func (t Table) Len() int { return len(t) }

// People returns the total number of people across all families.
func (t Table) People() int {
	n := 0
	for _, f := range t {
		n += f.Size
	}
	return n
}

type columns struct {
	id      int
	people  int
	choices [model.NumChoices]int
}

func locate(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	cols := columns{id: -1}
	var ok bool
	if cols.people, ok = idx[ColumnPeople]; !ok {
		return cols, fmt.Errorf("%s: %w", ColumnPeople, ErrMissingColumn)
	}
	for r := range cols.choices {
		name := ChoiceColumn(r)
		if cols.choices[r], ok = idx[name]; !ok {
			return cols, fmt.Errorf("%s: %w", name, ErrMissingColumn)
		}
	}
	if i, ok := idx[ColumnID]; ok {
		cols.id = i
	}
	return cols, nil
}

// Load reads a family table in CSV format with a header row. Required columns
// are n_people and choice_0 to choice_9; other columns are ignored.
func Load(r io.Reader) (Table, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("empty family table: %w", ErrMissingColumn)
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := locate(header)
	if err != nil {
		return nil, err
	}

	var table Table
	for row := 0; ; row++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", row, err)
		}
		f, err := parseRow(rec, cols, row)
		if err != nil {
			return nil, err
		}
		table = append(table, f)
	}
	return table, nil
}

func parseRow(rec []string, cols columns, row int) (model.Family, error) {
	cell := func(i int) (int, error) {
		v, err := strconv.Atoi(strings.TrimSpace(rec[i]))
		if err != nil {
			return 0, fmt.Errorf("row %d column %d %q: %w", row, i, rec[i], ErrMalformed)
		}
		return v, nil
	}
	f := model.Family{ID: row}
	var err error
	if cols.id >= 0 {
		if f.ID, err = cell(cols.id); err != nil {
			return f, err
		}
	}
	if f.Size, err = cell(cols.people); err != nil {
		return f, err
	}
	if f.Size <= 0 {
		return f, fmt.Errorf("row %d: family size %d: %w", row, f.Size, ErrMalformed)
	}
	for r, c := range cols.choices {
		if f.Preferences[r], err = cell(c); err != nil {
			return f, err
		}
	}
	return f, nil
}

// LoadFile reads the family table stored at path.
func LoadFile(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
