package solution

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/kilianp07/santaviz/core/model"
)

var (
	// ErrNotFound indicates the file holds fewer records than requested.
	ErrNotFound = errors.New("record not found")
	// ErrMalformed indicates a record that is not a list of integers.
	ErrMalformed = errors.New("malformed record")
)

// maxLineSize bounds a single record. A full schedule of 5000 families is
// well below 64KiB but lines are allowed to grow past the scanner default.
const maxLineSize = 4 << 20

// Select returns the record at the zero-based index.
func Select(r io.Reader, index int) (model.Assignment, error) {
	if index < 0 {
		return nil, fmt.Errorf("negative index %d: %w", index, ErrNotFound)
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		if line == index {
			return Parse(scanner.Text(), line)
		}
		line++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line, err)
	}
	return nil, fmt.Errorf("index %d with %d records: %w", index, line, ErrNotFound)
}

// SelectFile opens path and returns the record at the zero-based index.
func SelectFile(path string, index int) (model.Assignment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	a, err := Select(f, index)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Parse converts one comma separated line into an assignment. line is only
// used for error context.
func Parse(text string, line int) (model.Assignment, error) {
	fields := strings.Split(text, ",")
	a := make(model.Assignment, len(fields))
	for i, w := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			return nil, fmt.Errorf("line %d field %d %q: %w", line, i, w, ErrMalformed)
		}
		a[i] = v
	}
	return a, nil
}
