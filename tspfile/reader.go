package tspfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/annealtsp/tsp"
)

var (
	// ErrMalformedLine is returned for a record line that does not hold
	// "<id> <x> <y>".
	ErrMalformedLine = errors.New("tspfile: malformed record")

	// ErrBadID is returned for external ids below 1.
	ErrBadID = errors.New("tspfile: id must be ≥ 1")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadFile opens path and calls Read.
func ReadFile(path string) ([]tsp.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pts, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pts, nil
}

// Read parses records from r in file order. Non-record lines are skipped;
// fields after the third are ignored. Empty input yields an empty slice.
func Read(r io.Reader) ([]tsp.Point, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		pts    = make([]tsp.Point, 0, 64)
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimLeft(sc.Text(), " \t")
		if !isRecord(line) {
			continue
		}
		p, err := parseRecord(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return pts, nil
}

func isRecord(line string) bool {
	return line != "" && line[0] >= '0' && line[0] <= '9'
}

func parseRecord(line string) (tsp.Point, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return tsp.Point{}, fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedLine, len(fields))
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil {
		return tsp.Point{}, fmt.Errorf("%w: id %q", ErrMalformedLine, fields[0])
	}
	if id < 1 {
		return tsp.Point{}, fmt.Errorf("%w: got %d", ErrBadID, id)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.Point{}, fmt.Errorf("%w: x %q", ErrMalformedLine, fields[1])
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.Point{}, fmt.Errorf("%w: y %q", ErrMalformedLine, fields[2])
	}

	return tsp.Point{ID: id - 1, X: x, Y: y}, nil
}
