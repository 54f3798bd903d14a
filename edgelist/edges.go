package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphstat/core"
)

// Sentinel errors for input parsing.
var (
	// ErrMalformedLine indicates a record that does not parse.
	ErrMalformedLine = errors.New("edgelist: malformed line")

	// ErrMisaligned indicates simplex streams whose record counts disagree.
	ErrMisaligned = errors.New("edgelist: misaligned simplex streams")
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// ReadEdges feeds every record of r into b and returns the number of
// records read. b is not built; the caller decides when to freeze it.
func ReadEdges(r io.Reader, b *core.Builder) (int, error) {
	sc := newScanner(r)
	records, lineNo := 0, 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if skipLine(line) {
			continue
		}
		from, to, w, err := parseEdge(line)
		if err != nil {
			return records, fmt.Errorf("edges line %d: %q: %w", lineNo, line, err)
		}
		if err = b.AddWeightedEdge(from, to, w); err != nil {
			return records, fmt.Errorf("edges line %d: %w", lineNo, err)
		}
		records++
	}
	if err := sc.Err(); err != nil {
		return records, fmt.Errorf("edges: %w", err)
	}

	return records, nil
}

// LoadEdges reads the edge list at path into a new Builder configured with
// opts and returns the frozen graph.
func LoadEdges(path string, opts ...core.Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadEdges: %w", err)
	}
	defer f.Close()

	b := core.NewBuilder(opts...)
	if _, err = ReadEdges(f, b); err != nil {
		return nil, fmt.Errorf("LoadEdges(%s): %w", path, err)
	}

	return b.Build()
}

func parseEdge(line string) (from, to core.NodeID, w int64, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, 0, fmt.Errorf("want 2 or 3 fields, got %d: %w", len(fields), ErrMalformedLine)
	}
	if from, err = parseNode(fields[0]); err != nil {
		return 0, 0, 0, err
	}
	if to, err = parseNode(fields[1]); err != nil {
		return 0, 0, 0, err
	}
	w = 1
	if len(fields) == 3 {
		if w, err = strconv.ParseInt(fields[2], 10, 64); err != nil || w <= 0 {
			return 0, 0, 0, fmt.Errorf("weight %q: %w", fields[2], ErrMalformedLine)
		}
	}

	return from, to, w, nil
}

func parseNode(s string) (core.NodeID, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("node %q: %w", s, ErrMalformedLine)
	}

	return core.NodeID(id), nil
}

func skipLine(line string) bool {
	return line == "" || line[0] == '#' || line[0] == '%'
}

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return sc
}
