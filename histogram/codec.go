// SPDX-License-Identifier: MIT
// Package: graphstat/histogram
//
// codec.go - sorted "key value" text persistence.
//
// Contract:
//   - Write* emits one "key value" line per bucket, ascending by key.
//   - Read* accepts the same format; blank lines are skipped.
//   - Floats use strconv 'g' with precision -1 (shortest exact round trip).

package histogram

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WriteCounts writes c to w in ascending key order.
// Complexity: O(K·log K).
func WriteCounts(w io.Writer, c Counts) error {
	return writeSorted(w, c, func(n int64) string { return strconv.FormatInt(n, 10) })
}

// WriteMeans writes m to w in ascending key order.
// Complexity: O(K·log K).
func WriteMeans(w io.Writer, m Means) error {
	return writeSorted(w, m, func(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) })
}

// ReadCounts parses a Counts histogram written by WriteCounts.
func ReadCounts(r io.Reader) (Counts, error) {
	c := make(Counts)
	err := readPairs(r, func(line, k int, raw string) error {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return fmt.Errorf("line %d: value %q: %w", line, raw, ErrMalformedLine)
		}
		if _, dup := c[k]; dup {
			return fmt.Errorf("line %d: key %d: %w", line, k, ErrDuplicateKey)
		}
		c[k] = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c, nil
}

// ReadMeans parses a Means histogram written by WriteMeans.
func ReadMeans(r io.Reader) (Means, error) {
	m := make(Means)
	err := readPairs(r, func(line, k int, raw string) error {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("line %d: value %q: %w", line, raw, ErrMalformedLine)
		}
		if _, dup := m[k]; dup {
			return fmt.Errorf("line %d: key %d: %w", line, k, ErrDuplicateKey)
		}
		m[k] = f
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}

// SaveCounts writes c to the file at path, truncating it.
func SaveCounts(path string, c Counts) error {
	return saveFile(path, func(w io.Writer) error { return WriteCounts(w, c) })
}

// SaveMeans writes m to the file at path, truncating it.
func SaveMeans(path string, m Means) error {
	return saveFile(path, func(w io.Writer) error { return WriteMeans(w, m) })
}

func writeSorted[V int64 | float64](w io.Writer, m map[int]V, format func(V) string) error {
	bw := bufio.NewWriter(w)
	for _, k := range sortedKeys(m) {
		if _, err := fmt.Fprintf(bw, "%d %s\n", k, format(m[k])); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// readPairs splits every non-blank line into an int key and a raw value and
// hands them to visit together with the 1-based line number.
func readPairs(r io.Reader, visit func(line, key int, raw string) error) error {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			return fmt.Errorf("line %d: %d fields: %w", line, len(fields), ErrMalformedLine)
		}
		k, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("line %d: key %q: %w", line, fields[0], ErrMalformedLine)
		}
		if err = visit(line, k, fields[1]); err != nil {
			return err
		}
	}

	return sc.Err()
}

func saveFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return write(f)
}
