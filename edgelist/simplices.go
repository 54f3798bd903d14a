package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphstat/core"
)

// intStream yields one integer per non-blank line and tracks line numbers.
type intStream struct {
	name   string
	sc     *bufio.Scanner
	lineNo int
}

// next returns the next integer; ok is false at end of stream.
func (s *intStream) next() (v int64, ok bool, err error) {
	for s.sc.Scan() {
		s.lineNo++
		line := strings.TrimSpace(s.sc.Text())
		if line == "" {
			continue
		}
		v, err = strconv.ParseInt(line, 10, 64)
		if err != nil {
			return 0, false, fmt.Errorf("%s line %d: %q: %w", s.name, s.lineNo, line, ErrMalformedLine)
		}
		return v, true, nil
	}
	if err = s.sc.Err(); err != nil {
		return 0, false, fmt.Errorf("%s: %w", s.name, err)
	}

	return 0, false, nil
}

// ReadSimplices reads three aligned streams into a TemporalGraph.
// Record i is a simplex of nverts[i] members taken from simplices, stamped
// with times[i]. Sizes and members must be non-negative.
func ReadSimplices(nverts, simplices, times io.Reader) (*core.TemporalGraph, error) {
	sizes := &intStream{name: "nverts", sc: newScanner(nverts)}
	members := &intStream{name: "simplices", sc: newScanner(simplices)}
	stamps := &intStream{name: "times", sc: newScanner(times)}

	tb := core.NewTemporalBuilder()
	var simplex []core.NodeID
	for record := 1; ; record++ {
		size, okSize, err := sizes.next()
		if err != nil {
			return nil, err
		}
		t, okTime, err := stamps.next()
		if err != nil {
			return nil, err
		}
		if !okSize || !okTime {
			if okSize != okTime {
				return nil, fmt.Errorf("record %d: nverts and times end at different records: %w", record, ErrMisaligned)
			}
			break
		}
		if size < 0 {
			return nil, fmt.Errorf("nverts line %d: size %d: %w", sizes.lineNo, size, ErrMalformedLine)
		}

		simplex = simplex[:0]
		for i := int64(0); i < size; i++ {
			m, ok, err := members.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, fmt.Errorf("record %d: simplices exhausted after %d of %d members: %w",
					record, i, size, ErrMisaligned)
			}
			if m < 0 {
				return nil, fmt.Errorf("simplices line %d: member %d: %w", members.lineNo, m, ErrMalformedLine)
			}
			simplex = append(simplex, core.NodeID(m))
		}
		if err = tb.AddSimplex(int(t), simplex); err != nil {
			return nil, err
		}
	}

	if _, extra, err := members.next(); err != nil || extra {
		if err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("simplices line %d: members left after the last record: %w", members.lineNo, ErrMisaligned)
	}

	return tb.Build()
}

// LoadSimplices opens the three files and calls ReadSimplices.
func LoadSimplices(nvertsPath, simplicesPath, timesPath string) (*core.TemporalGraph, error) {
	paths := []string{nvertsPath, simplicesPath, timesPath}
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		f, err := os.Open(p)
		if err != nil {
			return nil, fmt.Errorf("LoadSimplices: %w", err)
		}
		defer f.Close()
		readers = append(readers, f)
	}

	tg, err := ReadSimplices(readers[0], readers[1], readers[2])
	if err != nil {
		return nil, fmt.Errorf("LoadSimplices: %w", err)
	}

	return tg, nil
}
