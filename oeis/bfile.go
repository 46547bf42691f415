package oeis

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sequence is a parsed b-file: a value → index mapping with the
// catalogued ordering preserved. Immutable after parsing; safe for
// concurrent reads.
type Sequence struct {
	index  map[int64]int64
	values []int64
}

// ParseBFile reads the b-file format: one "index value" pair per line,
// "#" comments, blank lines, and the occasional garbage row all
// tolerated (skipped), exactly as the reference loaders do. When a
// value repeats, its first index wins.
//
// The only error is a failing reader; content never errors.
func ParseBFile(r io.Reader) (Sequence, error) {
	seq := Sequence{index: make(map[int64]int64)}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			continue
		}
		idx, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			continue
		}
		value, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			continue
		}
		if _, seen := seq.index[value]; !seen {
			seq.index[value] = idx
		}
		seq.values = append(seq.values, value)
	}
	if err := scanner.Err(); err != nil {
		return Sequence{}, fmt.Errorf("oeis: reading b-file: %w", err)
	}

	return seq, nil
}

// IndexOf returns the catalogued index of value and whether it occurs.
func (s Sequence) IndexOf(value int64) (int64, bool) {
	idx, ok := s.index[value]

	return idx, ok
}

// Contains reports whether value occurs in the sequence.
func (s Sequence) Contains(value int64) bool {
	_, ok := s.index[value]

	return ok
}

// Values returns the catalogued values in b-file order.
func (s Sequence) Values() []int64 {
	out := make([]int64, len(s.values))
	copy(out, s.values)

	return out
}

// Len returns the number of catalogued rows (duplicates included).
func (s Sequence) Len() int { return len(s.values) }
