package parallel

import "github.com/katalvlaran/graphstat/histogram"

// Integer is the set of integer partial results the helpers combine.
type Integer interface {
	~int | ~int64
}

// Sum adds two partial sums.
func Sum[N Integer | ~float64](acc, part N) N {
	return acc + part
}

// Max keeps the larger partial maximum.
func Max[N Integer](acc, part N) N {
	if part > acc {
		return part
	}

	return acc
}

// MergeCounts unions two partial histograms key-wise. acc may be nil.
func MergeCounts(acc, part histogram.Counts) histogram.Counts {
	if acc == nil {
		acc = make(histogram.Counts, len(part))
	}
	acc.Merge(part)

	return acc
}

// Pair carries two partial sums reduced together (e.g. value sum and count).
type Pair[A, B Integer | ~float64] struct {
	First  A
	Second B
}

// SumPair adds two Pair partials component-wise.
func SumPair[A, B Integer | ~float64](acc, part Pair[A, B]) Pair[A, B] {
	return Pair[A, B]{First: acc.First + part.First, Second: acc.Second + part.Second}
}
