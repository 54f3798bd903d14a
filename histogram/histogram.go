// SPDX-License-Identifier: MIT
// Package: graphstat/histogram
//
// histogram.go - Counts/Means types and their key-wise operations.

package histogram

import (
	"errors"
	"sort"
)

// Sentinel errors for the text codec.
var (
	// ErrMalformedLine indicates a line that is not "<int> <number>".
	ErrMalformedLine = errors.New("histogram: malformed line")

	// ErrDuplicateKey indicates a key that appears more than once.
	ErrDuplicateKey = errors.New("histogram: duplicate key")
)

// Counts maps a bucket key to the number of nodes in that bucket.
type Counts map[int]int64

// Means maps a bucket key to an averaged value.
type Means map[int]float64

// Add increments bucket k by n.
func (c Counts) Add(k int, n int64) {
	c[k] += n
}

// Merge adds every bucket of other into c (key-wise addition).
// Merge is commutative and associative, so partial histograms may be merged
// in any order.
// Complexity: O(len(other)).
func (c Counts) Merge(other Counts) {
	for k, n := range other {
		c[k] += n
	}
}

// Total returns the sum of all bucket counts.
func (c Counts) Total() int64 {
	var sum int64
	for _, n := range c {
		sum += n
	}

	return sum
}

// Keys returns the bucket keys ascending.
func (c Counts) Keys() []int {
	return sortedKeys(c)
}

// Keys returns the bucket keys ascending.
func (m Means) Keys() []int {
	return sortedKeys(m)
}

func sortedKeys[V int64 | float64](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
