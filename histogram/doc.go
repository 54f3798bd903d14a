// Package histogram holds the bucketed results of graphstat statistics and
// their plain-text persistence format.
//
// Two shapes are used:
//
//   - Counts: bucket key → number of nodes (degree distribution, closed-walk
//     count distribution). Merged key-wise by addition, so partial histograms
//     from parallel workers combine in any order.
//   - Means: bucket key → averaged value (clustering coefficient by degree).
//
// Text format (both shapes):
//
//	<key> <value>\n
//
// one pair per line, ascending by key. Floats are written in the shortest
// form that parses back to the identical float64, so WriteX followed by
// ReadX reproduces the original map exactly.
//
// Errors:
//
//	ErrMalformedLine – a line is not two space-separated numbers
//	ErrDuplicateKey  – the same key appears twice in one file
package histogram
