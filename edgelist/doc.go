// Package edgelist reads graph inputs from plain-text files.
//
// Formats:
//
//   - Edge list: one record per line, "from to" or "from to weight",
//     separated by spaces or tabs. Blank lines and lines starting with '#'
//     or '%' are comments (SNAP and KONECT headers).
//   - Simplices: three aligned streams. nverts holds one simplex size per
//     line, times holds one integer time per line, and simplices holds the
//     flattened members, one per line, consumed nverts[i] at a time.
//
// Malformed input is fatal: the first bad record stops the read with
// ErrMalformedLine (carrying the stream name and line number), and streams
// that do not line up yield ErrMisaligned.
package edgelist
