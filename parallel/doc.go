// Package parallel is the data-parallel execution layer shared by every
// graphstat statistic.
//
// What:
//
//   - Partition splits the sorted node list of a core.Graph into contiguous,
//     non-empty chunks.
//   - MapReduce runs a Task over every chunk on a bounded worker pool
//     (golang.org/x/sync/errgroup with SetLimit), keeps each partial result in
//     a slot owned by its partition, and merges the slots once, after the
//     barrier, in partition order with a caller-supplied Combine.
//
// Guarantees:
//
//   - The graph is only read. Workers never see each other's partial state;
//     there is no shared accumulator.
//   - Integer sums, maxima and histogram unions are exactly equal to the
//     sequential result. Float sums may differ from a sequential pass in the
//     last bits because the summation order differs; compare them within a
//     small relative tolerance.
//   - A panicking Task is recovered and reported as ErrWorkerPanic. Every
//     failed partition is joined into one error wrapped with ErrPassFailed;
//     the first failure cancels partitions that have not started yet. Wait
//     never hangs on a failed worker.
//
// Options:
//
//	WithWorkers(n)     – goroutine limit, default runtime.GOMAXPROCS(0)
//	WithPartitions(n)  – number of chunks, default 4 × workers
//
// Complexity:
//
//	Partition: O(V) time, O(P) slice headers (chunks alias the node slice).
//	MapReduce: O(V / workers) wall time per pass + O(P) merge.
package parallel
