// Package combined holds benchmarks that exercise several packages at
// once: a schedule driving a signal queue, full controller lifecycles on
// a pool, and the signal queue against other multi-producer queues.
//
// Isolated micro-benchmarks miss the cost of the hand-offs between
// components; these capture it.
package combined
