// Package bench runs matcher benchmark suites over generated
// missions.
//
// A suite is a slice of Cells (method × node count × edge rate ×
// seed). Each cell regenerates its mission from the seed, runs the
// matcher to completion through the cooperative runner, and reports one
// Row. Cells run concurrently on a bounded worker pool; no two cells
// share any state, so concurrency cannot affect scores or step
// counts.
package bench
