// Package randomize owns one randomization run: the original (method NONE)
// or a SWAP or SPLOTCH null model of a grid view's matrix.
//
// A Run moves through two orthogonal dimensions:
//
//	stage:  GENERAL → {CALCULATE | SWAP | SPLOTCH} → COMPLETE
//	status: GENERAL → COMPUTING → COMPLETE | ERROR
//
// Compute is the only operation that produces a matrix and may run once;
// a second call fails with ErrAlreadyComputed until Clear resets the run.
// A failed Compute leaves status ERROR, an error code, and no matrix.
//
// Runs perform no locking. A Run is owned by one goroutine at a time; the
// grid view hands each run its own copy of the inputs.
package randomize
