// Package swap randomizes a compressed PAM with checkerboard swaps.
//
// Each iteration picks two distinct columns c1, c2 and a row r1 at random.
// If M[r1][c1] != M[r1][c2], the rows are scanned from a random start
// (wrapping around) for an r2 that completes a checkerboard:
//
//	        c1 c2            c1 c2
//	r1   [  1  0 ]   ->   [  0  1 ]
//	r2   [  0  1 ]        [  1  0 ]
//
// and the four corner cells are flipped. Every row sum and column sum of the
// result equals the input's; only the arrangement changes.
//
// The loop is strictly sequential: each swap depends on the matrix state left
// by the previous one.
//
// Stopping rules:
//
//   - the iteration budget K is spent (WithIterations, default DefaultIterations);
//   - a target number of swaps is reached (WithTargetSwaps);
//   - MaxTriesWithoutSwap consecutive attempts fail to find a swap.
//
// Complexity: O(K·R) time worst case, O(R·C) memory for the output copy.
package swap
