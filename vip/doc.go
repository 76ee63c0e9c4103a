// Package vip holds the problem descriptor and the lazy iteration
// protocol shared by every solver in the module.
//
// A Problem is the immutable triple (feasible set C, operator F, optional
// Lipschitz constant L). Solvers consume it and produce a Sequence: a
// pull-based, unbounded stream of iterates in the bufio.Scanner shape —
//
//	for seq.Next() {
//	    x := seq.X()
//	    ...
//	}
//	if err := seq.Err(); err != nil { ... }
//
// Nothing is computed beyond the iterate you pull, and abandoning a
// Sequence cancels the run; there are no resources to release. Take and
// Enumerate wrap a Sequence without materializing it.
package vip
