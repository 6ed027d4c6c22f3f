// Package usage computes per-binding and per-function facts about a
// resolved tree: how every binding is declared, referenced and assigned,
// and which functions use eval, with or arguments. The optimizer reads
// these facts and attaches parameter verdicts to them.
package usage
