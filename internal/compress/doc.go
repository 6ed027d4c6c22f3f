// Package compress holds the optimizer passes of jsmin.
//
// The parameter inlining pass runs in two phases per optimizer iteration:
// AnalyzeParams logs the trackable argument values of every direct call to a
// named function and folds them into per-parameter verdicts; InlineParams
// then rewrites one function, turning parameters that always receive the
// same constant into a const binding at the top of the body.
package compress
