// Package diag defines the diagnostic model shared by the lexer and parser.
//
// Producers emit through the Reporter interface; BagReporter collects into a
// Bag with a size cap. Package diag does no formatting or IO; rendering lives in
// internal/diagfmt.
//
// The optimizer never reports diagnostics: every unsafe situation it meets is
// resolved by skipping the rewrite.
package diag
