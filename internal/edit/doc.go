// Package edit parses the clipcraft token grammar into an ordered list of
// edit operations.
//
//	<program> [--resize W:H] [--quality Q] [--preview] [--merge P1 P2 [P3 ...]] <outpath>
//
// Flags may appear in any order. The output path must be the last token;
// --merge consumes every token up to (not including) that final one.
// The first error aborts the whole parse.
package edit
