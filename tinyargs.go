// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package tinyargs parses command lines against a static tree of commands.
//
// A tree is declared once with NewCommand and finalized with Build. Each command declares
// arguments by name (Short, Long or Both) and value kind:
//
//	String   - the following token, verbatim
//	Integer  - the following token, parsed as int64
//	Float    - the following token, parsed as float64
//	FilePath - the following token, kept as an opaque path
//	Flag     - no value, only the number of occurrences counts
//
// Parsing first walks leading tokens down the tree to find the target command, then reads
// the rest as argument/value pairs in a single left-to-right pass. An argument may be
// repeated: every occurrence is counted and the last value wins. There are no positional
// arguments, no bundled short flags (-abc) and no --name=value form.
package tinyargs
