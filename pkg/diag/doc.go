// SPDX-License-Identifier: MPL-2.0

// Package diag holds the shared error-reporting model: typed diagnostic
// kinds, source locations into the configuration file and the command
// line, an ordered collector, and the terminal reporter.
//
// Parsers and the interpreter never print directly; they push
// diagnostics into a Collector, and the application flushes the
// collector through a Reporter at well-defined checkpoints.
package diag
