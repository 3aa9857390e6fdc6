// SPDX-License-Identifier: MPL-2.0

// Package cli implements the invocation language: the scanner and
// recursive-descent parser that compile command line text into a linear
// bytecode stream, the bytecode itself, and the interpreter that walks
// it — binding variables, validating against the configuration,
// expanding scripts and dispatching them through a shell executor.
package cli
