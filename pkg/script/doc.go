// SPDX-License-Identifier: MPL-2.0

// Package script implements the template language embedded in command
// scripts. A script line is plain shell text with `%{ … }` sequences;
// inside a sequence the language knows single-quoted strings, variable
// identifiers and the `or` keyword for boolean choice.
//
// The scanner runs in two modes switched by `%{` and `}` (kept on an
// explicit mode stack); the compiler resolves a script against a set of
// bound variables into the final shell string, or — in
// reference-collection mode — merely records which variables the
// script mentions.
package script
