// SPDX-License-Identifier: MPL-2.0

// Package litrfile implements the declarative configuration model: the
// command/parameter tree loaded from litr.toml, with a source location
// for every parsed entity, and the read-only query layer the
// interpreter and the help renderer consume.
//
// The TOML document is parsed with go-toml's low-level parser so each
// value keeps its byte offset; an ordered document tree is built first
// and then interpreted by the command and parameter builders.
package litrfile
