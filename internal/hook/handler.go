// SPDX-License-Identifier: MPL-2.0

// Package hook implements the bytecode inspectors that run before the
// interpreter and may short-circuit execution: `--version` and
// `--help`.
package hook

import (
	"slices"
	"strings"

	"litr-cli/pkg/cli"
)

type (
	// Callback is invoked when a hook matches; the invocation is then
	// considered consumed and normal execution is skipped.
	Callback func(inst *cli.Instruction)

	entry struct {
		code     cli.Opcode
		value    string
		callback Callback
	}

	// Handler scans the compiled bytecode for registered opcode/value
	// pairs and fires the first matching callback.
	Handler struct {
		inst  *cli.Instruction
		hooks []entry
	}
)

// NewHandler creates a hook handler over the given bytecode.
func NewHandler(inst *cli.Instruction) *Handler {
	return &Handler{inst: inst}
}

// Add registers a callback for every given constant value of the
// opcode.
func (h *Handler) Add(code cli.Opcode, values []string, callback Callback) {
	for _, value := range values {
		h.hooks = append(h.hooks, entry{code: code, value: value, callback: callback})
	}
}

// Execute scans the bytecode and fires the first matching hook.
// Returns true when the invocation was consumed.
func (h *Handler) Execute() bool {
	offset := 0

	for offset < h.inst.Count() {
		code := cli.Opcode(h.inst.Read(offset))
		offset++

		for _, hook := range h.hooks {
			if code != hook.code {
				continue
			}
			value := h.inst.ReadConstant(h.inst.Read(offset))
			if value == hook.value {
				hook.callback(h.inst)
				return true
			}
		}

		if code != cli.OpClear {
			offset++
		}
	}

	return false
}

// CommandNameBefore returns the dotted scope path open at the first
// occurrence of a definition of any of the given names, e.g. the
// command preceding `--help` in the invocation. Empty when the
// definition appears outside any command scope, or not at all.
func CommandNameBefore(inst *cli.Instruction, names []string) string {
	var scope []string
	offset := 0

	for offset < inst.Count() {
		code := cli.Opcode(inst.Read(offset))
		offset++

		switch code {
		case cli.OpBeginScope:
			scope = append(scope, inst.ReadConstant(inst.Read(offset)))
		case cli.OpClear:
			if len(scope) > 0 {
				scope = scope[:len(scope)-1]
			}
			continue
		case cli.OpDefine:
			name := inst.ReadConstant(inst.Read(offset))
			if slices.Contains(names, name) {
				return strings.Join(scope, ".")
			}
		}

		offset++
	}

	return ""
}
