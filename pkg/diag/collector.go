// SPDX-License-Identifier: MPL-2.0

package diag

// Collector accumulates diagnostics in push order. One collector is
// threaded through the whole pipeline (loader, parsers, interpreter) so
// the dependency is visible at every call site; the application flushes
// it through a Reporter at checkpoints.
//
// The pipeline is strictly sequential, so no locking is needed.
type Collector struct {
	diagnostics []Diagnostic
}

// NewCollector creates an empty diagnostic collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Push appends a diagnostic.
func (c *Collector) Push(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
}

// HasErrors reports whether any diagnostic has been pushed since the
// last flush.
func (c *Collector) HasErrors() bool {
	return len(c.diagnostics) > 0
}

// Count returns the number of accumulated diagnostics. Callers use the
// delta around an operation to detect errors local to it.
func (c *Collector) Count() int {
	return len(c.diagnostics)
}

// Diagnostics returns the accumulated diagnostics in push order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// Flush drops all accumulated diagnostics.
func (c *Collector) Flush() {
	c.diagnostics = nil
}
