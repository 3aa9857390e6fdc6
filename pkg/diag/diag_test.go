// SPDX-License-Identifier: MPL-2.0

package diag_test

import (
	"bytes"
	"strings"
	"testing"

	"litr-cli/pkg/diag"
)

func TestCollectorKeepsPushOrder(t *testing.T) {
	t.Parallel()

	errs := diag.NewCollector()
	errs.Push(diag.New(diag.CLIParse, "first"))
	errs.Push(diag.New(diag.ScriptParse, "second"))

	diagnostics := errs.Diagnostics()
	if len(diagnostics) != 2 {
		t.Fatalf("count = %d, want 2", len(diagnostics))
	}
	if diagnostics[0].Message != "first" || diagnostics[1].Message != "second" {
		t.Errorf("order = %q, %q", diagnostics[0].Message, diagnostics[1].Message)
	}
}

func TestCollectorFlush(t *testing.T) {
	t.Parallel()

	errs := diag.NewCollector()
	errs.Push(diag.New(diag.CLIParse, "x"))
	errs.Flush()

	if errs.HasErrors() {
		t.Error("collector still has errors after flush")
	}
	if errs.Count() != 0 {
		t.Errorf("count = %d, want 0", errs.Count())
	}
}

func TestKindTitles(t *testing.T) {
	t.Parallel()

	for kind, want := range map[diag.Kind]string{
		diag.ReservedParam:    "Parameter name is reserved!",
		diag.MalformedFile:    "Invalid file format!",
		diag.CLIParse:         "Problem parsing command line arguments!",
		diag.ScriptParse:      "Problem parsing script!",
		diag.CommandNotFound:  "Command not found!",
		diag.ExecutionFailure: "Problem executing command!",
	} {
		if got := kind.Title(); got != want {
			t.Errorf("Title(%v) = %q, want %q", kind, got, want)
		}
	}
}

func TestKindIsValid(t *testing.T) {
	t.Parallel()

	if ok, _ := diag.CLIParse.IsValid(); !ok {
		t.Error("CLIParse should be valid")
	}
	if ok, errs := diag.Kind(99).IsValid(); ok || len(errs) != 1 {
		t.Error("Kind(99) should be invalid with one error")
	}
}

func TestReporterLocatedDiagnostic(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	reporter := diag.NewReporter("/tmp/litr.toml", out)

	reporter.PrintAll([]diag.Diagnostic{
		diag.NewAt(diag.MalformedCommand, "The \"output\" is wrong.", diag.Location{
			Line:     4,
			Column:   10,
			LineText: `output = "loud"`,
		}),
	})

	text := out.String()
	for _, want := range []string{
		"Error: Command format is wrong!",
		"→ /tmp/litr.toml",
		`4 | output = "loud"`,
		`└─ The "output" is wrong.`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q in:\n%s", want, text)
		}
	}
}

func TestReporterCaretColumn(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	reporter := diag.NewReporter("litr.toml", out)

	reporter.Print(diag.NewAt(diag.CLIParse, "boom", diag.Location{
		Line: 1, Column: 8, LineText: "build x",
	}))

	// The caret line is padded so the arrow lands under the column.
	var caretLine string
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "└─") {
			caretLine = line
		}
	}
	if caretLine == "" {
		t.Fatal("no caret line printed")
	}
	if !strings.Contains(caretLine, "└─ boom") {
		t.Errorf("caret line = %q", caretLine)
	}
}

func TestReporterCommandNotFound(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	reporter := diag.NewReporter("litr.toml", out)

	reporter.Print(diag.New(diag.CommandNotFound, `Command "x" could not be found.`))

	text := out.String()
	if !strings.Contains(text, `Error: Command "x" could not be found.`) {
		t.Errorf("output = %q", text)
	}
	if strings.Contains(text, "litr.toml") {
		t.Errorf("command-not-found must not print the file line: %q", text)
	}
}

func TestReporterExecutionFailure(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	reporter := diag.NewReporter("litr.toml", out)

	reporter.Print(diag.New(diag.ExecutionFailure, "Problem executing."))

	text := out.String()
	if !strings.Contains(text, "Error: Problem executing.") {
		t.Errorf("output = %q", text)
	}
	if !strings.Contains(text, "→ litr.toml") {
		t.Errorf("execution failure should print the file line: %q", text)
	}
}

func TestReporterElidesRepeatedHeaders(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	reporter := diag.NewReporter("litr.toml", out)

	loc := diag.Location{Line: 1, Column: 1, LineText: "x"}
	reporter.PrintAll([]diag.Diagnostic{
		diag.NewAt(diag.MalformedParam, "first", loc),
		diag.NewAt(diag.MalformedParam, "second", loc),
	})

	text := out.String()
	if got := strings.Count(text, "Error:"); got != 1 {
		t.Errorf("headers = %d, want 1 (follow-ups collapse to ellipsis)", got)
	}
	if !strings.Contains(text, "...") {
		t.Errorf("missing ellipsis in %q", text)
	}
}
