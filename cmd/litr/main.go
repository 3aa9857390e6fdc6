// SPDX-License-Identifier: MPL-2.0

// Litr is a language independent task runner: commands are declared in
// a litr.toml file and invoked from the command line.
package main

import (
	"os"

	"litr-cli/internal/app"
)

func main() {
	os.Exit(app.New().Run(os.Args[1:]))
}
