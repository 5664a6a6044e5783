// Command consultctl inspects the consultation catalog from a terminal.
//
// Usage:
//
//	consultctl consultations --status active --q nursing
//	consultctl feedback --status pending --format json
//	consultctl groups --q admin
//	consultctl audit
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
