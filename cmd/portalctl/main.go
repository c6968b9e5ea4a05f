// Package main is the entry point for portalctl, the operator CLI for the
// member portal database: bootstrap the first admin, change roles, and
// clean up expired sessions without going through the web UI.
package main

import (
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
