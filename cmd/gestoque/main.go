// Package main provides the gestoque CLI, the command-line surface of
// the inventory, sales, and expense ledger.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/leandrodevsilva/Gestoque/pkg/types"
)

// Exit codes: user errors (validation, not found) versus system errors.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, types.ErrValidation) || errors.Is(err, types.ErrNotFound) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
