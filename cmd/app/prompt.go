package main

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassphrase is swapped out in tests; stdin is not a terminal there.
var readPassphrase = promptForKey

func promptForKey(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	return strings.TrimSpace(string(pass)), err
}
