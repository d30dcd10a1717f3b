// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readKeySecure prompts for the secret key on w and reads it from r without
// echo when r is a terminal. Piped input is read as a single line.
func readKeySecure(r io.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)

	f, ok := r.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return readKeyFromReader(r)
	}

	key, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return "", fmt.Errorf("reading secret key: %w", err)
	}
	return string(key), nil
}

// readKeyFromReader reads one line from r. A missing trailing newline is
// accepted.
func readKeyFromReader(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading secret key: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
