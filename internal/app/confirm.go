package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// stdinConfirmer запрашивает подтверждение действия в терминале.
type stdinConfirmer struct {
	in  io.Reader
	out io.Writer
}

func newStdinConfirmer() *stdinConfirmer {
	return &stdinConfirmer{in: os.Stdin, out: os.Stderr}
}

// Confirm печатает вопрос и читает ответ. Любой ответ, кроме явного
// согласия, считается отказом.
func (c *stdinConfirmer) Confirm(prompt string) bool {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)

	scanner := bufio.NewScanner(c.in)
	if !scanner.Scan() {
		return false
	}

	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}
