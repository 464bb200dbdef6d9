package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/calebmoore/sb/internal/ui"
)

// Prompter abstracts interactive input so command logic can be tested
// without a terminal.
type Prompter interface {
	// Confirm asks a yes/no question. Without a terminal it returns def.
	Confirm(message string, def bool) bool

	// Input asks for a line of free text.
	Input(message string) (string, error)
}

// prompter is swapped for a scripted implementation in tests.
var prompter Prompter = terminalPrompter{}

type terminalPrompter struct{}

func (terminalPrompter) Confirm(message string, def bool) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) || !isatty.IsTerminal(os.Stdout.Fd()) {
		return def
	}

	hint := "[Y/n]"
	if !def {
		hint = "[y/N]"
	}
	fmt.Printf("%s %s ", message, ui.Hint(hint))

	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response == "" {
		return def
	}
	return response == "y" || response == "yes"
}

func (terminalPrompter) Input(message string) (string, error) {
	fmt.Printf("%s: ", message)

	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(response), nil
}
