package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a yes/no prompt on out and reads the answer from in.
// Anything but "y" or "yes" (case-insensitive) declines, as does end of
// input.
func Confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", FormatPrompt(prompt)); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read answer: %w", err)
	}

	response := strings.ToLower(strings.TrimSpace(input))
	return response == "y" || response == "yes", nil
}
