package decor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a yes/no prompt and blocks for one line of input. The
// default answer is indicated by the capitalized bracket letter and
// taken when input is empty or the stream ends. Yes-variants match
// case-insensitively; everything else declines.
func (r *Renderer) Confirm(in io.Reader, prompt string, defaultYes bool) (bool, error) {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(r.out, "%s %s ", prompt, hint)

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, err
		}
		return defaultYes, nil
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
