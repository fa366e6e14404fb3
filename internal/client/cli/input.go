package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// GetSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input
// was read, the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetWithDefault behaves like GetSimpleText but shows the current value and
// keeps it when the user just presses Enter. Used to prefill the form from
// a preserved draft after a failed submit.
func GetWithDefault(reader *bufio.Reader, prompt, current string, w io.Writer) (string, error) {
	shown := prompt
	if current != "" {
		shown = fmt.Sprintf("%s [%s]", prompt, current)
	}
	value, err := GetSimpleText(reader, shown, w)
	if err != nil {
		return "", err
	}
	if value == "" {
		return current, nil
	}
	return value, nil
}

// Confirm prints a yes/no prompt and reads the answer. Only "y" or "yes"
// (case-insensitive) count as confirmation; anything else declines.
func Confirm(reader *bufio.Reader, prompt string, w io.Writer) (bool, error) {
	answer, err := GetSimpleText(reader, prompt+" (y/n)", w)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
