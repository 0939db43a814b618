package utils

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ErrPromptEOF reports that the input stream closed before an answer was
// read. Callers treat it differently from an explicit "no".
var ErrPromptEOF = errors.New("input stream closed")

// Confirm prints message and reads a y/n answer from in. Only "y" (any case)
// counts as yes; anything else is a decline. End-of-input yields ErrPromptEOF.
func Confirm(in io.Reader, message string) (bool, error) {
	fmt.Printf("%s (y/n): ", message)
	reader := bufio.NewReader(in)
	text, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(text) == "" {
			return false, ErrPromptEOF
		}
		if !errors.Is(err, io.EOF) {
			return false, err
		}
	}
	return strings.EqualFold(strings.TrimSpace(text), "y"), nil
}

// ConfirmStdin is Confirm bound to standard input.
func ConfirmStdin(message string) (bool, error) {
	return Confirm(os.Stdin, message)
}
