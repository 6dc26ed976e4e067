// Package prompt provides interactive terminal prompts for pwactl commands.
package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"golang.org/x/term"
)

var (
	// ErrAborted indicates the user interrupted the prompt.
	ErrAborted = errors.New("aborted")
	// ErrPasswordMismatch indicates the confirmation did not match.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrNotTerminal indicates stdin cannot be used for a hidden prompt.
	ErrNotTerminal = errors.New("stdin is not a terminal")
)

// Password reads a password from the terminal without echoing it.
func Password(label string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNotTerminal
	}

	fmt.Fprint(os.Stderr, label)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, err
	}
	return password, nil
}

// NewPassword reads a password twice and fails unless both entries match.
func NewPassword() ([]byte, error) {
	password, err := Password("Enter backup password: ")
	if err != nil {
		return nil, err
	}

	confirm, err := Password("Confirm backup password: ")
	if err != nil {
		return nil, err
	}
	defer clear(confirm)

	if string(password) != string(confirm) {
		clear(password)
		return nil, ErrPasswordMismatch
	}
	return password, nil
}

// Confirm prompts the user for yes/no confirmation, defaulting to no.
func Confirm(label string) (bool, error) {
	p := promptui.Prompt{
		Label:     label,
		IsConfirm: true,
	}

	result, err := p.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) {
			return false, ErrAborted
		}
		if errors.Is(err, promptui.ErrAbort) {
			return false, nil
		}
		return false, err
	}

	answer := strings.ToLower(result)
	return answer == "y" || answer == "yes", nil
}

// ConfirmWithForce returns true immediately if force is set.
func ConfirmWithForce(label string, force bool) (bool, error) {
	if force {
		return true, nil
	}
	return Confirm(label)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
