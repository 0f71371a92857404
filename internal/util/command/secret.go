package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

var ErrSecretMismatch = errors.New("secrets do not match")

// SecretReader prompts for secrets. Input is not echoed when in is a terminal,
// otherwise one line is read per secret so secrets can be piped in.
type SecretReader struct {
	in    *os.File
	out   io.Writer
	lines *bufio.Reader
}

func NewSecretReader(in *os.File, out io.Writer) *SecretReader {
	return &SecretReader{
		in:    in,
		out:   out,
		lines: bufio.NewReader(in),
	}
}

func (r *SecretReader) ReadSecret(prompt string) (string, error) {
	return r.read(prompt, false)
}

// ReadOptionalSecret is like ReadSecret but returns "" when piped input has already ended.
func (r *SecretReader) ReadOptionalSecret(prompt string) (string, error) {
	return r.read(prompt, true)
}

func (r *SecretReader) read(prompt string, optional bool) (string, error) {
	fmt.Fprint(r.out, prompt)

	fd := int(r.in.Fd())
	if term.IsTerminal(fd) {
		// Read password from terminal (hides input)
		secret, err := term.ReadPassword(fd)
		if err != nil {
			return "", errors.Wrap(err, "failed to read secret from terminal")
		}

		fmt.Fprintln(r.out) // New line after secret input

		return string(secret), nil
	}

	line, err := r.lines.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && (len(line) > 0 || optional)) {
		return "", errors.Wrap(err, "failed to read secret")
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadConfirmedSecret prompts twice and requires both entries to match and to be at least minLength long.
func (r *SecretReader) ReadConfirmedSecret(prompt string, minLength int) (string, error) {
	secret, err := r.ReadSecret(prompt)
	if err != nil {
		return "", err
	}

	if len(secret) < minLength {
		return "", errors.Errorf("secret must be at least %d characters", minLength)
	}

	confirm, err := r.ReadSecret("Confirm: ")
	if err != nil {
		return "", errors.Wrap(err, "failed to read confirmation")
	}

	if secret != confirm {
		return "", ErrSecretMismatch
	}

	return secret, nil
}
