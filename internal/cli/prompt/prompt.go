package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Reader reads prompted input from a stream.
type Reader struct {
	in  io.Reader
	out io.Writer
	buf *bufio.Reader
}

// New creates a Reader over the given streams.
func New(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: in, out: out, buf: bufio.NewReader(in)}
}

// Stdio returns a Reader over the process's stdin, prompting on stderr so
// stdout stays reserved for command results.
func Stdio() *Reader {
	return New(os.Stdin, os.Stderr)
}

// Line prints the label and reads one line, trimmed of surrounding
// whitespace. io.EOF is returned once the stream is exhausted.
func (r *Reader) Line(label string) (string, error) {
	fmt.Fprint(r.out, label)

	line, err := r.buf.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// RequiredLine reads a line, re-prompting until the input is non-empty.
func (r *Reader) RequiredLine(label string) (string, error) {
	for {
		line, err := r.Line(label)
		if err != nil {
			return "", err
		}
		if line != "" {
			return line, nil
		}
	}
}

// Password reads a password without echoing when the input is a terminal.
// Non-terminal input (pipes, test readers) degrades to a plain required
// line read. Empty input re-prompts either way.
func (r *Reader) Password(label string) (string, error) {
	f, ok := r.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return r.RequiredLine(label)
	}

	for {
		fmt.Fprint(r.out, label)
		raw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(r.out)
		if err != nil {
			return "", fmt.Errorf("prompt: read password: %w", err)
		}
		if pw := strings.TrimSpace(string(raw)); pw != "" {
			return pw, nil
		}
	}
}
