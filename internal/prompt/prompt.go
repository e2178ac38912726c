// Package prompt implements the line-based questions used by the init
// wizards.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	// fd is the terminal used for hidden input, or -1.
	fd int
}

// New creates a Prompter. Secrets are read without echo when in is a
// terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}
	return &Prompter{reader: bufio.NewReader(in), out: out, fd: fd}
}

// Stdio is New(os.Stdin, os.Stdout).
func Stdio() *Prompter {
	return New(os.Stdin, os.Stdout)
}

// Section prints a heading.
func (p *Prompter) Section(title string) {
	fmt.Fprintln(p.out, title)
	fmt.Fprintln(p.out, strings.Repeat("-", len(title)))
}

// String asks for a value. An empty answer keeps current, or defaultVal
// when current is empty.
func (p *Prompter) String(label, current, defaultVal string) string {
	displayDefault := current
	if displayDefault == "" {
		displayDefault = defaultVal
	}

	if displayDefault != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, displayDefault)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	input := p.readLine()
	if input == "" {
		return displayDefault
	}
	return input
}

// Int is String for integers. Unparseable answers keep current.
func (p *Prompter) Int(label string, current int) int {
	answer := p.String(label, strconv.Itoa(current), "")
	n, err := strconv.Atoi(answer)
	if err != nil {
		fmt.Fprintf(p.out, "Not a number, keeping %d\n", current)
		return current
	}
	return n
}

// Secret asks for a value without echoing it on a terminal. An empty
// answer keeps current.
func (p *Prompter) Secret(label, current string) string {
	if current != "" {
		fmt.Fprintf(p.out, "%s [****hidden****]: ", label)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	var input string
	if p.fd >= 0 {
		b, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err == nil {
			input = strings.TrimSpace(string(b))
		}
	} else {
		input = p.readLine()
	}

	if input == "" {
		return current
	}
	return input
}

// YesNo asks a yes/no question.
func (p *Prompter) YesNo(label string, defaultVal bool) bool {
	defaultStr := "y/N"
	if defaultVal {
		defaultStr = "Y/n"
	}

	fmt.Fprintf(p.out, "%s [%s]: ", label, defaultStr)

	input := strings.ToLower(p.readLine())
	if input == "" {
		return defaultVal
	}
	return input == "y" || input == "yes"
}

func (p *Prompter) readLine() string {
	input, _ := p.reader.ReadString('\n')
	return strings.TrimSpace(input)
}
