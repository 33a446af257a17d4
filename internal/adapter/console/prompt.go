package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/niksmo/shopcart/internal/core/port"
)

var _ port.Prompter = (*LinePrompter)(nil)

// A LinePrompter writes the label to w and reads one line from r as the
// answer.
type LinePrompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{bufio.NewScanner(r), w}
}

func (p *LinePrompter) Prompt(label string) (string, bool) {
	fmt.Fprint(p.w, label+" ")
	if !p.scanner.Scan() {
		return "", false
	}
	return strings.TrimRight(p.scanner.Text(), "\r"), true
}
