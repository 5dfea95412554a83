package desktop

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptConfirmer asks on a terminal and accepts only "y" or "Y".
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer reads answers from in and writes prompts to out
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm blocks until a line is read. EOF or a read error counts as "no".
func (p *PromptConfirmer) Confirm(prompt string) bool {
	fmt.Fprint(p.out, prompt)
	answer, err := p.in.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}
