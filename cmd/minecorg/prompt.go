package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/minecorg/internal/output"
)

// errNotInteractive is returned by ask when prompting is not allowed.
var errNotInteractive = errors.New("prompting disabled")

// prompter asks for missing values on stdin.
type prompter struct {
	enabled bool
	in      *bufio.Reader
	out     io.Writer
}

// newPrompter enables prompts only when stdin and stdout are terminals,
// output is not JSON, and --yes was not given.
func newPrompter(cmd *cobra.Command, yes bool) *prompter {
	enabled := !yes && !isJSONMode(cmd) && output.IsTTY(cmd.InOrStdin()) && output.IsTTY(cmd.OutOrStdout())
	return &prompter{
		enabled: enabled,
		in:      bufio.NewReader(cmd.InOrStdin()),
		out:     cmd.ErrOrStderr(),
	}
}

// ask prompts for label, offering def. An empty answer returns def.
func (p *prompter) ask(label, def string) (string, error) {
	if !p.enabled {
		return "", errNotInteractive
	}
	if def != "" {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", label)
	}
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("reading %s: %w", strings.ToLower(label), err)
	}
	if answer := strings.TrimSpace(line); answer != "" {
		return answer, nil
	}
	return def, nil
}

// confirm asks a yes/no question; anything but y or yes is no.
func (p *prompter) confirm(question string) bool {
	answer, err := p.ask(question+" (y/N)", "")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// field is a value that may come from a flag, a default or a prompt.
type field struct {
	flag   string
	label  string
	value  *string
	def    string
	needed bool
}

// fill completes fields: flag values stand, then prompts (interactive) or
// defaults. It returns the flags of required fields still empty.
func (p *prompter) fill(fields []field) ([]string, error) {
	var missing []string
	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		answer, err := p.ask(f.label, f.def)
		switch {
		case errors.Is(err, errNotInteractive):
			*f.value = f.def
		case err != nil:
			return nil, err
		default:
			*f.value = answer
		}
		if *f.value == "" && f.needed {
			missing = append(missing, "--"+f.flag)
		}
	}
	return missing, nil
}
