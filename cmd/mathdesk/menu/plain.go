package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mathdesk/internal/arith"
	"mathdesk/internal/logging"
)

// PlainShell is the line-mode menu loop: render the numbered menu,
// read one line per prompt, invoke through the registry, print the
// result verbatim, repeat until the exit choice or EOF.
type PlainShell struct {
	in  *bufio.Reader
	out io.Writer
	ops []arith.Operation
	log *logging.Logger
}

// NewPlainShell builds a shell reading from in and writing to out.
func NewPlainShell(in io.Reader, out io.Writer) *PlainShell {
	return &PlainShell{
		in:  bufio.NewReader(in),
		out: out,
		ops: arith.Catalog(),
		log: logging.Get(logging.CategorySession),
	}
}

// Run executes the loop. It returns nil on the exit choice and on EOF.
func (s *PlainShell) Run() error {
	exit := len(s.ops) + 1

	for {
		s.printMenu()
		fmt.Fprintf(s.out, "Choose an option (1-%d): ", exit)

		choice, err := s.readLine()
		if err != nil {
			fmt.Fprintln(s.out)
			return nil // EOF quits
		}
		if choice == "" {
			continue
		}
		if choice == fmt.Sprint(exit) || strings.EqualFold(choice, "exit") {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}

		op, ok := arith.Lookup(choice)
		if !ok {
			fmt.Fprintf(s.out, "Unknown option %q, try again.\n\n", choice)
			continue
		}

		if err := s.runOperation(op); err != nil {
			fmt.Fprintln(s.out)
			return nil
		}
		fmt.Fprintln(s.out)
	}
}

func (s *PlainShell) printMenu() {
	fmt.Fprintln(s.out, "=== mathdesk ===")
	for i, op := range s.ops {
		fmt.Fprintf(s.out, "%2d. %s\n", i+1, op.Title)
	}
	fmt.Fprintf(s.out, "%2d. Exit\n", len(s.ops)+1)
}

// runOperation prompts for each parameter and prints the outcome. A
// non-nil error means input was exhausted.
func (s *PlainShell) runOperation(op arith.Operation) error {
	raw := make([]string, len(op.Params))
	for i, p := range op.Params {
		fmt.Fprintf(s.out, "Enter %s (%s): ", p.Name, p.Hint)
		line, err := s.readLine()
		if err != nil {
			return err
		}
		raw[i] = line
	}

	r := op.Invoke(raw)
	if r.IsSuccess() {
		fmt.Fprintln(s.out, r.Value())
		s.log.Info("%s %v ok", op.ID, raw)
	} else {
		fmt.Fprintf(s.out, "Error: %s\n", r.Message())
		s.log.Info("%s %v failed: %s", op.ID, raw, r.Message())
	}
	return nil
}

func (s *PlainShell) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
