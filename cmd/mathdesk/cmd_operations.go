// One-shot operation commands: run, list, describe.
package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mathdesk/internal/arith"
)

// runCmd invokes a single operation and prints the result to stdout.
var runCmd = &cobra.Command{
	Use:   "run [operation] [inputs...]",
	Short: "Invoke one operation and print its result",
	Long: `Invokes an operation by ID, alias, or menu number with the given
inputs, printing the success value to stdout. A failure becomes the
command error and a non-zero exit status, so scripts can branch on it.

Examples:
  mathdesk run gcd 12 18
  mathdesk run fibonacci 5
  mathdesk run calc 10 / 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOperation,
	// Domain failures are results, not usage mistakes.
	SilenceUsage: true,
}

func init() {
	// Inputs may be negative numbers or "-"; stop flag parsing at the
	// first positional argument.
	runCmd.Flags().SetInterspersed(false)
}

func runOperation(cmd *cobra.Command, args []string) error {
	name := args[0]
	op, ok := arith.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown operation %q (see \"mathdesk list\")", name)
	}

	if logger != nil {
		logger.Debug("invoking operation",
			zap.String("operation", op.ID),
			zap.Strings("inputs", args[1:]))
	}

	r := op.Invoke(args[1:])
	if !r.IsSuccess() {
		return errors.New(r.Message())
	}

	fmt.Fprintln(cmd.OutOrStdout(), r.Value())
	return nil
}

// listCmd prints the numbered catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the twenty operations",
	RunE:  listOperations,
}

func listOperations(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, op := range arith.Catalog() {
		fmt.Fprintf(out, "%2d. %-14s %s\n", i+1, op.ID, op.Summary)
		fmt.Fprintf(out, "    inputs: %s\n", describeParams(op))
	}
	return nil
}

func describeParams(op arith.Operation) string {
	parts := make([]string, len(op.Params))
	for i, p := range op.Params {
		parts[i] = fmt.Sprintf("%s (%s)", p.Name, p.Kind)
	}
	return strings.Join(parts, ", ")
}

// describeCmd renders one operation's documentation.
var describeCmd = &cobra.Command{
	Use:   "describe [operation]",
	Short: "Show an operation's documentation",
	Args:  cobra.ExactArgs(1),
	RunE:  describeOperation,
}

func describeOperation(cmd *cobra.Command, args []string) error {
	op, ok := arith.Lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown operation %q (see \"mathdesk list\")", args[0])
	}

	doc := fmt.Sprintf("# %s\n\n%s\n\n**Inputs:** %s\n", op.Title, op.Doc, describeParams(op))
	if len(op.Aliases) > 0 {
		doc += fmt.Sprintf("\n**Aliases:** `%s`\n", strings.Join(op.Aliases, "`, `"))
	}

	fmt.Fprint(cmd.OutOrStdout(), renderMarkdown(doc))
	return nil
}

// renderMarkdown renders for the terminal, falling back to the raw
// markdown when glamour cannot set up a renderer.
func renderMarkdown(doc string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		return doc
	}
	rendered, err := renderer.Render(doc)
	if err != nil {
		return doc
	}
	return rendered
}
