package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mbrevik/go-yamlite"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "yamlite: Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yamlite",
		Short:         "Inspect and validate YAML-subset documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newEventsCmd(), newCheckCmd())
	return root
}

type eventsOptions struct {
	maxDepth int
}

func newEventsCmd() *cobra.Command {
	o := &eventsOptions{}
	cmd := &cobra.Command{
		Use:   "events <file>",
		Short: "Print the parse event stream of a document",
		Args:  cobra.ExactArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.run(args[0]) },
	}
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 32, "Maximum nesting depth")
	return cmd
}

func (o *eventsOptions) run(path string) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}
	p := &eventPrinter{out: os.Stdout}
	return yamlite.Parse(data, p, yamlite.MaxDepth(o.maxDepth))
}

type checkOptions struct {
	maxDepth int
}

func newCheckCmd() *cobra.Command {
	o := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate documents, reporting the first error with its position",
		Args:  cobra.MinimumNArgs(1),
		RunE:  func(_ *cobra.Command, args []string) error { return o.run(args) },
	}
	cmd.Flags().IntVar(&o.maxDepth, "max-depth", 32, "Maximum nesting depth")
	return cmd
}

func (o *checkOptions) run(paths []string) error {
	for _, path := range paths {
		data, err := readInput(path)
		if err != nil {
			return err
		}
		if err := yamlite.Parse(data, yamlite.NopHandler{}, yamlite.MaxDepth(o.maxDepth)); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		fmt.Printf("%s: ok\n", path)
	}
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// eventPrinter writes one line per parse event, indented by nesting
// depth.
type eventPrinter struct {
	out   io.Writer
	depth int
}

func (p *eventPrinter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, strings.Repeat("  ", p.depth)+format+"\n", args...)
}

func (p *eventPrinter) StartDocument() { p.printf("start document") }

func (p *eventPrinter) EndDocument() { p.printf("end document") }

func (p *eventPrinter) StartSequence() {
	p.printf("start sequence")
	p.depth++
}

func (p *eventPrinter) EndSequence() {
	p.depth--
	p.printf("end sequence")
}

func (p *eventPrinter) StartMapping() {
	p.printf("start mapping")
	p.depth++
}

func (p *eventPrinter) EndMapping() {
	p.depth--
	p.printf("end mapping")
}

func (p *eventPrinter) Key(text string) bool {
	p.printf("key %q", text)
	return true
}

func (p *eventPrinter) Scalar(text string) bool {
	p.printf("scalar %q", text)
	return true
}

func (p *eventPrinter) Error(string, int, int) {}
