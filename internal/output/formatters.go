// Package output renders generated maps in the formats the CLI supports.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/YumizSui/pairmap/internal/config"
	"github.com/YumizSui/pairmap/internal/pairmap"
)

// Formatter handles output formatting for different formats.
type Formatter struct {
	format config.OutputFormat
	writer io.Writer
}

// NewFormatter creates a new formatter for the specified format.
func NewFormatter(format config.OutputFormat, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format writes the map in the configured format.
func (f *Formatter) Format(m *pairmap.Map) error {
	switch f.format {
	case config.OutputJSON:
		return f.formatJSON(m)
	case config.OutputYAML:
		return f.formatYAML(m)
	case config.OutputDOT:
		return f.formatDOT(m)
	case config.OutputTable, config.OutputText, "":
		return f.formatTable(m)
	default:
		return fmt.Errorf("unsupported output format: %s", f.format)
	}
}

func (f *Formatter) formatJSON(m *pairmap.Map) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(m)
}

func (f *Formatter) formatYAML(m *pairmap.Map) error {
	encoder := yaml.NewEncoder(f.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(m)
}

// formatTable prints the node and edge listings as aligned text.
func (f *Formatter) formatTable(m *pairmap.Map) error {
	w := tabwriter.NewWriter(f.writer, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "INDEX\tLABEL")
	for _, n := range m.Nodes {
		fmt.Fprintf(w, "%d\t%s\n", n.Index, n.Label)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "U\tV\tSCORE\tON PATH")
	for _, e := range m.Edges {
		onPath := ""
		if e.FoundPath {
			onPath = "*"
		}
		fmt.Fprintf(w, "%d\t%d\t%.2f\t%s\n", e.U, e.V, e.Score, onPath)
	}
	return nil
}

// formatDOT renders a Graphviz graph. Found-path edges are drawn bold and
// edge labels carry the scores.
func (f *Formatter) formatDOT(m *pairmap.Map) error {
	var b strings.Builder
	b.WriteString("graph pairmap {\n")
	for _, n := range m.Nodes {
		fmt.Fprintf(&b, "  %d [label=%q];\n", n.Index, n.Label)
	}
	for _, e := range m.Edges {
		attrs := fmt.Sprintf("label=\"%.2f\"", e.Score)
		if e.FoundPath {
			attrs += ", style=bold"
		}
		fmt.Fprintf(&b, "  %d -- %d [%s];\n", e.U, e.V, attrs)
	}
	b.WriteString("}\n")
	_, err := io.WriteString(f.writer, b.String())
	return err
}
