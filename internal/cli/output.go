package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

// Print writes v as JSON, or lines one per row in text mode.
func (p *Printer) Print(v interface{}, lines ...string) error {
	if p.format == OutputFormatJSON {
		return p.printJSON(v)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(p.writer, l); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printJSON(v interface{}) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
