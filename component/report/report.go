// Package report encodes the outcome of a scan.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	C "github.com/Cmiroslaf/BEFA-Library/constant"
	"github.com/Cmiroslaf/BEFA-Library/component/stats"

	"github.com/gofrs/uuid/v5"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// Match is one value that made it through the pipeline.
type Match struct {
	// Index is the position of the value in the unfiltered stream.
	Index int    `json:"index" yaml:"index" msgpack:"index"`
	Value string `json:"value" yaml:"value" msgpack:"value"`
}

type Report struct {
	ID      string                `json:"id" yaml:"id" msgpack:"id"`
	Pattern string                `json:"pattern,omitempty" yaml:"pattern,omitempty" msgpack:"pattern,omitempty"`
	Scanned int                   `json:"scanned" yaml:"scanned" msgpack:"scanned"`
	Matches []Match               `json:"matches" yaml:"matches" msgpack:"matches"`
	Counts  []stats.Entry[string] `json:"counts" yaml:"counts" msgpack:"counts"`
}

// New returns an empty report with a fresh id.
func New(pattern string) *Report {
	return &Report{
		ID:      uuid.Must(uuid.NewV4()).String(),
		Pattern: pattern,
		Matches: []Match{},
		Counts:  []stats.Entry[string]{},
	}
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, format C.OutputFormat, r *Report) error {
	switch format {
	case C.TEXT:
		return encodeText(w, r)
	case C.JSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	case C.YAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(r); err != nil {
			return err
		}
		return encoder.Close()
	case C.MSGPACK:
		return msgpack.NewEncoder(w).Encode(r)
	default:
		return fmt.Errorf("%w: %d", C.ErrInvalidFormat, format)
	}
}

// Decode reads a report written by Encode. The text format cannot be
// decoded.
func Decode(rd io.Reader, format C.OutputFormat) (*Report, error) {
	r := &Report{}
	var err error
	switch format {
	case C.JSON:
		err = json.NewDecoder(rd).Decode(r)
	case C.YAML:
		err = yaml.NewDecoder(rd).Decode(r)
	case C.MSGPACK:
		err = msgpack.NewDecoder(rd).Decode(r)
	default:
		return nil, fmt.Errorf("%w: cannot decode %s", C.ErrInvalidFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s report: %w", format, err)
	}
	return r, nil
}

func encodeText(w io.Writer, r *Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "report\t%s\n", r.ID)
	if r.Pattern != "" {
		fmt.Fprintf(tw, "pattern\t%s\n", r.Pattern)
	}
	fmt.Fprintf(tw, "scanned\t%d\n", r.Scanned)
	fmt.Fprintf(tw, "matched\t%d\n", len(r.Matches))

	if len(r.Matches) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "INDEX\tVALUE")
		for _, m := range r.Matches {
			fmt.Fprintf(tw, "%d\t%s\n", m.Index, m.Value)
		}
	}

	if len(r.Counts) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "COUNT\tVALUE")
		for _, e := range r.Counts {
			fmt.Fprintf(tw, "%d\t%s\n", e.Count, strings.TrimSpace(e.Key))
		}
	}
	return tw.Flush()
}
