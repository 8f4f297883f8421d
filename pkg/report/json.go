// Package report encodes curves and line lists for consumers outside the
// process: a JSON document for chart renderers and an Excel workbook for
// people.
package report

import (
	"io"
	"time"

	json "github.com/goccy/go-json"

	"github.com/sw33tLie/epicurve/pkg/curve"
)

// WallClock is the instant layout used in reports. Onsets carry no zone, so
// none is written.
const WallClock = "2006-01-02T15:04:05"

type document struct {
	Config      curve.Config        `json:"config"`
	BinSizeName string              `json:"binSizeName"`
	Legend      []curve.LegendEntry `json:"legend"`
	MaxTotal    int                 `json:"maxTotal"`
	Bins        []bin               `json:"bins"`
	Markers     []marker            `json:"markers"`
	Incubation  *window             `json:"incubation"`
}

type bin struct {
	Start  string        `json:"start"`
	End    string        `json:"end"`
	Label  string        `json:"label"`
	Total  int           `json:"total"`
	Stacks []curve.Stack `json:"stacks"`
}

type marker struct {
	Kind  curve.MarkerKind `json:"kind"`
	Label string           `json:"label"`
	At    string           `json:"at"`
}

type window struct {
	Label string `json:"label"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func wall(t time.Time) string {
	return t.Format(WallClock)
}

func newDocument(c curve.Curve) document {
	doc := document{
		Config:      c.Config,
		BinSizeName: c.Config.BinSize.Name(),
		Legend:      c.Legend,
		MaxTotal:    c.MaxTotal,
		Bins:        make([]bin, len(c.Bins)),
		Markers:     make([]marker, len(c.Markers)),
	}
	if doc.Legend == nil {
		doc.Legend = []curve.LegendEntry{}
	}
	for i, b := range c.Bins {
		stacks := b.Stacks
		if stacks == nil {
			stacks = []curve.Stack{}
		}
		doc.Bins[i] = bin{Start: wall(b.Start), End: wall(b.End), Label: c.Labels[i], Total: b.Total, Stacks: stacks}
	}
	for i, m := range c.Markers {
		doc.Markers[i] = marker{Kind: m.Kind, Label: m.Label, At: wall(m.At)}
	}
	if w := c.Incubation; w != nil {
		doc.Incubation = &window{Label: w.Label, Start: wall(w.Start), End: wall(w.End)}
	}
	return doc
}

// WriteJSON writes c as an indented JSON document. Empty collections are
// written as [] so renderers never see null where they expect a list.
func WriteJSON(w io.Writer, c curve.Curve) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newDocument(c))
}
