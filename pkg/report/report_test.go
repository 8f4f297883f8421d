package report

import (
	"bytes"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sw33tLie/epicurve/pkg/cases"
	"github.com/sw33tLie/epicurve/pkg/curve"
	"github.com/sw33tLie/epicurve/pkg/ingest"
)

func exampleRecords() []cases.Record {
	repo := cases.NewRepository()
	repo.AddMany(cases.ExampleInputs())
	return repo.All()
}

func TestWriteJSON(t *testing.T) {
	c := curve.Build(exampleRecords(), curve.ExampleConfig())

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, c))

	var doc struct {
		Config struct {
			BinSize    string `json:"binSize"`
			StratifyBy string `json:"stratifyBy"`
			Exposure   struct {
				Label string `json:"label"`
			} `json:"exposure"`
		} `json:"config"`
		BinSizeName string `json:"binSizeName"`
		Legend      []struct {
			Category string `json:"category"`
			Color    string `json:"color"`
		} `json:"legend"`
		Bins []struct {
			Start  string        `json:"start"`
			Label  string        `json:"label"`
			Total  int           `json:"total"`
			Stacks []curve.Stack `json:"stacks"`
		} `json:"bins"`
		Markers []struct {
			Kind string `json:"kind"`
			At   string `json:"at"`
		} `json:"markers"`
		Incubation *struct {
			Start string `json:"start"`
			End   string `json:"end"`
		} `json:"incubation"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "6hour", doc.Config.BinSize)
	assert.Equal(t, "classification", doc.Config.StratifyBy)
	assert.Equal(t, "Wedding reception dinner", doc.Config.Exposure.Label)
	assert.Equal(t, "6-hour", doc.BinSizeName)
	require.Len(t, doc.Legend, 3)
	assert.Equal(t, "probable", doc.Legend[1].Category)

	require.Len(t, doc.Bins, 16)
	assert.Equal(t, "2024-01-15T06:00:00", doc.Bins[0].Start)
	assert.Equal(t, "Jan 15 06:00", doc.Bins[0].Label)
	assert.NotNil(t, doc.Bins[0].Stacks, "empty bins have an empty stack list")
	assert.Empty(t, doc.Bins[0].Stacks)
	assert.Equal(t, 2, doc.Bins[1].Total)

	require.Len(t, doc.Markers, 1)
	assert.Equal(t, "first-case", doc.Markers[0].Kind)
	assert.Equal(t, "2024-01-15T14:00:00", doc.Markers[0].At)
	require.NotNil(t, doc.Incubation)
	assert.Equal(t, "2024-01-17T19:00:00", doc.Incubation.End)
}

func TestWriteJSONEmptyCurve(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, curve.Build(nil, curve.Config{})))
	assert.Contains(t, buf.String(), `"bins": []`)
	assert.Contains(t, buf.String(), `"markers": []`)
	assert.Contains(t, buf.String(), `"incubation": null`)
}

func TestWriteXLSXRoundTrip(t *testing.T) {
	records := exampleRecords()
	c := curve.Build(records, curve.ExampleConfig())

	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, records, &c))

	table, err := ingest.ParseXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, cases.ExportHeader, table.Headers)

	repo := cases.NewRepository()
	_, err = ingest.New(nil).Import(table, nil, repo)
	require.NoError(t, err)
	got := repo.All()
	require.Len(t, got, len(records))
	for i := range records {
		assert.Equal(t, records[i].Row(), got[i].Row(), "row %d", i)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{CasesSheet, CurveSheet}, f.GetSheetList())

	rows, err := f.GetRows(CurveSheet)
	require.NoError(t, err)
	require.Len(t, rows, 17)
	assert.Equal(t, []string{"start", "end", "label", "total", "confirmed", "probable", "suspected"}, rows[0])
	assert.Equal(t, []string{"2024-01-15T18:00:00", "2024-01-16T00:00:00", "Jan 15 18:00", "5", "4", "1", "0"}, rows[3])
}

func TestWriteXLSXWithoutCurve(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, nil, nil))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{CasesSheet}, f.GetSheetList())
}
