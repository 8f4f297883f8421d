package ingest

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/tidwall/gjson"
	"github.com/xuri/excelize/v2"
)

// ParseXLSX reads the first worksheet of an Excel workbook. Cell values are
// taken as displayed, so dates arrive in the sheet's number format.
func ParseXLSX(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return &Table{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return &Table{}, fmt.Errorf("workbook has no sheets: %w", ErrNoHeader)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return &Table{}, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	return newTable(rows)
}

// ParseJSON reads an array of flat objects, or an object whose "cases",
// "data" or "rows" member is such an array. Headers are the object keys in
// first-seen order; nested values are kept as raw JSON text.
func ParseJSON(data []byte) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return &Table{}, fmt.Errorf("invalid JSON: %w", ErrUnsupportedFormat)
	}
	root := gjson.ParseBytes(data)
	if root.IsObject() {
		for _, key := range []string{"cases", "data", "rows"} {
			if v := root.Get(key); v.IsArray() {
				root = v
				break
			}
		}
	}
	if !root.IsArray() {
		return &Table{}, fmt.Errorf("expected an array of objects: %w", ErrUnsupportedFormat)
	}

	var (
		headers []string
		index   = make(map[string]int)
		objects []map[string]string
	)
	root.ForEach(func(_, item gjson.Result) bool {
		if !item.IsObject() {
			return true
		}
		obj := make(map[string]string)
		item.ForEach(func(k, v gjson.Result) bool {
			key := k.String()
			if _, seen := index[key]; !seen {
				index[key] = len(headers)
				headers = append(headers, key)
			}
			if v.Type != gjson.Null {
				obj[key] = v.String()
			}
			return true
		})
		objects = append(objects, obj)
		return true
	})

	if len(headers) == 0 {
		return &Table{}, ErrNoHeader
	}
	records := make([][]string, 0, len(objects)+1)
	records = append(records, headers)
	for _, obj := range objects {
		rec := make([]string, len(headers))
		for k, v := range obj {
			rec[index[k]] = v
		}
		records = append(records, rec)
	}
	return newTable(records)
}

// ParseHTML reads the first <table> of an HTML document. Each <tr> is a
// record and its <th>/<td> cells are the fields; the first non-empty record
// is the header row.
func ParseHTML(r io.Reader) (*Table, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return &Table{}, fmt.Errorf("failed to parse HTML: %w", err)
	}
	table := doc.Find("table").First()
	if table.Length() == 0 {
		return &Table{}, ErrNoTable
	}

	var records [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		var rec []string
		tr.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			rec = append(rec, strings.Join(strings.Fields(cell.Text()), " "))
		})
		records = append(records, rec)
	})
	return newTable(records)
}

// ParseFile picks a reader from the file extension: .xlsx/.xlsm workbooks,
// .json arrays, .html/.htm tables, and delimited text for anything else.
func ParseFile(name string, data []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx", ".xlsm":
		return ParseXLSX(bytes.NewReader(data))
	case ".json":
		return ParseJSON(data)
	case ".html", ".htm":
		return ParseHTML(bytes.NewReader(data))
	case ".xls", ".ods":
		return &Table{}, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}
	return Parse(string(data))
}
