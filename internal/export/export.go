// Package export writes scraped records as CSV, JSON, or a terminal table.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/matteobe/icd10-scraper/internal/config"
	"github.com/matteobe/icd10-scraper/pkg/icd"
)

// Writer writes result collections per the output configuration.
type Writer struct {
	Config *config.OutputConfig
}

// NewWriter creates a new result writer.
func NewWriter(cfg *config.OutputConfig) *Writer {
	return &Writer{Config: cfg}
}

// Save writes the records in the configured format. The table format
// renders to stdout; csv and json write to the configured file.
func (w *Writer) Save(records []icd.Record) error {
	switch w.Config.Format {
	case "csv":
		file, err := os.Create(w.Config.File)
		if err != nil {
			return err
		}
		defer file.Close()
		return WriteCSV(file, records)

	case "json":
		file, err := os.Create(w.Config.File)
		if err != nil {
			return err
		}
		defer file.Close()
		return WriteJSON(file, records)

	case "table":
		RenderTable(os.Stdout, records)
		return nil

	default:
		return fmt.Errorf("unsupported output format: %s", w.Config.Format)
	}
}

var csvHeader = []string{"level", "parent_code", "code", "description", "status", "reason"}

// WriteCSV writes the records as CSV with a fixed header row. Failed
// records carry their status and reason in the trailing columns.
func WriteCSV(w io.Writer, records []icd.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{string(r.Level), r.ParentCode, r.Code, r.Description, "", ""}
		if r.Failed() {
			row[4] = strconv.Itoa(r.Failure.Status)
			row[5] = r.Failure.Reason
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the records as an indented JSON array.
func WriteJSON(w io.Writer, records []icd.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// RenderTable renders the records as a rounded terminal table.
func RenderTable(out io.Writer, records []icd.Record) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Level", "Parent", "Code", "Description", "Status"})
	for _, r := range records {
		status := ""
		if r.Failed() {
			status = fmt.Sprintf("%d %s", r.Failure.Status, r.Failure.Reason)
		}
		t.AppendRow(table.Row{r.Level, r.ParentCode, r.Code, r.Description, status})
	}
	t.Render()
}
