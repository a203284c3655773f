// Package report renders analysis results as console tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/modoterra/logtally/pkg/analysis"
	"github.com/modoterra/logtally/pkg/core"
)

// Section titles, in display order.
const (
	TitleEndpoints   = "Endpoint Calls"
	TitleMinutes     = "API Calls Per Minute"
	TitleStatusCodes = "API Calls Per Status Code"
)

// NoData is printed instead of a table for an empty aggregate.
const NoData = "No data found."

// Row is one table line: the bucket key and its count.
type Row struct {
	Index string
	Count int
}

// Section is a titled frequency table.
type Section struct {
	Title string
	Rows  []Row
}

// Rows converts a tally into display rows, keeping first-seen order.
func Rows[K comparable](t *core.Tally[K]) []Row {
	buckets := t.Buckets()
	rows := make([]Row, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, Row{Index: fmt.Sprint(b.Key), Count: b.Count})
	}
	return rows
}

// Sections returns the three report sections for res.
func Sections(res analysis.Result) []Section {
	return []Section{
		{Title: TitleEndpoints, Rows: Rows(res.Endpoints)},
		{Title: TitleMinutes, Rows: Rows(res.Minutes)},
		{Title: TitleStatusCodes, Rows: Rows(res.StatusCodes)},
	}
}

// Printer writes styled sections to w.
type Printer struct {
	w      io.Writer
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	count  lipgloss.Style
	border lipgloss.Style
	dim    lipgloss.Style
}

// NewPrinter creates a printer whose color profile follows w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:      w,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
		count:  r.NewStyle().Padding(0, 1).Align(lipgloss.Right),
		border: r.NewStyle().Foreground(lipgloss.Color("241")),
		dim:    r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Section writes the title line followed by a table, or NoData when empty.
func (p *Printer) Section(s Section) error {
	if _, err := fmt.Fprintf(p.w, "\n%s\n", p.title.Render(s.Title)); err != nil {
		return err
	}
	if len(s.Rows) == 0 {
		_, err := fmt.Fprintln(p.w, p.dim.Render(NoData))
		return err
	}
	_, err := fmt.Fprintln(p.w, p.Table(s.Rows))
	return err
}

// Table renders rows with (index), index and count columns.
func (p *Printer) Table(rows []Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(p.border).
		Headers("(index)", "index", "count").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return p.header
			case col == 2:
				return p.count
			default:
				return p.cell
			}
		})

	for i, r := range rows {
		t.Row(strconv.Itoa(i), r.Index, strconv.Itoa(r.Count))
	}
	return t.String()
}

// WriteText prints every section of res.
func WriteText(w io.Writer, res analysis.Result) error {
	p := NewPrinter(w)
	for _, s := range Sections(res) {
		if err := p.Section(s); err != nil {
			return err
		}
	}
	return nil
}

type jsonReport struct {
	Records     int                 `json:"records"`
	Endpoints   *core.Tally[string] `json:"endpoints"`
	Minutes     *core.Tally[string] `json:"minutes"`
	StatusCodes *core.Tally[int]    `json:"status_codes"`
}

// WriteJSON prints res as an indented JSON document with ordered buckets.
func WriteJSON(w io.Writer, res analysis.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Records:     len(res.Records),
		Endpoints:   res.Endpoints,
		Minutes:     res.Minutes,
		StatusCodes: res.StatusCodes,
	})
}

// Write prints res in the given format ("table" or "json").
func Write(w io.Writer, format string, res analysis.Result) error {
	switch format {
	case "", "table":
		return WriteText(w, res)
	case "json":
		return WriteJSON(w, res)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
