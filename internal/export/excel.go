// Package export writes extraction records to a styled xlsx workbook
// and generates the suggested output filenames.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/cachar666/PluginRevit-V1/internal/model"
	"github.com/xuri/excelize/v2"
)

const (
	headerRow    = 5 // title, project and date rows sit above, row 4 left blank
	firstDataRow = headerRow + 1

	headerFill = "4472C4" // corporate blue
	shadedFill = "F2F2F2"

	minColWidth = 10
	maxColWidth = 50
)

// Exporter writes record lists to xlsx files.
type Exporter struct {
	sheetName string
	title     string
	now       func() time.Time
}

// NewExporter creates an exporter with the given sheet name and title
// row text. Empty values fall back to the defaults.
func NewExporter(sheetName, title string) *Exporter {
	cfg := model.DefaultConfig()
	if sheetName == "" {
		sheetName = cfg.Export.SheetName
	}
	if title == "" {
		title = cfg.Export.Title
	}
	return &Exporter{sheetName: sheetName, title: title, now: time.Now}
}

// Export writes one workbook: a merged title row, project and
// extraction-date rows, a styled header row, one data row per record
// with alternating shading, clamped column widths, frozen header rows
// and an auto-filter over header plus data.
func (e *Exporter) Export(records []model.Record, columns []string, path, projectName string) error {
	if len(columns) == 0 {
		return fmt.Errorf("export: no columns selected")
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := e.sheetName
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(len(columns))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if err := e.writeBanner(f, sheet, lastCol, projectName); err != nil {
		return err
	}
	if err := e.writeHeader(f, sheet, lastCol, columns); err != nil {
		return err
	}
	lastRow, err := e.writeRows(f, sheet, columns, records)
	if err != nil {
		return err
	}

	e.fitColumns(f, sheet, columns, records)

	if err := f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      headerRow,
		TopLeftCell: fmt.Sprintf("A%d", firstDataRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("export: freeze panes: %w", err)
	}

	filterRange := fmt.Sprintf("A%d:%s%d", headerRow, lastCol, lastRow)
	if err := f.AutoFilter(sheet, filterRange, nil); err != nil {
		return fmt.Errorf("export: auto filter: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("export: save workbook: %w", err)
	}
	return nil
}

// writeBanner writes the merged title, project and date rows.
func (e *Exporter) writeBanner(f *excelize.File, sheet, lastCol, projectName string) error {
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 16},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	boldStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	italicStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Italic: true}})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	rows := []struct {
		row   int
		value string
		style int
	}{
		{1, e.title, titleStyle},
		{2, "Proyecto: " + projectName, boldStyle},
		{3, "Fecha de extracción: " + e.now().Format("02/01/2006 15:04:05"), italicStyle},
	}
	for _, r := range rows {
		start := fmt.Sprintf("A%d", r.row)
		end := fmt.Sprintf("%s%d", lastCol, r.row)
		if err := f.SetCellValue(sheet, start, r.value); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := f.MergeCell(sheet, start, end); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := f.SetCellStyle(sheet, start, end, r.style); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	return nil
}

func (e *Exporter) writeHeader(f *excelize.File, sheet, lastCol string, columns []string) error {
	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Border:    thinBorder(),
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, headerRow)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, col); err != nil {
			return fmt.Errorf("export: %w", err)
		}
	}
	start := fmt.Sprintf("A%d", headerRow)
	end := fmt.Sprintf("%s%d", lastCol, headerRow)
	if err := f.SetCellStyle(sheet, start, end, style); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

// writeRows writes the data rows and returns the last written row
// (the header row when there are no records).
func (e *Exporter) writeRows(f *excelize.File, sheet string, columns []string, records []model.Record) (int, error) {
	styles, err := newDataStyles(f)
	if err != nil {
		return 0, fmt.Errorf("export: %w", err)
	}

	row := firstDataRow
	for _, rec := range records {
		shaded := row%2 == 0
		for i, col := range columns {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return 0, fmt.Errorf("export: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, rec[col]); err != nil {
				return 0, fmt.Errorf("export: %w", err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, styles.pick(IsNumericColumn(col), shaded)); err != nil {
				return 0, fmt.Errorf("export: %w", err)
			}
		}
		row++
	}
	return row - 1, nil
}

// dataStyles holds the four data-cell styles: left/right alignment,
// plain or shaded.
type dataStyles struct {
	left, right, leftShaded, rightShaded int
}

func newDataStyles(f *excelize.File) (*dataStyles, error) {
	build := func(horizontal string, shaded bool) (int, error) {
		style := &excelize.Style{
			Border:    thinBorder(),
			Alignment: &excelize.Alignment{Horizontal: horizontal},
		}
		if shaded {
			style.Fill = excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{shadedFill}}
		}
		return f.NewStyle(style)
	}

	var s dataStyles
	var err error
	if s.left, err = build("left", false); err != nil {
		return nil, err
	}
	if s.right, err = build("right", false); err != nil {
		return nil, err
	}
	if s.leftShaded, err = build("left", true); err != nil {
		return nil, err
	}
	if s.rightShaded, err = build("right", true); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *dataStyles) pick(numeric, shaded bool) int {
	switch {
	case numeric && shaded:
		return s.rightShaded
	case numeric:
		return s.right
	case shaded:
		return s.leftShaded
	default:
		return s.left
	}
}

// fitColumns sets each column's width from its longest content,
// clamped to [minColWidth, maxColWidth].
func (e *Exporter) fitColumns(f *excelize.File, sheet string, columns []string, records []model.Record) {
	for i, col := range columns {
		longest := len([]rune(col))
		for _, rec := range records {
			if n := len([]rune(rec[col])); n > longest {
				longest = n
			}
		}
		width := float64(longest) + 2
		if width < minColWidth {
			width = minColWidth
		}
		if width > maxColWidth {
			width = maxColWidth
		}
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			continue
		}
		_ = f.SetColWidth(sheet, name, name, width)
	}
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Style: 1, Color: "000000"})
	}
	return borders
}

// numericColumns are the name fragments marking right-aligned columns.
var numericColumns = []string{
	model.PropArea,
	model.PropHeight,
	model.PropLength,
	model.PropVolume,
	model.PropDensity,
	model.PropElementID,
}

// IsNumericColumn reports whether a column holds numeric data and
// should right-align, by case-insensitive name fragment match.
func IsNumericColumn(name string) bool {
	lower := strings.ToLower(name)
	for _, fragment := range numericColumns {
		if strings.Contains(lower, strings.ToLower(fragment)) {
			return true
		}
	}
	return false
}
