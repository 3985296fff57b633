package report

import (
	"fmt"
	"io"

	"github.com/akyairhashvil/sitediary/internal/config"
	"github.com/akyairhashvil/sitediary/internal/models"
	"github.com/go-pdf/fpdf"
)

const (
	fontFamily  = "Helvetica"
	cellPadding = 1.0
)

// RowBox is the placement of one table row, or of one page's share of a row
// too tall for a page. Page counts from the page the table starts on; Entry
// is the row index, -1 for a header.
type RowBox struct {
	Page   int
	Y      float64
	Height float64
	Header bool
	Entry  int
	Cells  [][]string
}

// Bottom is where the next row on the same page starts.
func (b RowBox) Bottom() float64 { return b.Y + b.Height }

func newDocument() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(config.PDFMargin, config.PDFMargin, config.PDFMargin)
	pdf.SetAutoPageBreak(true, config.PDFMargin)
	pdf.SetTitle(config.ReportTitle, false)
	pdf.SetCreator(config.AppName, false)
	pdf.AddPage()
	return pdf
}

// WritePDF renders doc as an A4 portrait report.
func WritePDF(w io.Writer, doc models.Report) error {
	pdf := newDocument()
	writeHeading(pdf, doc)

	if doc.Layout == models.LayoutDaily {
		writeSection(pdf, "Daily Entry")
		writeDaily(pdf, doc.Daily)
	} else {
		writeSection(pdf, "Verification Entries")
		drawTable(pdf, planTable(pdf, doc.Rows(), pdf.GetY()))
	}

	pdf.Ln(10)
	writeSection(pdf, "Verification Checklist")
	pdf.SetFont(fontFamily, "", config.PDFBodyFontSize)
	for _, item := range doc.Checklist {
		pdf.MultiCell(0, 8, cp1252(ChecklistLine(item)), "", "L", false)
	}

	pdf.Ln(5)
	writeSection(pdf, "Overall Verification Notes")
	pdf.SetFont(fontFamily, "", config.PDFBodyFontSize)
	pdf.MultiCell(0, 5, cp1252(doc.Notes), "", "L", false)

	pdf.Ln(10)
	writeSection(pdf, "Verification Sign-off")
	pdf.SetFont(fontFamily, "", config.PDFBodyFontSize)
	for _, sig := range doc.SignOff {
		pdf.MultiCell(0, 8, cp1252(SignOffLine(sig)), "", "L", false)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// TableLayout returns the row placement WritePDF uses for the entries table.
// The daily layout has no table and yields nil.
func TableLayout(doc models.Report) []RowBox {
	if doc.Layout == models.LayoutDaily {
		return nil
	}
	pdf := newDocument()
	writeHeading(pdf, doc)
	writeSection(pdf, "Verification Entries")
	return planTable(pdf, doc.Rows(), pdf.GetY())
}

func writeHeading(pdf *fpdf.Fpdf, doc models.Report) {
	pdf.SetFont(fontFamily, "B", 16)
	pdf.SetFillColor(44, 62, 80)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(0, 15, config.ReportTitle, "1", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	if doc.Project.Scheme != "" {
		pdf.SetFont(fontFamily, "B", 12)
		pdf.CellFormat(0, 8, cp1252(doc.Project.Scheme), "", 1, "C", false, 0, "")
	}

	pdf.Ln(6)
	writeSection(pdf, "Project Information")
	writeFields(pdf, doc.Project.Fields())
	pdf.Ln(6)
}

func writeSection(pdf *fpdf.Fpdf, name string) {
	pdf.SetFont(fontFamily, "B", config.PDFSectionFontSize)
	pdf.CellFormat(0, 10, name, "", 1, "L", false, 0, "")
}

func writeFields(pdf *fpdf.Fpdf, fields [][2]string) {
	for _, f := range fields {
		pdf.SetFont(fontFamily, "B", config.PDFBodyFontSize)
		pdf.CellFormat(45, 8, cp1252(f[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont(fontFamily, "", config.PDFBodyFontSize)
		pdf.MultiCell(0, 8, cp1252(f[1]), "", "L", false)
	}
}

func writeDaily(pdf *fpdf.Fpdf, d *models.DailyEntry) {
	if d == nil {
		return
	}
	var fields [][2]string
	for i, v := range d.Values() {
		fields = append(fields, [2]string{models.EntryColumns[i], v})
	}
	fields = append(fields,
		[2]string{"Weather", d.Weather},
		[2]string{"Plant/Equipment", d.Equipment},
		[2]string{"Personnel", d.Personnel},
		[2]string{"Working Hours", d.Hours},
	)
	writeFields(pdf, fields)
}

// measureRow wraps each value to its column width using the current font.
func measureRow(pdf *fpdf.Fpdf, values []string) ([][]string, float64) {
	cells := make([][]string, len(config.PDFColumnWidths))
	lines := 1
	for i, w := range config.PDFColumnWidths {
		var text string
		if i < len(values) {
			text = cp1252(values[i])
		}
		for _, l := range pdf.SplitLines([]byte(text), w) {
			cells[i] = append(cells[i], string(l))
		}
		if len(cells[i]) == 0 {
			cells[i] = []string{""}
		}
		if len(cells[i]) > lines {
			lines = len(cells[i])
		}
	}
	return cells, float64(lines)*config.PDFLineHeight + 2*cellPadding
}

func boxHeight(lines int) float64 {
	return float64(lines)*config.PDFLineHeight + 2*cellPadding
}

// splitCells cuts every column after n lines.
func splitCells(cells [][]string, n int) (head, rest [][]string) {
	head = make([][]string, len(cells))
	rest = make([][]string, len(cells))
	for i, lines := range cells {
		if len(lines) > n {
			head[i], rest[i] = lines[:n], lines[n:]
		} else {
			head[i], rest[i] = lines, []string{""}
		}
	}
	return head, rest
}

func lineCount(cells [][]string) int {
	n := 1
	for _, lines := range cells {
		if len(lines) > n {
			n = len(lines)
		}
	}
	return n
}

// planTable places the header and every row starting at startY. A row that
// would cross the bottom margin moves to a new page below a repeated header;
// a row taller than a whole page continues on the following pages.
func planTable(pdf *fpdf.Fpdf, entries []models.DiaryEntry, startY float64) []RowBox {
	_, pageH := pdf.GetPageSize()
	_, top, _, bottom := pdf.GetMargins()
	limit := pageH - bottom

	pdf.SetFont(fontFamily, "B", config.PDFHeaderFontSize)
	headerCells, headerH := measureRow(pdf, models.EntryColumns)

	pdf.SetFont(fontFamily, "", config.PDFTableFontSize)
	rows := make([][][]string, len(entries))
	for i, e := range entries {
		rows[i], _ = measureRow(pdf, e.Values())
	}

	page, y := 0, startY
	need := headerH
	if len(rows) > 0 {
		need += boxHeight(1)
	}
	if y+need > limit {
		page, y = 1, top
	}

	boxes := make([]RowBox, 0, len(entries)+1)
	header := func() {
		boxes = append(boxes, RowBox{Page: page, Y: y, Height: headerH, Header: true, Entry: -1, Cells: headerCells})
		y += headerH
	}
	newPage := func() {
		page, y = page+1, top
		header()
	}
	header()
	for i, cells := range rows {
		h := boxHeight(lineCount(cells))
		if y+h > limit && !boxes[len(boxes)-1].Header {
			newPage()
		}
		for y+h > limit {
			fit := int((limit - y - 2*cellPadding) / config.PDFLineHeight)
			if fit < 1 {
				newPage()
				continue
			}
			var head [][]string
			head, cells = splitCells(cells, fit)
			boxes = append(boxes, RowBox{Page: page, Y: y, Height: boxHeight(fit), Entry: i, Cells: head})
			newPage()
			h = boxHeight(lineCount(cells))
		}
		boxes = append(boxes, RowBox{Page: page, Y: y, Height: h, Entry: i, Cells: cells})
		y += h
	}
	return boxes
}

func drawTable(pdf *fpdf.Fpdf, boxes []RowBox) {
	if len(boxes) == 0 {
		return
	}
	left, _, _, bottom := pdf.GetMargins()
	pdf.SetAutoPageBreak(false, bottom)
	defer pdf.SetAutoPageBreak(true, bottom)

	first := pdf.PageNo()
	pdf.SetFillColor(220, 220, 220)
	for _, b := range boxes {
		for pdf.PageNo() < first+b.Page {
			pdf.AddPage()
		}
		style, align := "D", "L"
		if b.Header {
			pdf.SetFont(fontFamily, "B", config.PDFHeaderFontSize)
			style, align = "FD", "C"
		} else {
			pdf.SetFont(fontFamily, "", config.PDFTableFontSize)
		}
		x := left
		for i, lines := range b.Cells {
			w := config.PDFColumnWidths[i]
			pdf.Rect(x, b.Y, w, b.Height, style)
			for j, line := range lines {
				pdf.SetXY(x, b.Y+cellPadding+float64(j)*config.PDFLineHeight)
				pdf.CellFormat(w, config.PDFLineHeight, line, "", 0, align, false, 0, "")
			}
			x += w
		}
	}
	last := boxes[len(boxes)-1]
	pdf.SetXY(left, last.Bottom())
}
