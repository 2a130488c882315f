package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/akyairhashvil/searchhist/internal/models"
)

// WritePDF renders the history as a one-table PDF report.
func WritePDF(path string, h *models.HistoryMap, generatedAt time.Time) error {
	pdf := buildReport(h, generatedAt)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return pdf.OutputFileAndClose(path)
}

// buildReport lays out the report. Titles go through the cp1252 translator
// exactly once before measuring and writing.
func buildReport(h *models.HistoryMap, generatedAt time.Time) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Search History")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated %s", generatedAt.Format("2006-01-02 15:04")))
	pdf.Ln(12)

	entries := h.Entries()
	if len(entries) == 0 {
		pdf.SetFont("Arial", "I", 12)
		pdf.Cell(0, 8, "No searches recorded.")
	} else {
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(120, 8, "Title", "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, "Time", "B", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		for _, e := range entries {
			pdf.CellFormat(120, 7, fitText(pdf, tr(e.Title), 118), "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 7, tr(e.Time), "", 1, "L", false, 0, "")
		}
		pdf.Ln(6)
		pdf.SetFont("Arial", "B", 11)
		pdf.Cell(0, 8, fmt.Sprintf("Total entries: %d", len(entries)))
	}
	return pdf
}

// fitText shortens s until it fits in width millimetres at the current font.
func fitText(pdf *fpdf.Fpdf, s string, width float64) string {
	if pdf.GetStringWidth(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+"...") > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
