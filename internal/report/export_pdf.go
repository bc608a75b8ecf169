package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"visionguard-service/internal/model"
)

// RenderPDF renders the filtered rows into a paginated A4 document: a
// title carrying the requested period, a five-column table with a header
// band repeated only on the first page, and a page-number footer. Rows
// flow across pages as needed.
func RenderPDF(period Period, violations []model.Violation) (Export, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 18, 18)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(33, 94, 189)
	pdf.CellFormat(0, 10, fmt.Sprintf("VisionGuard Violation Report - %s", period.Label()), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Date, Worker, Type, Zone, Score
	colWidths := []float64{28, 52, 28, 52, 14}
	headers := []string{"Date", "Worker", "Type", "Zone", "Score"}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetDrawColor(200, 200, 200)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 8, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetDrawColor(230, 230, 230)
	for _, v := range violations {
		cells := []string{
			v.DetectedAt.Format("2006-01-02"),
			workerName(v),
			v.ViolationType.String(),
			cameraZone(v),
			fmt.Sprintf("%d%%", v.ConfidenceScore),
		}
		for i, c := range cells {
			pdf.CellFormat(colWidths[i], 7, c, "B", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return Export{}, fmt.Errorf("serialize pdf: %w", err)
	}

	return Export{
		Content:     buf.Bytes(),
		ContentType: ContentTypePDF,
		Filename:    exportFilename(period, "pdf"),
	}, nil
}
