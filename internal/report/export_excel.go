package report

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"visionguard-service/internal/model"
)

const excelSheet = "Violations"

var excelHeaders = []string{"ID", "Worker", "Violation Type", "Camera Zone", "Detected At", "Confidence Score"}

// RenderExcel renders the filtered rows into a spreadsheet: a header row
// followed by one row per violation, columns sized to their content. An
// empty row set produces a header-only sheet.
func RenderExcel(period Period, violations []model.Violation) (Export, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), excelSheet); err != nil {
		return Export{}, fmt.Errorf("rename sheet: %w", err)
	}

	widths := make([]int, len(excelHeaders))
	writeRow := func(row int, cells []string) error {
		for col, value := range cells {
			name, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(excelSheet, name, value); err != nil {
				return err
			}
			if len(value) > widths[col] {
				widths[col] = len(value)
			}
		}
		return nil
	}

	if err := writeRow(1, excelHeaders); err != nil {
		return Export{}, fmt.Errorf("write header: %w", err)
	}

	for i, v := range violations {
		cells := []string{
			strconv.Itoa(v.ID),
			workerName(v),
			v.ViolationType.String(),
			cameraZone(v),
			v.DetectedAt.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%d%%", v.ConfidenceScore),
		}
		if err := writeRow(i+2, cells); err != nil {
			return Export{}, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	for col, width := range widths {
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return Export{}, err
		}
		if err := f.SetColWidth(excelSheet, name, name, float64(width)+2); err != nil {
			return Export{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return Export{}, fmt.Errorf("serialize workbook: %w", err)
	}

	return Export{
		Content:     buf.Bytes(),
		ContentType: ContentTypeXLSX,
		Filename:    exportFilename(period, "xlsx"),
	}, nil
}
