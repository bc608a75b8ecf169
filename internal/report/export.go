package report

import "fmt"

const (
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	ContentTypePDF  = "application/pdf"
)

// Export is a rendered report: the document bytes plus the media type
// and suggested filename a handler needs to serve it.
type Export struct {
	Content     []byte
	ContentType string
	Filename    string
}

func exportFilename(period Period, ext string) string {
	return fmt.Sprintf("Violations_%d_%d.%s", period.Start.Year(), int(period.Start.Month()), ext)
}
