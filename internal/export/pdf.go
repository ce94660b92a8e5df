package export

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/go-pdf/fpdf"
)

// unicodeFontCandidates are TTF fonts tried in order so non-Latin
// text survives export; Helvetica is the fallback.
var unicodeFontCandidates = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf",
	"/usr/share/fonts/truetype/freefont/FreeSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
}

// PDF renders the document text as a PDF and returns the output path.
// Empty input is ErrEmptyDocument and writes nothing.
func (e *Exporter) PDF(text, title, explicitPath string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyDocument
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AliasNbPages("")

	family, render := setupFont(pdf)
	date := e.now().Format("January 2, 2006")

	pdf.SetHeaderFunc(func() {
		pdf.SetFont(family, "B", 11)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(95, 10, render(title), "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 10, date, "", 1, "R", false, 0, "")
		pdf.Line(10, 22, 200, 22)
		pdf.Ln(8)
	})
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(family, "I", 8)
		pdf.SetTextColor(128, 128, 128)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()
	left, _, _, _ := pdf.GetMargins()

	itemNo := 0
	for _, line := range Classify(text) {
		if line.Kind != LineNumbered {
			itemNo = 0
		}
		switch line.Kind {
		case LineBlank:
			pdf.Ln(4)
		case LineHeading:
			pdf.Ln(4)
			pdf.SetFont(family, "B", 13)
			pdf.SetTextColor(0, 51, 102)
			pdf.MultiCell(0, 7, render(titleCase(line.Text)), "", "L", false)
			pdf.Ln(2)
		case LineSubheading:
			pdf.Ln(2)
			pdf.SetFont(family, "B", 11)
			pdf.SetTextColor(51, 51, 51)
			pdf.MultiCell(0, 6, render(line.Text), "", "L", false)
			pdf.Ln(1)
		case LineBullet:
			pdf.SetFont(family, "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetX(left + 5)
			pdf.MultiCell(0, 6, render("•  "+line.Text), "", "L", false)
		case LineNumbered:
			itemNo++
			pdf.SetFont(family, "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.SetX(left + 5)
			pdf.MultiCell(0, 6, render(fmt.Sprintf("%d.  %s", itemNo, line.Text)), "", "L", false)
		default:
			pdf.SetFont(family, "", 11)
			pdf.SetTextColor(0, 0, 0)
			pdf.MultiCell(0, 6, render(line.Text), "", "L", false)
		}
	}

	path, err := e.outputPath(explicitPath, title, "pdf")
	if err != nil {
		return "", err
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		e.logger.Error("PDF export failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("write pdf: %w", err)
	}

	e.logger.Info("PDF exported", slog.String("path", path))
	return path, nil
}

// setupFont registers a Unicode TTF when one exists. With the core
// Helvetica fallback, text must pass through the cp1252 translator.
func setupFont(pdf *fpdf.Fpdf) (family string, render func(string) string) {
	for _, path := range unicodeFontCandidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		pdf.AddUTF8Font("UniSans", "", path)
		boldPath := strings.NewReplacer("Sans.ttf", "Sans-Bold.ttf", "Regular.ttf", "Bold.ttf").Replace(path)
		if _, err := os.Stat(boldPath); err != nil {
			boldPath = path
		}
		pdf.AddUTF8Font("UniSans", "B", boldPath)
		pdf.AddUTF8Font("UniSans", "I", path)
		if pdf.Err() {
			break
		}
		return "UniSans", func(s string) string { return s }
	}
	return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
}
