package contract

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// RenderPDF выводит договор в PDF: та же структура, что и в Markdown,
// заголовки секций капсом, подсекции и положения жирным.
func RenderPDF(doc Document, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	write := func(text string, size float64, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, size)
		pdf.MultiCell(0, size*0.5, tr(text), "", "L", false)
		pdf.Ln(2)
	}

	write(strings.ToUpper(doc.Title), 18, true)
	pdf.Ln(3)

	write("Project: "+doc.Project, 12, true)
	write("Start Date: "+doc.StartDate, 11, false)
	write("End Date: "+doc.EndDate, 11, false)
	pdf.Ln(3)

	write("CREATOR", 11, true)
	for _, line := range doc.Creator {
		write(line, 11, false)
	}
	pdf.Ln(2)

	write("CLIENT", 11, true)
	for _, line := range doc.Client {
		write(line, 11, false)
	}
	pdf.Ln(5)

	for _, section := range doc.Sections {
		write(strings.ToUpper(section.Title), 14, true)
		for _, item := range section.Items {
			switch item.Kind {
			case ItemField:
				write(item.Label+": "+item.Text, 11, false)
			case ItemBlock:
				write(item.Label+":", 11, false)
				write(item.Text, 11, false)
			case ItemSubsection, ItemProvision:
				write(item.Label, 11, true)
				write(item.Text, 11, false)
			default:
				write(item.Text, 11, false)
			}
		}
		pdf.Ln(2)
	}

	write(fmt.Sprintf("Generated on %s", formatDate(doc.GeneratedAt)), 9, false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}
