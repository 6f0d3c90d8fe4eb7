package quote

import (
	"bytes"
	"fmt"
	"strings"

	"qcscargo/pkg/domain"
	"qcscargo/pkg/notify"

	"github.com/go-pdf/fpdf"
)

const (
	pdfMargin     = 15.0
	pdfLineHeight = 7.0
	pdfDateLayout = "January 2, 2006"
)

var serviceLevelNames = map[domain.ServiceLevel]string{ //nolint: gochecknoglobals
	domain.ServiceLevelAirStandard: "Air Standard",
	domain.ServiceLevelAirExpress:  "Air Express",
	domain.ServiceLevelOcean:       "Ocean Freight",
}

// ServiceLevelName returns the display name of a service level.
func ServiceLevelName(level domain.ServiceLevel) string {
	if name, ok := serviceLevelNames[level]; ok {
		return name
	}

	return string(level)
}

// RenderPDF renders q as a one page Letter document.
func RenderPDF(q domain.Quote) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetTitle("QCS Cargo quote "+q.ID.String(), true)
	pdf.SetAuthor("QCS Cargo", true)
	pdf.SetCreationDate(q.CreatedAt)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-pdfMargin)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(107, 114, 128)
		pdf.CellFormat(0, 5, "Rates are subject to final weight verification at the warehouse.", "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(30, 58, 138)
	pdf.CellFormat(0, 10, "QCS Cargo", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(31, 41, 55)
	pdf.CellFormat(0, pdfLineHeight, "Shipping quote", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	field := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, pdfLineHeight, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(0, pdfLineHeight, tr(value), "", 1, "L", false, 0, "")
	}
	field("Quote", q.ID.String())
	field("Issued", q.CreatedAt.Format(pdfDateLayout))
	field("Valid until", q.ExpiresAt.Format(pdfDateLayout))
	field("Prepared for", fmt.Sprintf("%s <%s>", q.Name, q.Email))
	field("Route", fmt.Sprintf("%s to %s", q.Origin, q.Destination))
	field("Service", ServiceLevelName(q.ServiceLevel))
	field("Transit time", fmt.Sprintf("%d-%d business days", q.TransitDaysMin, q.TransitDaysMax))
	pdf.Ln(4)

	header := func(cols []string, widths []float64) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(229, 231, 235)
		for i, c := range cols {
			align := "L"
			if i > 0 {
				align = "R"
			}
			pdf.CellFormat(widths[i], pdfLineHeight, c, "B", 0, align, true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont("Helvetica", "", 10)
	}

	pieceWidths := []float64{30, 80, 30, 46}
	header([]string{"Piece", "Dimensions (cm)", "Weight (kg)", "Volumetric (kg)"}, pieceWidths)
	for i, p := range q.Pieces {
		pdf.CellFormat(pieceWidths[0], pdfLineHeight, fmt.Sprintf("%d", i+1), "", 0, "L", false, 0, "")
		pdf.CellFormat(pieceWidths[1], pdfLineHeight,
			fmt.Sprintf("%g x %g x %g", p.LengthCm, p.WidthCm, p.HeightCm), "", 0, "R", false, 0, "")
		pdf.CellFormat(pieceWidths[2], pdfLineHeight, fmt.Sprintf("%.2f", p.WeightKg), "", 0, "R", false, 0, "")
		pdf.CellFormat(pieceWidths[3], pdfLineHeight, fmt.Sprintf("%.2f", p.LengthCm*p.WidthCm*p.HeightCm/volumetricDivisor(q)),
			"", 1, "R", false, 0, "")
	}
	pdf.Ln(2)
	field("Actual weight", fmt.Sprintf("%.2f kg", q.ActualWeightKg))
	field("Volumetric weight", fmt.Sprintf("%.2f kg", q.VolumetricWeightKg))
	field("Chargeable weight", fmt.Sprintf("%.1f kg", q.ChargeableWeightKg))
	pdf.Ln(4)

	lineWidths := []float64{140, 46}
	header([]string{"Charge", "Amount (" + q.Currency + ")"}, lineWidths)
	for _, l := range q.Lines {
		pdf.CellFormat(lineWidths[0], pdfLineHeight, tr(l.Description), "", 0, "L", false, 0, "")
		pdf.CellFormat(lineWidths[1], pdfLineHeight, notify.FormatCents(l.AmountCents), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(lineWidths[0], pdfLineHeight+2, "Total", "T", 0, "L", false, 0, "")
	pdf.CellFormat(lineWidths[1], pdfLineHeight+2, notify.FormatCents(q.TotalCents), "T", 1, "R", false, 0, "")

	if q.Insured {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, fmt.Sprintf("Insured for a declared value of %s.", notify.FormatCents(q.DeclaredValueCents)),
			"", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("could not render quote PDF: %w", err)
	}

	return buf.Bytes(), nil
}

// volumetricDivisor recovers the divisor a quote was priced with from its
// stored weights, falling back to the common 5000.
func volumetricDivisor(q domain.Quote) float64 {
	var volume float64
	for _, p := range q.Pieces {
		volume += p.LengthCm * p.WidthCm * p.HeightCm
	}
	if volume > 0 && q.VolumetricWeightKg > 0 {
		return volume / q.VolumetricWeightKg
	}

	return 5000
}

// PDFFileName returns the attachment name of a quote PDF.
func PDFFileName(q domain.Quote) string {
	return "qcs-quote-" + strings.SplitN(q.ID.String(), "-", 2)[0] + ".pdf"
}
