package service

import (
	"bytes"
	"fmt"
	"strings"

	"clinic-records/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfFont          = "Arial"
	primaryMarker    = "[PRIMARY] "
	noDiagnosesLine  = "(none)"
	emptySectionLine = "-"
)

// visitDocument is the deterministic textual layout of one visit, built
// before any PDF machinery runs so the content can be inspected directly.
type visitDocument struct {
	Title            string
	Header           []string
	DiagnosisHeading string
	Diagnoses        []string
	Sections         []docSection
}

type docSection struct {
	Title string
	Lines []string
}

// VisitPDFService renders a visit with its diagnosis list into a paginated
// PDF document. Pure transform: no storage access, no side effects.
type VisitPDFService struct{}

func NewVisitPDFService() *VisitPDFService {
	return &VisitPDFService{}
}

// buildVisitDocument lays out the visit top to bottom: title, patient name,
// national id, visit date, diagnoses (primary-first order as supplied), then
// the four clinical sections.
func buildVisitDocument(visit *entity.Visit, diagnoses []entity.Diagnosis) *visitDocument {
	doc := &visitDocument{
		Title: "Visit Report",
		Header: []string{
			fmt.Sprintf("Patient: %s", visit.Patient.FullName()),
			fmt.Sprintf("National ID: %s", visit.Patient.NationalID),
			fmt.Sprintf("Visit date: %s", visit.VisitDate.Format("2006-01-02 15:04")),
		},
		DiagnosisHeading: "ICD-10 diagnoses:",
	}

	if len(diagnoses) == 0 {
		doc.Diagnoses = []string{noDiagnosesLine}
	} else {
		for _, d := range diagnoses {
			line := fmt.Sprintf("%s - %s", d.Code, d.Name)
			if d.IsPrimary {
				line = primaryMarker + line
			}
			doc.Diagnoses = append(doc.Diagnoses, line)
		}
	}

	doc.Sections = []docSection{
		{Title: "Interview:", Lines: sectionLines(visit.Interview)},
		{Title: "Examination:", Lines: sectionLines(visit.Examination)},
		{Title: "Medications:", Lines: sectionLines(visit.Medications)},
		{Title: "Recommendations:", Lines: sectionLines(visit.Recommendations)},
	}

	return doc
}

func sectionLines(text string) []string {
	if strings.TrimSpace(text) == "" {
		return []string{emptySectionLine}
	}
	return strings.Split(text, "\n")
}

// Render produces the PDF byte stream for a visit. The core fonts are
// single-byte; non-representable characters are the caller's concern.
func (s *VisitPDFService) Render(visit *entity.Visit, diagnoses []entity.Diagnosis) ([]byte, error) {
	doc := buildVisitDocument(visit, diagnoses)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(pdfFont, "B", 14)
	pdf.CellFormat(0, 10, tr(doc.Title), "", 1, "", false, 0, "")

	pdf.SetFont(pdfFont, "", 11)
	pdf.Ln(4)
	for _, line := range doc.Header {
		pdf.CellFormat(0, 6, tr(line), "", 1, "", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont(pdfFont, "B", 11)
	pdf.CellFormat(0, 6, tr(doc.DiagnosisHeading), "", 1, "", false, 0, "")
	pdf.SetFont(pdfFont, "", 11)
	for _, line := range doc.Diagnoses {
		pdf.MultiCell(0, 5, tr(line), "", "", false)
	}
	pdf.Ln(3)

	for _, section := range doc.Sections {
		pdf.SetFont(pdfFont, "B", 11)
		pdf.CellFormat(0, 6, tr(section.Title), "", 1, "", false, 0, "")
		pdf.SetFont(pdfFont, "", 11)
		for _, line := range section.Lines {
			pdf.MultiCell(0, 5, tr(line), "", "", false)
		}
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render visit PDF: %w", err)
	}
	return buf.Bytes(), nil
}
