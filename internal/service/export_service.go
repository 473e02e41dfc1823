package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"

	"github.com/nestworth/nestworth-backend/internal/domain"
	"github.com/nestworth/nestworth-backend/internal/websocket"
)

const (
	exportContentType = "application/pdf"
	// downloadURLExpiry bounds how long a presigned export link stays valid
	downloadURLExpiry = 15 * time.Minute
)

// ExportListItem pairs a stored export record with a short-lived download
// link. DownloadURL is empty when the file was never archived.
type ExportListItem struct {
	Record      *domain.ExportRecord
	DownloadURL string
}

// ExportService renders projection PDFs and tracks generated exports.
// Archiving to object storage is optional; without it exports are
// download-only.
type ExportService struct {
	exportRepo     domain.ExportRepository
	projectionSvc  *ProjectionService
	archive        domain.ExportArchive
	eventPublisher websocket.EventPublisher
}

// NewExportService creates a new ExportService
func NewExportService(exportRepo domain.ExportRepository, projectionSvc *ProjectionService) *ExportService {
	return &ExportService{
		exportRepo:    exportRepo,
		projectionSvc: projectionSvc,
	}
}

// SetArchive sets the object storage used to keep copies of generated PDFs
func (s *ExportService) SetArchive(archive domain.ExportArchive) {
	s.archive = archive
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ExportService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvent publishes an event if an event publisher is configured
func (s *ExportService) publishEvent(userID uuid.UUID, event websocket.Event) {
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(userID, event)
	}
}

// ExportPDF renders the user's current projection as a PDF, records the
// export, and returns the record together with the file bytes. The PDF is
// archived to object storage when an archive is configured; archive failures
// degrade to a download-only export rather than failing the request.
func (s *ExportService) ExportPDF(ctx context.Context, userID uuid.UUID) (*domain.ExportRecord, []byte, error) {
	projection, err := s.projectionSvc.Get(userID)
	if err != nil {
		return nil, nil, err
	}

	data, err := renderPlanPDF(projection)
	if err != nil {
		return nil, nil, err
	}

	record := &domain.ExportRecord{
		UserID:    userID,
		Filename:  fmt.Sprintf("nestworth-plan-%s.pdf", time.Now().UTC().Format("2006-01-02")),
		SizeBytes: int64(len(data)),
	}

	if s.archive != nil {
		objectPath := fmt.Sprintf("exports/%s/%s/%s", userID, uuid.New(), record.Filename)
		if _, err := s.archive.Upload(ctx, objectPath, bytes.NewReader(data), exportContentType, int64(len(data))); err != nil {
			log.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to archive export, continuing without a stored copy")
		} else {
			record.ObjectPath = &objectPath
		}
	}

	saved, err := s.exportRepo.Create(record)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to record export: %w", err)
	}

	log.Info().Str("user_id", userID.String()).Str("filename", saved.Filename).Int64("size_bytes", saved.SizeBytes).Msg("Export generated")
	s.publishEvent(userID, websocket.ExportCreated(saved))

	return saved, data, nil
}

// List returns the user's export history, newest first, with presigned
// download links for archived files
func (s *ExportService) List(ctx context.Context, userID uuid.UUID) ([]ExportListItem, error) {
	records, err := s.exportRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	items := make([]ExportListItem, 0, len(records))
	for _, record := range records {
		item := ExportListItem{Record: record}
		if s.archive != nil && record.ObjectPath != nil {
			url, err := s.archive.GeneratePresignedURL(ctx, *record.ObjectPath, downloadURLExpiry)
			if err != nil {
				log.Warn().Err(err).Str("object_path", *record.ObjectPath).Msg("Failed to presign export download")
			} else {
				item.DownloadURL = url
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// renderPlanPDF lays out the projection as a one-or-two page A4 document
func renderPlanPDF(p *domain.Projection) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Your Baby Blueprint", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.Cell(0, 12, "Your Baby Blueprint")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(90, 90, 90)
	pdf.Cell(0, 5, fmt.Sprintf("Five-year cost projection generated %s", p.GeneratedAt.Format("January 2, 2006")))
	pdf.Ln(5)
	pdf.Cell(0, 5, fmt.Sprintf("Region: %s (%s cost band)", p.Assumptions.Region, p.Assumptions.CostBand))
	pdf.Ln(10)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, fmt.Sprintf("Total five-year cost: %s", formatDollars(p.TotalCost)))
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Savings: %s today, %s projected after five years",
		formatDollars(p.Profile.CurrentSavings),
		formatDollars(p.Yearly[len(p.Yearly)-1].EndingSavings)))
	pdf.Ln(12)

	renderYearlyTable(pdf, p.Yearly)

	pdf.Ln(8)
	renderAssumptions(pdf, p)

	if len(p.Warnings) > 0 {
		pdf.Ln(8)
		renderWarnings(pdf, p.Warnings)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderYearlyTable(pdf *gofpdf.Fpdf, yearly []domain.YearlySummary) {
	headers := []string{"Year", "Income", "Expenses", "Net Cashflow", "Ending Savings"}
	widths := []float64{20, 40, 40, 40, 40}

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, year := range yearly {
		pdf.CellFormat(widths[0], 7, fmt.Sprintf("%d", year.Year), "1", 0, "C", false, 0, "")
		pdf.CellFormat(widths[1], 7, "$"+year.TotalIncome.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[2], 7, "$"+year.Expenses.Total.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], 7, "$"+year.NetCashflow.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[4], 7, "$"+year.EndingSavings.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
}

func renderAssumptions(pdf *gofpdf.Fpdf, p *domain.Projection) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Cost Assumptions")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	lines := []string{
		fmt.Sprintf("Baby gear priced at the %s tier, %s one-time over the first three months", p.Assumptions.CostBand.Tier(), formatDollars(p.Assumptions.OneTimeTotal())),
		fmt.Sprintf("Childcare: daycare %s/month, nanny %s/month, starting at age %d months",
			formatDollars(p.Assumptions.ChildcareCosts.Daycare),
			formatDollars(p.Assumptions.ChildcareCosts.Nanny),
			p.Assumptions.ChildcareStartMonth),
		fmt.Sprintf("Housing held constant at %s/month", formatDollars(p.Profile.MonthlyHousingCost)),
	}
	for _, line := range lines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
}

func renderWarnings(pdf *gofpdf.Fpdf, warnings []domain.Warning) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Warnings")
	pdf.Ln(8)

	for _, warning := range warnings {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(0, 6, fmt.Sprintf("[%s] %s", strings.ToUpper(string(warning.Severity)), warning.Title))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, warning.Message, "", "L", false)
		pdf.MultiCell(0, 5, warning.Recommendation, "", "L", false)
		pdf.Ln(2)
	}
}
