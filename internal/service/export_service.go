package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
	"github.com/noah-isme/iftu-lms-api/pkg/export"
)

// ExportFormat selects the rendered file type.
type ExportFormat string

const (
	FormatCSV ExportFormat = "csv"
	FormatPDF ExportFormat = "pdf"
)

// ParseExportFormat accepts csv or pdf in any case.
func ParseExportFormat(raw string) (ExportFormat, error) {
	switch ExportFormat(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatPDF:
		return FormatPDF, nil
	}
	return "", appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", raw))
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, opts export.PDFOptions) ([]byte, error)
}

type exportObserver interface {
	ObserveExport(size int)
}

// ExportConfig tunes export behaviour.
type ExportConfig struct {
	FilePrefix string
}

// ExportService renders transcripts, fee statements and rosters.
type ExportService struct {
	branding brandingSource
	csv      csvRenderer
	pdf      pdfRenderer
	metrics  exportObserver
	logger   *zap.Logger
	cfg      ExportConfig
}

// NewExportService constructs an ExportService.
func NewExportService(branding brandingSource, cfg ExportConfig, metrics exportObserver, logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.FilePrefix == "" {
		cfg.FilePrefix = "IFTU"
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{branding: branding, csv: csv, pdf: pdf, metrics: metrics, logger: logger, cfg: cfg}
}

// Transcript renders the subject grid with one sem1/sem2/avg column triple per grade.
func (s *ExportService) Transcript(ctx context.Context, t dto.Transcript, format ExportFormat) (*ExportFile, error) {
	headers := []string{"Subject"}
	for _, level := range TranscriptLevels {
		g := strconv.Itoa(level)
		headers = append(headers, "G"+g+" S1", "G"+g+" S2", "G"+g+" Avg")
	}
	data := export.Dataset{Headers: headers}
	for _, row := range t.Rows {
		values := []string{row.Subject}
		for _, level := range TranscriptLevels {
			cell := row.Grades[level]
			if !cell.Taken {
				values = append(values, "-", "-", "-")
				continue
			}
			values = append(values, scoreText(cell.Sem1), scoreText(cell.Sem2), scoreText(cell.Average))
		}
		data.AddRow(values...)
	}

	averages := []string{"Cumulative Avg%"}
	statuses := []string{"Final Status"}
	for _, level := range TranscriptLevels {
		averages = append(averages, "", "", scoreText(t.YearlyAverages[level]))
		statuses = append(statuses, "", "", t.FinalStatus[level])
	}
	data.AddRow(averages...)
	data.AddRow(statuses...)

	opts := export.PDFOptions{
		Title:     "Official Transcript",
		Landscape: true,
		Footer: []string{
			fmt.Sprintf("Student: %s (%s)  Stream: %s  Current: %s", t.StudentName, t.StudentID, t.Stream, t.CurrentGrade),
			"Grading: A+ 90-100, B 80-89, C 70-79, D 50-69, F below 50",
		},
	}
	return s.render(ctx, "Transcript_"+t.StudentName, data, opts, format)
}

// Statement renders a fee ledger with its balance.
func (s *ExportService) Statement(ctx context.Context, txs []models.PaymentTransaction, balance dto.Balance, format ExportFormat) (*ExportFile, error) {
	data := export.Dataset{Headers: []string{"Date", "Reference", "Description", "Method", "Type", "Status", "Amount (ETB)"}}
	for _, tx := range txs {
		data.AddRow(tx.Date, tx.ID, tx.Description, string(tx.Method), string(tx.Type), string(tx.Status), formatAmount(tx.Amount))
	}
	opts := export.PDFOptions{
		Title:  "Fee Statement",
		Footer: []string{"Outstanding balance: " + formatAmount(balance.Outstanding) + " ETB"},
	}
	name := "Statement"
	if balance.StudentID != "" {
		name += "_" + balance.StudentID
	}
	return s.render(ctx, name, data, opts, format)
}

// Roster renders a user listing.
func (s *ExportService) Roster(ctx context.Context, users []models.User, format ExportFormat) (*ExportFile, error) {
	data := export.Dataset{Headers: []string{"ID", "Name", "Role", "Gender", "Grade", "Department", "Status", "Email"}}
	for _, u := range users {
		rec := models.RecordOf(u)
		data.AddRow(rec.ID, rec.Name, string(rec.Role), rec.Gender, string(rec.CurrentGrade), rec.Department, string(rec.Status), rec.Email)
	}
	return s.render(ctx, "Roster", data, export.PDFOptions{Title: "User Roster", Landscape: true}, format)
}

func (s *ExportService) render(ctx context.Context, name string, data export.Dataset, opts export.PDFOptions, format ExportFormat) (*ExportFile, error) {
	filename := s.cfg.FilePrefix + "_" + strings.ReplaceAll(strings.TrimSpace(name), " ", "_")

	var (
		file = &ExportFile{}
		err  error
	)
	switch format {
	case FormatCSV:
		file.Data, err = s.csv.Render(data)
		file.Filename = filename + ".csv"
		file.ContentType = "text/csv"
	case FormatPDF:
		if s.branding != nil {
			b := s.branding.Get(ctx)
			opts.Header = []string{b.BureauName + " | " + b.BureauNameLocal, b.SchoolName, "Academic Year " + b.AcademicYear}
		}
		file.Data, err = s.pdf.Render(data, opts)
		file.Filename = filename + ".pdf"
		file.ContentType = "application/pdf"
	default:
		return nil, appErrors.Clone(appErrors.ErrUnsupportedFormat, fmt.Sprintf("unsupported export format %q", format))
	}
	if err != nil {
		s.logger.Error("export render failed", zap.String("file", filename), zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render export")
	}
	if s.metrics != nil {
		s.metrics.ObserveExport(len(file.Data))
	}
	return file, nil
}

func scoreText(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
