package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

func TestParseExportFormat(t *testing.T) {
	f, err := ParseExportFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	_, err = ParseExportFormat("xlsx")
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedFormat)
}

func TestExportTranscriptCSV(t *testing.T) {
	repos := newTestRepos(t)
	metrics := NewMetricsService()
	svc := NewExportService(repos.branding, ExportConfig{}, metrics, nil, nil, nil)
	academic := NewAcademicService(repos.users, repos.records, nil, nil)

	tr, err := academic.Transcript(context.Background(), "U101")
	require.NoError(t, err)

	file, err := svc.Transcript(context.Background(), tr, FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "IFTU_Transcript_Abdi_Tolesa.csv", file.Filename)
	assert.Equal(t, "text/csv", file.ContentType)

	body := string(file.Data)
	assert.Contains(t, body, "Subject,G9 S1,G9 S2,G9 Avg")
	assert.Contains(t, body, "MATHEMATICS")
	assert.Contains(t, body, "Graduated")
}

func TestExportStatementPDF(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewExportService(repos.branding, ExportConfig{FilePrefix: "LMS"}, nil, nil, nil, nil)
	txs := repos.payments.List(context.Background())

	file, err := svc.Statement(context.Background(), txs, ComputeBalance(txs), FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "LMS_Statement.pdf", file.Filename)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportRosterUnknownFormat(t *testing.T) {
	svc := NewExportService(nil, ExportConfig{}, nil, nil, nil, nil)

	_, err := svc.Roster(context.Background(), []models.User{models.Admin{Profile: models.Profile{ID: "U1", Name: "A"}}}, "docx")
	assert.ErrorIs(t, err, appErrors.ErrUnsupportedFormat)

	file, err := svc.Roster(context.Background(), nil, FormatCSV)
	require.NoError(t, err)
	assert.Contains(t, string(file.Data), "ID,Name,Role")

	_, err = svc.Statement(context.Background(), nil, dto.Balance{}, FormatCSV)
	require.NoError(t, err)
}
