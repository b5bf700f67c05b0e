package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

func newReportServiceForTest(t *testing.T) (*ReportService, testRepos) {
	t.Helper()
	repos := newTestRepos(t)
	return NewReportService(repos.users, repos.schools, repos.branding, nil), repos
}

func TestSystemStatsReflectsWrites(t *testing.T) {
	svc, repos := newReportServiceForTest(t)
	ctx := context.Background()

	assert.Equal(t, dto.SystemStats{Students: 3, Teachers: 2, Admins: 1, Campuses: 2}, svc.SystemStats(ctx))

	require.NoError(t, repos.users.Save(ctx, models.Student{Profile: models.Profile{ID: "U200", Name: "New"}, CurrentGrade: models.Grade9}))
	require.NoError(t, repos.schools.Delete(ctx, "S002"))

	assert.Equal(t, dto.SystemStats{Students: 4, Teachers: 2, Admins: 1, Campuses: 1}, svc.SystemStats(ctx))
}

func TestEnrollmentReport(t *testing.T) {
	svc, _ := newReportServiceForTest(t)

	report := svc.Enrollment(context.Background())

	assert.Equal(t, 3, report.TotalStudents)
	assert.Equal(t, 2, report.TotalTeachers)
	assert.Equal(t, 1, report.TVETCandidates)
	assert.Equal(t, 1, report.Grade12Graduates)
	require.Len(t, report.ByGrade, 4)
	assert.Equal(t, dto.GradeEnrollment{Grade: "Grade 11", Female: 1, Total: 1}, report.ByGrade[2])
	assert.Equal(t, dto.GradeEnrollment{Grade: "Grade 12", Male: 1, Total: 1}, report.ByGrade[3])
	assert.Equal(t, []dto.QualificationCount{{Qualification: "BEd", Count: 1}, {Qualification: "MSc", Count: 1}}, report.Qualifications)
}

func TestCertificateKinds(t *testing.T) {
	svc, _ := newReportServiceForTest(t)
	ctx := context.Background()

	diploma, err := svc.Certificate(ctx, "U101")
	require.NoError(t, err)
	assert.Equal(t, "Diploma", diploma.Kind)
	assert.Equal(t, "High School Diploma", diploma.Title)
	assert.Equal(t, models.DefaultBranding().SchoolName, diploma.SchoolName)

	tvet, err := svc.Certificate(ctx, "U103")
	require.NoError(t, err)
	assert.Equal(t, "TVET", tvet.Kind)
	assert.Equal(t, "Certificate of Competency", tvet.Title)

	_, err = svc.Certificate(ctx, "U002")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Certificate(ctx, "missing")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}
