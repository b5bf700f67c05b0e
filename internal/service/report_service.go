package service

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type reportUserSource interface {
	List(ctx context.Context) []models.User
	FindByID(ctx context.Context, id string) (models.User, bool)
}

type reportSchoolSource interface {
	List(ctx context.Context) []models.School
}

type brandingSource interface {
	Get(ctx context.Context) models.InstitutionalBranding
}

// ReportService derives dashboard counts, enrolment reports and certificates.
// Every figure is recomputed from the stored collections on each call.
type ReportService struct {
	users    reportUserSource
	schools  reportSchoolSource
	branding brandingSource
	logger   *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(users reportUserSource, schools reportSchoolSource, branding brandingSource, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{users: users, schools: schools, branding: branding, logger: logger}
}

// SystemStats counts users by role and campuses.
func (s *ReportService) SystemStats(ctx context.Context) dto.SystemStats {
	var stats dto.SystemStats
	for _, u := range s.users.List(ctx) {
		switch u.Role() {
		case models.RoleStudent:
			stats.Students++
		case models.RoleTeacher:
			stats.Teachers++
		case models.RoleAdmin:
			stats.Admins++
		}
	}
	stats.Campuses = len(s.schools.List(ctx))
	return stats
}

// Enrollment aggregates students per grade and gender, TVET against grade 12
// candidates, and the faculty qualification histogram.
func (s *ReportService) Enrollment(ctx context.Context) dto.EnrollmentReport {
	report := dto.EnrollmentReport{}
	byGrade := make(map[models.GradeLevel]*dto.GradeEnrollment, len(models.AcademicGrades))
	for _, g := range models.AcademicGrades {
		byGrade[g] = &dto.GradeEnrollment{Grade: string(g)}
	}
	quals := map[string]int{}

	for _, u := range s.users.List(ctx) {
		switch v := u.(type) {
		case models.Student:
			report.TotalStudents++
			if v.CurrentGrade.IsTVET() {
				report.TVETCandidates++
			}
			if v.CurrentGrade == models.Grade12 {
				report.Grade12Graduates++
			}
			row, ok := byGrade[v.CurrentGrade]
			if !ok {
				continue
			}
			row.Total++
			switch v.Gender {
			case "Male":
				row.Male++
			case "Female":
				row.Female++
			}
		case models.Teacher:
			report.TotalTeachers++
			q := strings.TrimSpace(v.Qualification)
			if q == "" {
				q = "Other"
			}
			quals[q]++
		}
	}

	for _, g := range models.AcademicGrades {
		report.ByGrade = append(report.ByGrade, *byGrade[g])
	}
	report.Qualifications = make([]dto.QualificationCount, 0, len(quals))
	for q, n := range quals {
		report.Qualifications = append(report.Qualifications, dto.QualificationCount{Qualification: q, Count: n})
	}
	sort.Slice(report.Qualifications, func(i, j int) bool {
		return report.Qualifications[i].Qualification < report.Qualifications[j].Qualification
	})
	return report
}

// Certificate describes the completion document for studentID: a certificate
// of competency for TVET students, a diploma otherwise.
func (s *ReportService) Certificate(ctx context.Context, studentID string) (dto.Certificate, error) {
	user, ok := s.users.FindByID(ctx, studentID)
	if !ok {
		return dto.Certificate{}, appErrors.Clone(appErrors.ErrNotFound, "student not found")
	}
	student, ok := user.(models.Student)
	if !ok {
		return dto.Certificate{}, appErrors.Clone(appErrors.ErrValidation, "certificates are issued to students only")
	}

	branding := s.branding.Get(ctx)
	cert := dto.Certificate{
		StudentID:    student.ID,
		StudentName:  student.Name,
		Grade:        string(student.CurrentGrade),
		Department:   student.Department,
		SchoolName:   branding.SchoolName,
		AcademicYear: branding.AcademicYear,
	}
	if IsTVETStudent(student) {
		cert.Kind = "TVET"
		cert.Title = "Certificate of Competency"
	} else {
		cert.Kind = "Diploma"
		cert.Title = "High School Diploma"
	}
	return cert, nil
}

// IsTVETStudent reports whether s follows a vocational programme.
func IsTVETStudent(s models.Student) bool {
	return s.CurrentGrade.IsTVET() || strings.Contains(s.Department, "Vocational")
}
