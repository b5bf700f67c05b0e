package service

import (
	"testing"

	"github.com/noah-isme/iftu-lms-api/internal/repository"
	"github.com/noah-isme/iftu-lms-api/internal/seed"
)

type testRepos struct {
	store         *repository.DocumentStore
	users         *repository.UserRepository
	courses       *repository.CourseRepository
	schools       *repository.SchoolRepository
	exams         *repository.ExamRepository
	news          *repository.NewsRepository
	payments      *repository.PaymentRepository
	records       *repository.AcademicRecordRepository
	branding      *repository.BrandingRepository
	announcements *repository.AnnouncementRepository
}

func newTestRepos(t *testing.T) testRepos {
	t.Helper()
	store := repository.NewDocumentStore(repository.NewMemoryBackend(), seed.Document, nil, nil)
	return testRepos{
		store:         store,
		users:         repository.NewUserRepository(store),
		courses:       repository.NewCourseRepository(store),
		schools:       repository.NewSchoolRepository(store),
		exams:         repository.NewExamRepository(store),
		news:          repository.NewNewsRepository(store),
		payments:      repository.NewPaymentRepository(store),
		records:       repository.NewAcademicRecordRepository(store),
		branding:      repository.NewBrandingRepository(store),
		announcements: repository.NewAnnouncementRepository(store),
	}
}

func intp(v int) *int { return &v }
