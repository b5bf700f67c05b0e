package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type courseRepository interface {
	List(ctx context.Context) []models.Course
	FindByID(ctx context.Context, id string) (models.Course, bool)
	Save(ctx context.Context, course models.Course) error
	Delete(ctx context.Context, id string) error
}

// CourseFilter mirrors the catalogue filters. "Vocational" as Grade matches
// every TVET level.
type CourseFilter struct {
	Category string
	Grade    string
	CampusID string
	Search   string
}

func (f CourseFilter) matches(c models.Course) bool {
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.CampusID != "" && c.CampusID != f.CampusID {
		return false
	}
	if f.Grade != "" {
		if f.Grade == "Vocational" {
			if !c.Duration.IsTVET() {
				return false
			}
		} else if string(c.Duration) != f.Grade && !strings.Contains(c.Title, f.Grade) {
			return false
		}
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(c.Title), needle) && !strings.Contains(strings.ToLower(c.Instructor), needle) {
			return false
		}
	}
	return true
}

// CourseService manages the course catalogue.
type CourseService struct {
	repo      courseRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCourseService constructs a CourseService.
func NewCourseService(repo courseRepository, validate *validator.Validate, logger *zap.Logger) *CourseService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CourseService{repo: repo, validator: validate, logger: logger}
}

// List returns courses matching filter.
func (s *CourseService) List(ctx context.Context, filter CourseFilter) []models.Course {
	out := []models.Course{}
	for _, c := range s.repo.List(ctx) {
		if filter.matches(c) {
			out = append(out, c)
		}
	}
	return out
}

// Get returns a course by id.
func (s *CourseService) Get(ctx context.Context, id string) (models.Course, error) {
	course, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return models.Course{}, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return course, nil
}

// Create adds a course with a fresh id and no enrolment.
func (s *CourseService) Create(ctx context.Context, course models.Course) (models.Course, error) {
	course.ID = newID("sub")
	course.Students = 0
	course.Progress = 0
	return s.save(ctx, course)
}

// Save overwrites the course stored under id.
func (s *CourseService) Save(ctx context.Context, id string, course models.Course) (models.Course, error) {
	course.ID = id
	return s.save(ctx, course)
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete course")
	}
	return nil
}

func (s *CourseService) save(ctx context.Context, course models.Course) (models.Course, error) {
	if err := s.validator.Struct(course); err != nil {
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}
	if !course.Duration.Valid() {
		return models.Course{}, appErrors.Clone(appErrors.ErrValidation, "course duration must be a grade or TVET level")
	}
	for i := range course.Curriculum {
		if course.Curriculum[i].ID == "" {
			course.Curriculum[i].ID = newID("mod-")
		}
		if course.Curriculum[i].Lessons == nil {
			course.Curriculum[i].Lessons = []string{}
		}
	}
	if course.Curriculum == nil {
		course.Curriculum = []models.CourseModule{}
	}
	if err := s.repo.Save(ctx, course); err != nil {
		return models.Course{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save course")
	}
	return course, nil
}
