package service

import (
	"context"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

// DefaultMinutesPerQuestion is used to derive an exam duration when none is given.
const DefaultMinutesPerQuestion = 2

type examRepository interface {
	List(ctx context.Context) []models.Exam
	FindByID(ctx context.Context, id string) (models.Exam, bool)
	Save(ctx context.Context, exam models.Exam) error
	Delete(ctx context.Context, id string) error
}

// ExamService manages exams and scores submissions.
type ExamService struct {
	repo      examRepository
	validator *validator.Validate
	logger    *zap.Logger
}

func NewExamService(repo examRepository, validate *validator.Validate, logger *zap.Logger) *ExamService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &ExamService{repo: repo, validator: validate, logger: logger}
}

func (s *ExamService) List(ctx context.Context) []models.Exam {
	return s.repo.List(ctx)
}

func (s *ExamService) Get(ctx context.Context, id string) (models.Exam, error) {
	exam, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return models.Exam{}, appErrors.Clone(appErrors.ErrNotFound, "exam not found")
	}
	return exam, nil
}

// Create schedules a new exam authored by teacherID. The duration is derived
// from the question count at minutesPerQuestion each.
func (s *ExamService) Create(ctx context.Context, exam models.Exam, teacherID string, minutesPerQuestion float64) (models.Exam, error) {
	exam.ID = newID("EX")
	if teacherID != "" {
		exam.TeacherID = teacherID
	}
	if exam.Status == "" {
		exam.Status = models.ExamUpcoming
	}
	if minutesPerQuestion <= 0 {
		minutesPerQuestion = DefaultMinutesPerQuestion
	}
	if len(exam.Questions) > 0 {
		exam.TotalQuestions = len(exam.Questions)
	}
	exam.Duration = fmt.Sprintf("%d mins", int(math.Ceil(minutesPerQuestion*float64(exam.TotalQuestions))))
	return s.Save(ctx, exam.ID, exam)
}

// Save validates and upserts the exam with id.
func (s *ExamService) Save(ctx context.Context, id string, exam models.Exam) (models.Exam, error) {
	exam.ID = id
	if exam.PassingScore == nil {
		passing := models.DefaultPassingScore
		exam.PassingScore = &passing
	}
	if err := s.validator.Struct(exam); err != nil {
		return models.Exam{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid exam payload")
	}
	for i, q := range exam.Questions {
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return models.Exam{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("question %d: correct answer is outside its options", i+1))
		}
	}
	if err := s.repo.Save(ctx, exam); err != nil {
		return models.Exam{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save exam")
	}
	return exam, nil
}

func (s *ExamService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete exam")
	}
	return nil
}

// Evaluate scores a submission and labels it against the exam's passing score.
func (s *ExamService) Evaluate(ctx context.Context, id string, submission dto.ExamSubmission) (dto.ExamResult, error) {
	exam, err := s.Get(ctx, id)
	if err != nil {
		return dto.ExamResult{}, err
	}
	if len(exam.Questions) == 0 {
		return dto.ExamResult{}, appErrors.Clone(appErrors.ErrValidation, "exam has no questions to score")
	}

	correct := 0
	for i, q := range exam.Questions {
		if i < len(submission.Answers) && submission.Answers[i] == q.CorrectAnswer {
			correct++
		}
	}
	total := len(exam.Questions)
	score := int(math.Round(float64(correct) * 100 / float64(total)))

	return dto.ExamResult{
		ExamID:       exam.ID,
		Correct:      correct,
		Total:        total,
		Score:        score,
		PassingScore: exam.EffectivePassingScore(),
		Status:       PassStatus(score, exam.EffectivePassingScore()),
	}, nil
}
