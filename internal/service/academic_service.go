package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/iftu-lms-api/internal/dto"
	"github.com/noah-isme/iftu-lms-api/internal/models"
	appErrors "github.com/noah-isme/iftu-lms-api/pkg/errors"
)

type studentDirectory interface {
	FindByID(ctx context.Context, id string) (models.User, bool)
	FindStudentByIdentifier(ctx context.Context, identifier string) (models.Student, bool)
	ListByGrade(ctx context.Context, grade models.GradeLevel) []models.Student
}

type academicRecordRepository interface {
	FindByStudent(ctx context.Context, studentID string) (models.StudentAcademicRecord, bool)
	Ensure(ctx context.Context, studentID, displayName string) (models.StudentAcademicRecord, error)
	SaveSubjectScore(ctx context.Context, studentID, displayName, subject string, sem models.Semester, score int) (models.StudentAcademicRecord, error)
}

// AcademicService builds transcripts and grade sheets from academic records.
type AcademicService struct {
	students  studentDirectory
	records   academicRecordRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewAcademicService constructs an AcademicService.
func NewAcademicService(students studentDirectory, records academicRecordRepository, validate *validator.Validate, logger *zap.Logger) *AcademicService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AcademicService{students: students, records: records, validator: validate, logger: logger}
}

// EnsureStudentHistory returns the academic record of studentID, creating an
// empty one on first access.
func (s *AcademicService) EnsureStudentHistory(ctx context.Context, studentID, displayName string) (models.StudentAcademicRecord, error) {
	rec, err := s.records.Ensure(ctx, studentID, displayName)
	if err != nil {
		return models.StudentAcademicRecord{}, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to ensure academic record")
	}
	return rec, nil
}

// Transcript builds the grade 9 to 12 summary of the student matching
// identifier (id or national id).
func (s *AcademicService) Transcript(ctx context.Context, identifier string) (dto.Transcript, error) {
	student, ok := s.students.FindStudentByIdentifier(ctx, identifier)
	if !ok {
		return dto.Transcript{}, appErrors.Clone(appErrors.ErrNotFound, "student record not found")
	}
	rec, err := s.EnsureStudentHistory(ctx, student.ID, student.Name)
	if err != nil {
		return dto.Transcript{}, err
	}
	return BuildTranscript(student, rec), nil
}

// BuildTranscript lays out rec for student. The student's current grade reads
// the live subjects; other grades read the archived history. TVET students
// and unknown grades are treated as grade 12.
func BuildTranscript(student models.Student, rec models.StudentAcademicRecord) dto.Transcript {
	stream := StreamForDepartment(student.Department)
	current, ok := student.CurrentGrade.Number()
	if !ok {
		current = 12
	}

	byLevel := make(map[int]models.SubjectScores, len(TranscriptLevels))
	for _, level := range TranscriptLevels {
		if level == current {
			byLevel[level] = rec.Subjects
		} else {
			byLevel[level] = rec.PreviousGrades[level]
		}
	}

	t := dto.Transcript{
		StudentID:      student.ID,
		StudentName:    student.Name,
		NationalID:     student.NationalID,
		Gender:         student.Gender,
		Stream:         string(stream),
		CurrentGrade:   string(student.CurrentGrade),
		Rows:           make([]dto.TranscriptRow, 0, len(TranscriptSubjects)),
		YearlyAverages: make(map[int]*int, len(TranscriptLevels)),
		LetterGrades:   map[int]string{},
		FinalStatus:    map[int]string{},
	}

	for _, subject := range TranscriptSubjects {
		row := dto.TranscriptRow{Subject: subject, Grades: make(map[int]dto.TranscriptCell, len(TranscriptLevels))}
		for _, level := range TranscriptLevels {
			cell := dto.TranscriptCell{Taken: IsSubjectTaken(stream, subject, level)}
			if cell.Taken {
				if scores, ok := byLevel[level][subject]; ok {
					cell.Sem1, cell.Sem2 = scores.Sem1, scores.Sem2
					cell.Average = SemesterAverage(scores.Sem1, scores.Sem2)
				}
			}
			row.Grades[level] = cell
		}
		t.Rows = append(t.Rows, row)
	}

	for _, level := range TranscriptLevels {
		avg := YearlyAverage(stream, level, byLevel[level])
		t.YearlyAverages[level] = avg
		if avg == nil {
			continue
		}
		t.LetterGrades[level] = LetterGrade(*avg)
		t.FinalStatus[level] = finalStatus(level, *avg)
	}
	return t
}

func finalStatus(level, average int) string {
	if PassStatus(average, models.DefaultPassingScore) != "Pass" {
		return "Repeat"
	}
	if level == 12 {
		return "Graduated"
	}
	return "Promoted"
}

// Gradebook lists the active students of grade with their scores in subject.
func (s *AcademicService) Gradebook(ctx context.Context, grade models.GradeLevel, subject string) (dto.Gradebook, error) {
	if !grade.Valid() {
		return dto.Gradebook{}, appErrors.Clone(appErrors.ErrValidation, "unknown grade level")
	}
	subject = normalizeSubject(subject)
	if subject == "" {
		return dto.Gradebook{}, appErrors.Clone(appErrors.ErrValidation, "subject is required")
	}

	book := dto.Gradebook{Grade: string(grade), Subject: subject, Entries: []dto.GradebookEntry{}}
	for _, student := range s.students.ListByGrade(ctx, grade) {
		if student.Status != models.StatusActive {
			continue
		}
		entry := dto.GradebookEntry{StudentID: student.ID, StudentName: student.Name}
		if rec, ok := s.records.FindByStudent(ctx, student.ID); ok {
			if scores, ok := rec.Subjects[subject]; ok {
				entry.Sem1, entry.Sem2 = scores.Sem1, scores.Sem2
				entry.Average = SemesterAverage(scores.Sem1, scores.Sem2)
			}
		}
		book.Entries = append(book.Entries, entry)
	}
	return book, nil
}

// SaveGradebook records a batch of semester scores. Scores are clamped to
// 0..100 and unknown students are rejected before anything is written.
func (s *AcademicService) SaveGradebook(ctx context.Context, update dto.GradebookUpdate) error {
	if err := s.validator.Struct(update); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid gradebook payload")
	}

	names := make(map[string]string, len(update.Scores))
	for _, score := range update.Scores {
		user, ok := s.students.FindByID(ctx, score.StudentID)
		if !ok || user.Role() != models.RoleStudent {
			return appErrors.Clone(appErrors.ErrNotFound, "student "+score.StudentID+" not found")
		}
		names[score.StudentID] = user.Base().Name
	}

	for _, score := range update.Scores {
		if _, err := s.records.SaveSubjectScore(ctx, score.StudentID, names[score.StudentID], update.Subject, models.Semester(score.Semester), score.Score); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save grade")
		}
	}
	s.logger.Info("gradebook saved", zap.String("subject", update.Subject), zap.Int("scores", len(update.Scores)))
	return nil
}
