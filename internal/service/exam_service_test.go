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

func sampleExam() models.Exam {
	return models.Exam{
		Title:       "Physics Quiz",
		CourseTitle: "Physics Grade 11",
		Date:        "2025-02-01",
		Questions: []models.Question{
			{Text: "Unit of force?", Options: []string{"Newton", "Joule"}, CorrectAnswer: 0},
			{Text: "Unit of energy?", Options: []string{"Newton", "Joule"}, CorrectAnswer: 1},
			{Text: "Unit of power?", Options: []string{"Watt", "Volt", "Ohm"}, CorrectAnswer: 0},
		},
	}
}

func TestExamServiceCreateDefaults(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewExamService(repos.exams, nil, nil)

	exam, err := svc.Create(context.Background(), sampleExam(), "U002", 1.5)
	require.NoError(t, err)

	assert.Regexp(t, `^EX`, exam.ID)
	assert.Equal(t, "U002", exam.TeacherID)
	assert.Equal(t, models.ExamUpcoming, exam.Status)
	require.NotNil(t, exam.PassingScore)
	assert.Equal(t, models.DefaultPassingScore, *exam.PassingScore)
	assert.Equal(t, 3, exam.TotalQuestions)
	assert.Equal(t, "5 mins", exam.Duration)

	stored, err := svc.Get(context.Background(), exam.ID)
	require.NoError(t, err)
	assert.Equal(t, exam, stored)
}

func TestExamServiceRejectsInvalidExams(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewExamService(repos.exams, nil, nil)
	ctx := context.Background()

	bad := sampleExam()
	bad.PassingScore = intp(120)
	_, err := svc.Create(ctx, bad, "U002", 0)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	bad = sampleExam()
	bad.Questions[1].CorrectAnswer = 2
	_, err = svc.Create(ctx, bad, "U002", 0)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	bad = sampleExam()
	bad.Questions[0].Options = []string{"only"}
	_, err = svc.Create(ctx, bad, "U002", 0)
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	assert.Len(t, svc.List(ctx), 1)
}

func TestExamServiceEvaluate(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewExamService(repos.exams, nil, nil)
	ctx := context.Background()

	result, err := svc.Evaluate(ctx, "EX001", dto.ExamSubmission{Answers: []int{1, 0}})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Correct)
	assert.Equal(t, 100, result.Score)
	assert.Equal(t, "Pass", result.Status)

	result, err = svc.Evaluate(ctx, "EX001", dto.ExamSubmission{Answers: []int{3}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, "Fail", result.Status)

	_, err = svc.Evaluate(ctx, "missing", dto.ExamSubmission{})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestExamServiceKeepsZeroPassingScore(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewExamService(repos.exams, nil, nil)
	ctx := context.Background()

	practice := sampleExam()
	practice.PassingScore = intp(0)
	exam, err := svc.Create(ctx, practice, "U002", 0)
	require.NoError(t, err)

	stored, err := svc.Get(ctx, exam.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.PassingScore)
	assert.Equal(t, 0, *stored.PassingScore)

	result, err := svc.Evaluate(ctx, exam.ID, dto.ExamSubmission{Answers: []int{1, 0, 2}})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Correct)
	assert.Equal(t, 0, result.PassingScore)
	assert.Equal(t, "Pass", result.Status)
}
