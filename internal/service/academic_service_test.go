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

func newAcademicServiceForTest(t *testing.T) (*AcademicService, testRepos) {
	t.Helper()
	repos := newTestRepos(t)
	return NewAcademicService(repos.users, repos.records, nil, nil), repos
}

func rowFor(t *testing.T, tr dto.Transcript, subject string) dto.TranscriptRow {
	t.Helper()
	for _, row := range tr.Rows {
		if row.Subject == subject {
			return row
		}
	}
	t.Fatalf("subject %s missing from transcript", subject)
	return dto.TranscriptRow{}
}

func TestTranscriptUsesCurrentAndPreviousGrades(t *testing.T) {
	svc, _ := newAcademicServiceForTest(t)

	tr, err := svc.Transcript(context.Background(), "U101")
	require.NoError(t, err)

	assert.Equal(t, string(StreamNatural), tr.Stream)
	assert.Len(t, tr.Rows, len(TranscriptSubjects))

	math := rowFor(t, tr, "MATHEMATICS")
	require.NotNil(t, math.Grades[12].Average)
	assert.Equal(t, 90, *math.Grades[12].Average)
	require.NotNil(t, math.Grades[11].Average)
	assert.Equal(t, 82, *math.Grades[11].Average)
	assert.Nil(t, math.Grades[10].Average)

	require.NotNil(t, tr.YearlyAverages[12])
	assert.Equal(t, 87, *tr.YearlyAverages[12])
	assert.Equal(t, "B", tr.LetterGrades[12])
	assert.Equal(t, "Graduated", tr.FinalStatus[12])

	require.NotNil(t, tr.YearlyAverages[11])
	assert.Equal(t, 79, *tr.YearlyAverages[11])
	assert.Equal(t, "C", tr.LetterGrades[11])
	assert.Equal(t, "Promoted", tr.FinalStatus[11])

	assert.Nil(t, tr.YearlyAverages[9])
	assert.NotContains(t, tr.FinalStatus, 9)
}

func TestTranscriptMarksStreamSubjects(t *testing.T) {
	svc, _ := newAcademicServiceForTest(t)

	tr, err := svc.Transcript(context.Background(), "ETH-0012-7731")
	require.NoError(t, err)
	assert.Equal(t, string(StreamSocial), tr.Stream)

	physics := rowFor(t, tr, "PHYSICS")
	assert.True(t, physics.Grades[9].Taken)
	assert.False(t, physics.Grades[11].Taken)

	economics := rowFor(t, tr, "ECONOMICS")
	assert.False(t, economics.Grades[10].Taken)
	assert.True(t, economics.Grades[12].Taken)
}

func TestTranscriptUnknownStudent(t *testing.T) {
	svc, _ := newAcademicServiceForTest(t)

	_, err := svc.Transcript(context.Background(), "U001")
	assert.ErrorIs(t, err, appErrors.ErrNotFound)
}

func TestEnsureStudentHistoryIsIdempotent(t *testing.T) {
	svc, repos := newAcademicServiceForTest(t)
	ctx := context.Background()

	first, err := svc.EnsureStudentHistory(ctx, "U102", "Hawi Gemechu")
	require.NoError(t, err)
	assert.Empty(t, first.Subjects)

	second, err := svc.EnsureStudentHistory(ctx, "U102", "Someone Else")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Len(t, repos.records.List(ctx), 2)

	existing, err := svc.EnsureStudentHistory(ctx, "U101", "ignored")
	require.NoError(t, err)
	assert.Equal(t, "Abdi Tolesa", existing.StudentName)
	assert.Len(t, existing.Subjects, 3)
}

func TestGradebookSaveAndRead(t *testing.T) {
	svc, repos := newAcademicServiceForTest(t)
	ctx := context.Background()

	err := svc.SaveGradebook(ctx, dto.GradebookUpdate{
		Subject: "history",
		Scores: []dto.GradebookScore{
			{StudentID: "U102", Semester: "sem1", Score: 74},
			{StudentID: "U102", Semester: "sem2", Score: 140},
		},
	})
	require.NoError(t, err)

	rec, ok := repos.records.FindByStudent(ctx, "U102")
	require.True(t, ok)
	assert.Equal(t, "Hawi Gemechu", rec.StudentName)
	require.NotNil(t, rec.Subjects["HISTORY"].Sem2)
	assert.Equal(t, 100, *rec.Subjects["HISTORY"].Sem2)

	book, err := svc.Gradebook(ctx, models.Grade11, "History")
	require.NoError(t, err)
	require.Len(t, book.Entries, 1)
	assert.Equal(t, "U102", book.Entries[0].StudentID)
	require.NotNil(t, book.Entries[0].Average)
	assert.Equal(t, 87, *book.Entries[0].Average)
}

func TestGradebookRejectsUnknownStudentsBeforeWriting(t *testing.T) {
	svc, repos := newAcademicServiceForTest(t)
	ctx := context.Background()

	err := svc.SaveGradebook(ctx, dto.GradebookUpdate{
		Subject: "MATHEMATICS",
		Scores: []dto.GradebookScore{
			{StudentID: "U102", Semester: "sem1", Score: 60},
			{StudentID: "U002", Semester: "sem1", Score: 60},
		},
	})
	assert.ErrorIs(t, err, appErrors.ErrNotFound)

	_, ok := repos.records.FindByStudent(ctx, "U102")
	assert.False(t, ok)
}

func TestGradebookValidation(t *testing.T) {
	svc, _ := newAcademicServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Gradebook(ctx, "Grade 7", "MATHEMATICS")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	_, err = svc.Gradebook(ctx, models.Grade12, " ")
	assert.ErrorIs(t, err, appErrors.ErrValidation)

	err = svc.SaveGradebook(ctx, dto.GradebookUpdate{
		Subject: "MATHEMATICS",
		Scores:  []dto.GradebookScore{{StudentID: "U101", Semester: "sem3", Score: 50}},
	})
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}

func TestBuildTranscriptTreatsTVETAsGrade12(t *testing.T) {
	student := models.Student{Profile: models.Profile{ID: "U9", Name: "T"}, CurrentGrade: models.Level2}
	rec := models.NewAcademicRecord("U9", "T")
	rec.Subjects["ENGLISH"] = models.SemesterScores{Sem1: intp(40), Sem2: intp(44)}

	tr := BuildTranscript(student, rec)

	require.NotNil(t, tr.YearlyAverages[12])
	assert.Equal(t, 42, *tr.YearlyAverages[12])
	assert.Equal(t, "F", tr.LetterGrades[12])
	assert.Equal(t, "Repeat", tr.FinalStatus[12])
}
