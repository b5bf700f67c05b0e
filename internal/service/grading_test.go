package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

func TestSemesterAverage(t *testing.T) {
	assert.Nil(t, SemesterAverage(nil, intp(80)))
	assert.Nil(t, SemesterAverage(intp(80), nil))

	avg := SemesterAverage(intp(90), intp(81))
	require.NotNil(t, avg)
	assert.Equal(t, 86, *avg)

	avg = SemesterAverage(intp(0), intp(0))
	require.NotNil(t, avg)
	assert.Equal(t, 0, *avg)
}

func TestStreamForDepartment(t *testing.T) {
	assert.Equal(t, StreamSocial, StreamForDepartment("Social Science"))
	assert.Equal(t, StreamSocial, StreamForDepartment("SOCIAL STUDIES"))
	assert.Equal(t, StreamNatural, StreamForDepartment("Natural Science"))
	assert.Equal(t, StreamNatural, StreamForDepartment(""))
}

func TestIsSubjectTaken(t *testing.T) {
	cases := []struct {
		stream  Stream
		subject string
		level   int
		want    bool
	}{
		{StreamNatural, "PHYSICS", 9, true},
		{StreamSocial, "HISTORY", 10, true},
		{StreamNatural, "ECONOMICS", 10, false},
		{StreamSocial, "TECHNICAL DRAWING", 9, false},
		{StreamNatural, "GENERAL BUSINESS", 10, false},
		{StreamNatural, "ENGLISH", 11, true},
		{StreamNatural, "PHYSICS", 12, true},
		{StreamNatural, "HISTORY", 11, false},
		{StreamSocial, "ECONOMICS", 12, true},
		{StreamSocial, "BIOLOGY", 11, false},
		{StreamSocial, "hpe", 12, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsSubjectTaken(tc.stream, tc.subject, tc.level), "%s %s grade %d", tc.stream, tc.subject, tc.level)
	}
}

func TestYearlyAverageExcludesUntakenSubjects(t *testing.T) {
	scores := models.SubjectScores{
		"PHYSICS": {Sem1: intp(90), Sem2: intp(80)},
		"ENGLISH": {Sem1: intp(70), Sem2: intp(70)},
		"HISTORY": {Sem1: intp(10), Sem2: intp(10)},
	}

	avg := YearlyAverage(StreamNatural, 11, scores)
	require.NotNil(t, avg)
	assert.Equal(t, 78, *avg)
}

func TestYearlyAverageSkipsIncompleteSubjects(t *testing.T) {
	scores := models.SubjectScores{
		"MATHEMATICS": {Sem1: intp(60)},
		"ENGLISH":     {Sem1: intp(80), Sem2: intp(90)},
	}

	avg := YearlyAverage(StreamNatural, 9, scores)
	require.NotNil(t, avg)
	assert.Equal(t, 85, *avg)

	assert.Nil(t, YearlyAverage(StreamNatural, 10, models.SubjectScores{"MATHEMATICS": {Sem1: intp(60)}}))
	assert.Nil(t, YearlyAverage(StreamSocial, 12, nil))
}

func TestLetterGradeBands(t *testing.T) {
	assert.Equal(t, "A+", LetterGrade(90))
	assert.Equal(t, "B", LetterGrade(89))
	assert.Equal(t, "B", LetterGrade(80))
	assert.Equal(t, "C", LetterGrade(70))
	assert.Equal(t, "D", LetterGrade(50))
	assert.Equal(t, "F", LetterGrade(49))
}

func TestPassStatus(t *testing.T) {
	assert.Equal(t, "Pass", PassStatus(50, models.DefaultPassingScore))
	assert.Equal(t, "Fail", PassStatus(49, models.DefaultPassingScore))
	assert.Equal(t, "Pass", PassStatus(0, 0))
	assert.Equal(t, "Fail", PassStatus(69, 70))
	assert.Equal(t, "Pass", PassStatus(70, 70))
}
