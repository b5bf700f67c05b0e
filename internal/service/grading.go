package service

import (
	"math"
	"strings"

	"github.com/noah-isme/iftu-lms-api/internal/models"
)

// Stream is the senior-secondary track a student follows from grade 11.
type Stream string

const (
	StreamNatural Stream = "Natural"
	StreamSocial  Stream = "Social"
)

// TranscriptSubjects is the row order of the transcript grid.
var TranscriptSubjects = []string{
	"AFAAN OROMOO", "AMHARIC", "ENGLISH", "MATHEMATICS",
	"PHYSICS", "CHEMISTRY", "BIOLOGY",
	"GEOGRAPHY", "HISTORY",
	"CIVICS", "IT", "HPE",
	"ECONOMICS", "GENERAL BUSINESS", "TECHNICAL DRAWING",
}

// TranscriptLevels are the grade numbers covered by a transcript.
var TranscriptLevels = []int{9, 10, 11, 12}

var (
	coreSubjects    = subjectSet("AFAAN OROMOO", "AMHARIC", "ENGLISH", "MATHEMATICS", "CIVICS", "IT", "HPE")
	naturalSubjects = subjectSet("PHYSICS", "CHEMISTRY", "BIOLOGY", "TECHNICAL DRAWING")
	socialSubjects  = subjectSet("GEOGRAPHY", "HISTORY", "ECONOMICS", "GENERAL BUSINESS")
	// Not offered before grade 11.
	seniorOnlySubjects = subjectSet("ECONOMICS", "GENERAL BUSINESS", "TECHNICAL DRAWING")
)

func subjectSet(names ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}

// StreamForDepartment maps a department to its stream. Anything mentioning
// "social" is Social, everything else Natural.
func StreamForDepartment(department string) Stream {
	if strings.Contains(strings.ToLower(department), "social") {
		return StreamSocial
	}
	return StreamNatural
}

// IsSubjectTaken reports whether a student in stream studies subject at level.
func IsSubjectTaken(stream Stream, subject string, level int) bool {
	subject = normalizeSubject(subject)
	if level <= 10 {
		_, senior := seniorOnlySubjects[subject]
		return !senior
	}
	if _, ok := coreSubjects[subject]; ok {
		return true
	}
	switch stream {
	case StreamSocial:
		_, ok := socialSubjects[subject]
		return ok
	default:
		_, ok := naturalSubjects[subject]
		return ok
	}
}

// SemesterAverage is round((sem1+sem2)/2), or nil when either score is missing.
func SemesterAverage(sem1, sem2 *int) *int {
	if sem1 == nil || sem2 == nil {
		return nil
	}
	avg := int(math.Round(float64(*sem1+*sem2) / 2))
	return &avg
}

// YearlyAverage averages the subject averages of the transcript subjects taken
// at level. Subjects without both semester scores are skipped; nil means
// nothing counted.
func YearlyAverage(stream Stream, level int, scores models.SubjectScores) *int {
	total, count := 0, 0
	for _, subject := range TranscriptSubjects {
		if !IsSubjectTaken(stream, subject, level) {
			continue
		}
		s, ok := scores[subject]
		if !ok {
			continue
		}
		if avg := SemesterAverage(s.Sem1, s.Sem2); avg != nil {
			total += *avg
			count++
		}
	}
	if count == 0 {
		return nil
	}
	avg := int(math.Round(float64(total) / float64(count)))
	return &avg
}

// LetterGrade maps a percentage to the grading protocol band.
func LetterGrade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 50:
		return "D"
	}
	return "F"
}

// PassStatus labels a score against passingScore. A threshold of 0 passes everything.
func PassStatus(score, passingScore int) string {
	if score >= passingScore {
		return "Pass"
	}
	return "Fail"
}

func normalizeSubject(subject string) string {
	return strings.ToUpper(strings.TrimSpace(subject))
}
