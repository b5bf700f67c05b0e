// Package seed holds the bundled demo dataset written on first run and on reset.
package seed

import "github.com/noah-isme/iftu-lms-api/internal/models"

// DemoStudentID is the student account the demo login resolves to.
const DemoStudentID = "U101"

// Document builds a fresh copy of the seed dataset. Callers may mutate the
// result freely.
func Document() *models.Document {
	branding := models.DefaultBranding()
	return &models.Document{
		SchemaVersion: models.SchemaVersion,
		Users: models.Users{
			models.Admin{Profile: models.Profile{
				ID:         "U001",
				Name:       "Dr. Gemechu Alemu",
				Email:      "admin@iftu.edu.et",
				Phone:      "+251911000001",
				Status:     models.StatusActive,
				Department: "Administration",
				Gender:     "Male",
				JoinDate:   "2015-09-01",
			}},
			models.Teacher{
				Profile: models.Profile{
					ID:         "U002",
					Name:       "Tigist Haile",
					Email:      "tigist.haile@iftu.edu.et",
					Phone:      "+251911000002",
					Status:     models.StatusActive,
					Department: "Natural Science",
					Gender:     "Female",
					JoinDate:   "2018-09-10",
				},
				Qualification:    "MSc",
				EmploymentType:   "Full-time",
				CampusID:         "S001",
				AssignedSubjects: []string{"MATHEMATICS", "PHYSICS"},
				AssignedGrades:   []models.GradeLevel{models.Grade11, models.Grade12},
			},
			models.Teacher{
				Profile: models.Profile{
					ID:         "U003",
					Name:       "Bekele Duguma",
					Email:      "bekele.duguma@iftu.edu.et",
					Status:     models.StatusActive,
					Department: "Languages",
					Gender:     "Male",
					JoinDate:   "2020-02-03",
				},
				Qualification:    "BEd",
				EmploymentType:   "Full-time",
				CampusID:         "S001",
				AssignedSubjects: []string{"ENGLISH", "AFAAN OROMOO"},
				AssignedGrades:   []models.GradeLevel{models.Grade9, models.Grade10},
			},
			models.Student{
				Profile: models.Profile{
					ID:         DemoStudentID,
					Name:       "Abdi Tolesa",
					Email:      "abdi.tolesa@student.iftu.edu.et",
					Status:     models.StatusActive,
					Department: "Natural Science",
					NationalID: "ETH-0012-4587",
					Gender:     "Male",
					Birthday:   "2007-03-14",
					MotherName: "Chaltu Bayisa",
					Address:    &models.Address{Country: "Ethiopia", State: "Oromia", Zone: "East Shewa", Woreda: "Adama"},
					JoinDate:   "2021-09-06",
				},
				CurrentGrade: models.Grade12,
			},
			models.Student{
				Profile: models.Profile{
					ID:         "U102",
					Name:       "Hawi Gemechu",
					Email:      "hawi.gemechu@student.iftu.edu.et",
					Status:     models.StatusActive,
					Department: "Social Science",
					NationalID: "ETH-0012-7731",
					Gender:     "Female",
					JoinDate:   "2022-09-05",
				},
				CurrentGrade: models.Grade11,
			},
			models.Student{
				Profile: models.Profile{
					ID:         "U103",
					Name:       "Lensa Bekele",
					Email:      "lensa.bekele@student.iftu.edu.et",
					Status:     models.StatusActive,
					Department: "Vocational - Electrical Installation",
					Gender:     "Female",
					JoinDate:   "2023-09-04",
				},
				CurrentGrade: models.Level2,
			},
		},
		Courses: []models.Course{
			{
				ID:          "C001",
				Title:       "Mathematics Grade 12",
				Instructor:  "Tigist Haile",
				Category:    "Natural Science",
				Duration:    models.Grade12,
				Description: "Calculus, statistics and preparation for the national examination.",
				Objectives:  []string{"Apply differentiation", "Interpret statistical data"},
				Curriculum: []models.CourseModule{
					{ID: "M1", Title: "Limits and Continuity", Lessons: []string{"Limits of sequences", "Continuity of functions"}},
					{ID: "M2", Title: "Differentiation", Lessons: []string{"Derivative rules", "Applications of derivatives"}},
				},
				CampusID: "S001",
			},
			{
				ID:          "C002",
				Title:       "English Grade 11",
				Instructor:  "Bekele Duguma",
				Category:    "Languages",
				Duration:    models.Grade11,
				Description: "Reading, writing and oral communication.",
				Curriculum: []models.CourseModule{
					{ID: "M1", Title: "Reading Comprehension", Lessons: []string{"Skimming and scanning", "Inference"}},
				},
				CampusID: "S001",
			},
		},
		Schools: []models.School{
			{
				ID:          "S001",
				Name:        "IFTU Adama Central Campus",
				Location:    "Adama, East Shewa",
				Type:        models.SchoolCentral,
				Students:    1200,
				Programs:    []string{"Natural Science", "Social Science"},
				Phone:       "+251221110000",
				Principal:   "Ato Dereje Fikru",
				Established: "2005",
			},
			{
				ID:          "S002",
				Name:        "IFTU Wonji TVET Hub",
				Location:    "Wonji, East Shewa",
				Type:        models.SchoolVocational,
				Students:    450,
				Programs:    []string{"Electrical Installation", "Automotive"},
				Established: "2012",
			},
		},
		Exams: []models.Exam{
			{
				ID:             "EX001",
				Title:          "Mathematics Mid-Semester Exam",
				CourseTitle:    "Mathematics Grade 12",
				CourseID:       "C001",
				TeacherID:      "U002",
				Date:           "2025-01-20",
				Duration:       "4 mins",
				TotalQuestions: 2,
				PassingScore:   intPtr(models.DefaultPassingScore),
				Status:         models.ExamUpcoming,
				Questions: []models.Question{
					{Text: "What is the derivative of x^2?", Options: []string{"x", "2x", "x^2", "2"}, CorrectAnswer: 1},
					{Text: "What is the limit of 1/n as n grows?", Options: []string{"0", "1", "infinity"}, CorrectAnswer: 0},
				},
			},
		},
		Materials: []models.Material{
			{
				ID:          "m001",
				Title:       "Differentiation Worked Examples",
				Type:        models.MaterialDocument,
				CourseTitle: "Mathematics Grade 12",
				Author:      "Tigist Haile",
				UploadDate:  "2024-11-02",
				Size:        "1.2 MB",
			},
		},
		News: []models.NewsPost{
			{
				ID:                "np001",
				Title:             "Science Fair Registration Open",
				Content:           "Students from all campuses may register projects for the annual science fair.",
				Date:              "2024-12-01",
				Author:            "Dr. Gemechu Alemu",
				Category:          models.NewsEvent,
				HasRegistration:   true,
				RegistrationCount: intPtr(0),
			},
		},
		Announcements: []models.Announcement{
			{
				ID:       "a001",
				Title:    "Semester Two Begins",
				Content:  "Classes for the second semester begin on February 3.",
				Date:     "2025-01-25",
				Category: "Academic",
				Priority: models.PriorityHigh,
			},
		},
		Payments: []models.PaymentTransaction{
			{
				ID:          models.TuitionTransactionPrefix + DemoStudentID,
				Date:        "2024-09-02",
				Description: "Annual Tuition Fee",
				Amount:      12000,
				Method:      models.MethodSystem,
				Type:        models.TransactionDebit,
				Status:      models.PaymentPending,
				StudentID:   DemoStudentID,
			},
		},
		AcademicRecords: []models.StudentAcademicRecord{
			{
				StudentID:   DemoStudentID,
				StudentName: "Abdi Tolesa",
				Subjects: models.SubjectScores{
					"MATHEMATICS": scores(88, 92),
					"PHYSICS":     scores(79, 85),
					"ENGLISH":     scores(90, 86),
				},
				PreviousGrades: map[int]models.SubjectScores{
					11: {
						"MATHEMATICS": scores(80, 84),
						"ENGLISH":     scores(75, 77),
					},
				},
			},
		},
		Branding: &branding,
	}
}

func intPtr(v int) *int { return &v }

func scores(sem1, sem2 int) models.SemesterScores {
	return models.SemesterScores{Sem1: intPtr(sem1), Sem2: intPtr(sem2)}
}
