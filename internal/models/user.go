package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UserRole identifies which variant a user record holds.
type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleTeacher UserRole = "Teacher"
	RoleStudent UserRole = "Student"
)

// Valid reports whether the role is one of the known variants.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleTeacher, RoleStudent:
		return true
	}
	return false
}

// UserStatus marks whether an account is in use.
type UserStatus string

const (
	StatusActive   UserStatus = "Active"
	StatusInactive UserStatus = "Inactive"
)

// GradeLevel is the closed set of academic grades and TVET levels.
type GradeLevel string

const (
	Grade9  GradeLevel = "Grade 9"
	Grade10 GradeLevel = "Grade 10"
	Grade11 GradeLevel = "Grade 11"
	Grade12 GradeLevel = "Grade 12"
	Level1  GradeLevel = "Level 1"
	Level2  GradeLevel = "Level 2"
	Level3  GradeLevel = "Level 3"
	Level4  GradeLevel = "Level 4"
)

// AcademicGrades lists the high-school grades in order.
var AcademicGrades = []GradeLevel{Grade9, Grade10, Grade11, Grade12}

// TVETLevels lists the vocational levels in order.
var TVETLevels = []GradeLevel{Level1, Level2, Level3, Level4}

// Valid reports whether g belongs to the enumeration.
func (g GradeLevel) Valid() bool {
	for _, level := range AcademicGrades {
		if g == level {
			return true
		}
	}
	return g.IsTVET()
}

// IsTVET reports whether g is a vocational level.
func (g GradeLevel) IsTVET() bool {
	for _, level := range TVETLevels {
		if g == level {
			return true
		}
	}
	return false
}

// Number returns 9..12 for academic grades.
func (g GradeLevel) Number() (int, bool) {
	if g.IsTVET() || !g.Valid() {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(string(g), "Grade "))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Address is the optional postal location of a person.
type Address struct {
	Country string `json:"country,omitempty"`
	State   string `json:"state,omitempty"`
	Zone    string `json:"zone,omitempty"`
	Woreda  string `json:"woreda,omitempty"`
}

// Profile carries the identity and contact fields shared by every role.
type Profile struct {
	ID         string     `json:"id"`
	Name       string     `json:"name" validate:"required"`
	Email      string     `json:"email" validate:"omitempty,email"`
	Phone      string     `json:"phone,omitempty"`
	Status     UserStatus `json:"status" validate:"omitempty,oneof=Active Inactive"`
	Department string     `json:"department"`
	NationalID string     `json:"nationalId,omitempty"`
	Gender     string     `json:"gender,omitempty"`
	Birthday   string     `json:"birthday,omitempty"`
	MotherName string     `json:"motherName,omitempty"`
	Address    *Address   `json:"address,omitempty"`
	JoinDate   string     `json:"joinDate,omitempty"`
	Avatar     string     `json:"avatar,omitempty"`
}

// User is a sealed union over Student, Teacher and Admin.
type User interface {
	Base() Profile
	Role() UserRole
	sealedUser()
}

// Student is a learner enrolled in a grade or TVET level.
type Student struct {
	Profile
	CurrentGrade  GradeLevel `json:"currentGrade"`
	PromotedGrade GradeLevel `json:"promotedGrade,omitempty"`
}

// Teacher is a staff member assigned to subjects and grades at a campus.
type Teacher struct {
	Profile
	Qualification    string       `json:"qualification,omitempty"`
	EmploymentType   string       `json:"employmentType,omitempty"`
	CampusID         string       `json:"campusId,omitempty"`
	AssignedSubjects []string     `json:"assignedSubjects,omitempty"`
	AssignedGrades   []GradeLevel `json:"assignedGrades,omitempty"`
}

// Admin is an institution administrator.
type Admin struct {
	Profile
}

func (s Student) Base() Profile  { return s.Profile }
func (s Student) Role() UserRole { return RoleStudent }
func (Student) sealedUser()      {}

func (t Teacher) Base() Profile  { return t.Profile }
func (t Teacher) Role() UserRole { return RoleTeacher }
func (Teacher) sealedUser()      {}

func (a Admin) Base() Profile  { return a.Profile }
func (a Admin) Role() UserRole { return RoleAdmin }
func (Admin) sealedUser()      {}

// WithID returns a copy of u carrying id.
func WithID(u User, id string) User {
	switch v := u.(type) {
	case Student:
		v.ID = id
		return v
	case Teacher:
		v.ID = id
		return v
	case Admin:
		v.ID = id
		return v
	}
	return u
}

// UserRecord is the flat persisted shape of a user, discriminated by Role.
type UserRecord struct {
	Profile
	Role             UserRole     `json:"role" validate:"required,oneof=Admin Teacher Student"`
	CurrentGrade     GradeLevel   `json:"currentGrade,omitempty"`
	PromotedGrade    GradeLevel   `json:"promotedGrade,omitempty"`
	Qualification    string       `json:"qualification,omitempty"`
	EmploymentType   string       `json:"employmentType,omitempty"`
	CampusID         string       `json:"campusId,omitempty"`
	AssignedSubjects []string     `json:"assignedSubjects,omitempty"`
	AssignedGrades   []GradeLevel `json:"assignedGrades,omitempty"`
}

// ToUser converts the flat record into its role variant, dropping fields that
// do not belong to that role.
func (r UserRecord) ToUser() (User, error) {
	switch r.Role {
	case RoleStudent:
		return Student{Profile: r.Profile, CurrentGrade: r.CurrentGrade, PromotedGrade: r.PromotedGrade}, nil
	case RoleTeacher:
		return Teacher{
			Profile:          r.Profile,
			Qualification:    r.Qualification,
			EmploymentType:   r.EmploymentType,
			CampusID:         r.CampusID,
			AssignedSubjects: r.AssignedSubjects,
			AssignedGrades:   r.AssignedGrades,
		}, nil
	case RoleAdmin:
		return Admin{Profile: r.Profile}, nil
	}
	return nil, fmt.Errorf("unknown user role %q", r.Role)
}

// RecordOf flattens a user variant.
func RecordOf(u User) UserRecord {
	rec := UserRecord{Profile: u.Base(), Role: u.Role()}
	switch v := u.(type) {
	case Student:
		rec.CurrentGrade = v.CurrentGrade
		rec.PromotedGrade = v.PromotedGrade
	case Teacher:
		rec.Qualification = v.Qualification
		rec.EmploymentType = v.EmploymentType
		rec.CampusID = v.CampusID
		rec.AssignedSubjects = v.AssignedSubjects
		rec.AssignedGrades = v.AssignedGrades
	}
	return rec
}

// Users is the persisted users collection.
type Users []User

// MarshalJSON encodes users as flat role-tagged records.
func (u Users) MarshalJSON() ([]byte, error) {
	records := make([]UserRecord, len(u))
	for i, user := range u {
		records[i] = RecordOf(user)
	}
	return json.Marshal(records)
}

// UnmarshalJSON decodes role-tagged records into their variants.
func (u *Users) UnmarshalJSON(data []byte) error {
	var records []UserRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return err
	}
	out := make(Users, 0, len(records))
	for _, rec := range records {
		user, err := rec.ToUser()
		if err != nil {
			return fmt.Errorf("user %s: %w", rec.ID, err)
		}
		out = append(out, user)
	}
	*u = out
	return nil
}
