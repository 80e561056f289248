package user

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/aasim911-prog/department/core"
)

// Roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"
)

var (
	AllRoles = []string{RoleTeacher, RoleStudent}

	Roles = []Role{
		{Name: "Teacher", Value: RoleTeacher},
		{Name: "Student", Value: RoleStudent},
	}

	// defaultPasswords are used when a user registers without a password.
	defaultPasswords = map[string]string{
		RoleTeacher: "teacher",
		RoleStudent: "student",
	}
)

type Role struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	StudentID    string    `json:"student_id,omitempty"`
	Role         string    `json:"role"`
	Department   string    `json:"department"`
	Semester     *int      `json:"semester,omitempty"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"` // UTC
}

func (u *User) SetPassword(pwd string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pwd), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	return nil
}

func (u *User) CheckPassword(pwd string) error {
	return bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(pwd))
}

func (u *User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u *User) IsStudent() bool {
	return u.Role == RoleStudent
}

// NewUser contains information needed to register a new User.
// Teachers are identified by Email, students by StudentID.
type NewUser struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"omitempty,email"`
	StudentID  string `json:"student_id" validate:"omitempty,max=32,alphanum_"`
	Role       string `json:"role" validate:"required,oneof=teacher student"`
	Department string `json:"department" validate:"required"`
	Semester   *int   `json:"semester" validate:"omitempty,semester"`
	Password   string `json:"password"`
}

func (nu *NewUser) Validate(ctx context.Context, validate *validator.Validate, svc *Service) error {
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email, true /* lower */)
	nu.StudentID = core.CleanString(nu.StudentID)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	nu.Department = core.CleanString(nu.Department)

	if err := validate.Struct(nu); err != nil {
		return err
	}
	return svc.checkUniqueness(ctx, nu.Email, nu.StudentID)
}

// password returns the registration password, or the role's default one.
func (nu *NewUser) password() string {
	if nu.Password != "" {
		return nu.Password
	}
	return defaultPasswords[nu.Role]
}

// GetFilter selects a single User; the first non-empty field wins.
type GetFilter struct {
	ID        string
	Email     string
	StudentID string
}

type QueryFilter struct {
	Role       string `query:"-"`
	Department string `query:"department"`
	Semester   int    `query:"semester"`
}

func (qf *QueryFilter) IsEmpty() bool {
	return qf.Role == "" && qf.Department == "" && qf.Semester == 0
}

func (qf *QueryFilter) Clean() {
	qf.Department = core.CleanString(qf.Department)
}

// Match reports whether usr satisfies every set field of the filter.
func (qf *QueryFilter) Match(usr User) bool {
	if qf == nil {
		return true
	}
	if qf.Role != "" && usr.Role != qf.Role {
		return false
	}
	if qf.Department != "" && usr.Department != qf.Department {
		return false
	}
	if qf.Semester != 0 && (usr.Semester == nil || *usr.Semester != qf.Semester) {
		return false
	}
	return true
}

// IsEmailIdentifier reports whether a login identifier is an email (teachers) rather than a student ID.
func IsEmailIdentifier(identifier string) bool {
	return strings.Contains(identifier, "@")
}
