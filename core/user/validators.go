package user

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aasim911-prog/department/core"
)

var (
	teacherEmailTag  = "teacher_email"
	teacherEmailText = "email is required for teachers"

	studentIDTag  = "student_id"
	studentIDText = "student_id is required for students"
)

// InitValidators registers the user validators & their translations.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	validate.RegisterStructValidation(userStructValidation, NewUser{})
	core.RegisterCustomTranslation(validate, translator, teacherEmailTag, teacherEmailText)
	core.RegisterCustomTranslation(validate, translator, studentIDTag, studentIDText)
}

// userStructValidation checks that every role is given its identifier.
func userStructValidation(sl validator.StructLevel) {
	nu, ok := sl.Current().Interface().(NewUser)
	if !ok {
		return
	}
	switch nu.Role {
	case RoleTeacher:
		if nu.Email == "" {
			sl.ReportError(nu.Email, "email", "Email", teacherEmailTag, "")
		}
	case RoleStudent:
		if nu.StudentID == "" {
			sl.ReportError(nu.StudentID, "student_id", "StudentID", studentIDTag, "")
		}
	}
}
