package validation

import (
	"regexp"

	"news-backend/internal/api/models"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	gmailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@gmail\.com$`)
)

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("gmail", func(fl validator.FieldLevel) bool {
		return gmailPattern.MatchString(fl.Field().String())
	})
}

// FieldError is one entry of the errors list returned on a 400.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckRegister validates a registration payload and returns one message per
// failing field, in struct order. Nil means the payload is valid.
func CheckRegister(req *models.RegisterRequest) []FieldError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var out []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		switch fe.StructField() {
		case "Name":
			out = append(out, FieldError{Field: "name", Message: "Name is required"})
		case "Email":
			out = append(out, FieldError{Field: "email", Message: "Only Gmail addresses are allowed"})
		case "Password":
			out = append(out, FieldError{Field: "password", Message: "Password must be at least 5 characters long"})
		}
	}
	return out
}
