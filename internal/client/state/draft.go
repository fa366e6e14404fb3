package state

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/dpetrovs/registro/internal/common"
)

var (
	ErrInvalidAge   = errors.New("age must be between 1 and 120")
	ErrInvalidEmail = errors.New("invalid email address")
)

// emailPattern is the minimal localpart@domain.tld shape; anything stricter
// is the server's business.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var validate = validator.New()

// ParsedDraft is a draft whose fields passed local validation: the age is a
// typed integer inside [1,120] and the email has the expected shape.
type ParsedDraft struct {
	Name  string `validate:"required"`
	Age   int    `validate:"gte=1,lte=120"`
	Email string `validate:"required"`
}

// Parse validates the raw form fields and produces typed values. It never
// touches the network; a submit with a bad draft stops right here.
//
// A present age of 0 is not "missing"; it fails the range check like any
// other out-of-range value.
func (d Draft) Parse() (*ParsedDraft, error) {
	name := strings.TrimSpace(d.Name)
	rawAge := strings.TrimSpace(d.Age)
	email := strings.TrimSpace(d.Email)

	if name == "" || rawAge == "" || email == "" {
		return nil, common.ErrValidation
	}

	age, err := strconv.Atoi(rawAge)
	if err != nil {
		return nil, ErrInvalidAge
	}

	parsed := &ParsedDraft{Name: name, Age: age, Email: email}

	if err := validate.Struct(parsed); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "Age":
				return nil, ErrInvalidAge
			default:
				return nil, common.ErrValidation
			}
		}
		return nil, common.ErrValidation
	}

	if !emailPattern.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	return parsed, nil
}
