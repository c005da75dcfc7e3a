package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/collabhub/partner-directory/internal/core/domain"
)

// validate is package-level because validator.Validate caches struct
// metadata and is safe for concurrent use.
var validate = validator.New()

// businessRules mirrors domain.Business with the profile-form constraints.
type businessRules struct {
	Name        string   `validate:"required"`
	Description string   `validate:"required,min=50"`
	Category    string   `validate:"required"`
	Location    string   `validate:"required"`
	Platforms   []string `validate:"required,min=1"`
	Rating      float64  `validate:"gte=0,lte=5"`
}

// Validate checks a business record against the profile rules and returns a
// human-readable message per violation. A valid record yields an empty slice.
func Validate(b domain.Business) []string {
	err := validate.Struct(businessRules{
		Name:        b.Name,
		Description: b.Description,
		Category:    b.Category,
		Location:    b.Location,
		Platforms:   b.Platforms,
		Rating:      b.Rating,
	})
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, ruleMessage(fe))
	}
	return msgs
}

func ruleMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch {
	case fe.Tag() == "required" && fe.Kind().String() == "slice":
		return field + " must not be empty"
	case fe.Tag() == "required":
		return field + " is required"
	case fe.Tag() == "min" && field == "description":
		return fmt.Sprintf("description must be at least %s characters", fe.Param())
	case fe.Tag() == "min":
		return field + " must not be empty"
	case fe.Tag() == "gte", fe.Tag() == "lte":
		return "rating must be between 0 and 5"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
