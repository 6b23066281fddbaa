package wellness

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"nutriguide/internal/models"

	"github.com/go-playground/validator/v10"
)

// ProfileInput is one form submission before it is stored.
type ProfileInput struct {
	Name     string  `json:"name" form:"name" validate:"required,max=100" example:"Jane"`
	Age      int     `json:"age" form:"age" validate:"gte=1,lte=120" example:"30"`
	Gender   string  `json:"gender" form:"gender" validate:"required,oneof=Male Female" example:"Female"`
	HeightCM float64 `json:"height_cm" form:"height_cm" validate:"gte=10,lte=250" example:"175"`
	WeightKG float64 `json:"weight_kg" form:"weight_kg" validate:"gte=10,lte=300" example:"70"`
}

// ValidationError lists every rejected field with a user-facing message.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid profile: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return jsonName(f.Tag.Get("json"))
	})
	return v
}

func jsonName(tag string) string {
	name, _, _ := strings.Cut(tag, ",")
	return name
}

var fieldMessages = map[string]string{
	"name":      "Name is required",
	"age":       "Age must be between 1 and 120",
	"gender":    "Gender must be Male or Female",
	"height_cm": "Height must be between 10 and 250 cm",
	"weight_kg": "Weight must be between 10 and 300 kg",
}

// Normalize trims the name, canonicalizes gender and checks every range.
// It returns the profile ready to store.
func (in ProfileInput) Normalize() (models.Profile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if g, err := models.ParseGender(in.Gender); err == nil {
		in.Gender = string(g)
	}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.Profile{}, fmt.Errorf("wellness: validate: %w", err)
		}
		ve := &ValidationError{Fields: make(map[string]string, len(verrs))}
		for _, fe := range verrs {
			msg, ok := fieldMessages[fe.Field()]
			if !ok {
				msg = fmt.Sprintf("failed %s check", fe.Tag())
			}
			if fe.Field() == "name" && fe.Tag() == "max" {
				msg = "Name must be at most 100 characters"
			}
			ve.Fields[fe.Field()] = msg
		}
		return models.Profile{}, ve
	}

	return models.Profile{
		Name:     in.Name,
		Age:      in.Age,
		Gender:   models.Gender(in.Gender),
		HeightCM: in.HeightCM,
		WeightKG: in.WeightKG,
	}, nil
}
