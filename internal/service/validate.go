package service

import (
	"errors"
	"regexp"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// immatPattern matches the SIV plate format, e.g. AB-123-CD.
var immatPattern = regexp.MustCompile(`^[A-Z]{2}-[0-9]{3}-[A-Z]{2}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("immat", func(fl validator.FieldLevel) bool {
		return immatPattern.MatchString(fl.Field().String())
	})
	return v
}

// validateInput runs struct validation and converts failures into the
// field-keyed error map the forms display inline.
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		fields[fieldKey(fe.Field())] = fieldMessage(fe)
	}
	return &ValidationError{Fields: fields}
}

func fieldKey(name string) string {
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "champ obligatoire"
	case "email":
		return "adresse e-mail invalide"
	case "gt":
		return "doit être strictement positif"
	case "gte":
		return "ne doit pas être négatif"
	case "min":
		return "au moins un élément est requis"
	case "oneof":
		return "valeur non autorisée"
	case "immat":
		return "immatriculation attendue au format AA-123-AA"
	default:
		return "valeur invalide"
	}
}
