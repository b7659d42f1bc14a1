package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
)

// TagGlob validates a string as a '/'-separated glob pattern.
const TagGlob = "glob"

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// New creates a validator with the custom tags registered.
// Field errors are named after the mapstructure key so messages match the config file.
func New() *Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(mapstructureName)
	// registration only fails for empty tags or nil funcs
	_ = validate.RegisterValidation(TagGlob, isGlob)
	return validate
}

func mapstructureName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("mapstructure"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func isGlob(fl validator.FieldLevel) bool {
	_, err := glob.Compile(fl.Field().String(), '/')
	return err == nil
}
