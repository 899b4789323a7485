package config

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "list_name":
		return "must start with a lowercase letter and consist only of [a-z0-9_-]"
	case "exec_template":
		return fmt.Sprintf("must be a valid template using only {{%s}}, {{%s}}, {{%s}} or {{%s}}",
			EXEC_TMPL_FILE, EXEC_TMPL_SOURCE, EXEC_TMPL_COUNT, EXEC_TMPL_LIST_NAME)
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // Name of the list (e.g., "office")
	FieldPath string // Dot-notation field path (e.g., "list.0.exec")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("list_name", validateListName); err != nil {
		panic(err)
	}
	if err := validate.RegisterValidation("exec_template", validateExecTemplate); err != nil {
		panic(err)
	}

	// Report fields by their TOML names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateListName(fl validator.FieldLevel) bool {
	return listNameRegexp.MatchString(fl.Field().String())
}

func validateExecTemplate(fl validator.FieldLevel) bool {
	return ValidateExecTemplate(fl.Field().String()) == nil
}

// ValidateExecTemplate checks that template is well-formed and only uses known tags.
func ValidateExecTemplate(template string) error {
	t, err := fasttemplate.NewTemplate(template, "{{", "}}")
	if err != nil {
		return err
	}

	_, err = t.ExecuteFuncStringWithErr(func(w io.Writer, tag string) (int, error) {
		switch strings.TrimSpace(tag) {
		case EXEC_TMPL_FILE, EXEC_TMPL_SOURCE, EXEC_TMPL_COUNT, EXEC_TMPL_LIST_NAME:
			return 0, nil
		default:
			return 0, fmt.Errorf("unknown template variable: %s", tag)
		}
	})
	return err
}
