package sizing

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report yaml/json names rather than Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// check validates s and folds validator failures into one error wrapping
// sentinel.
func check(s any, sentinel error) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", sentinel, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", sentinel, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Input.")
	field = strings.TrimPrefix(field, "Profile.")
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be >= %s (got %v)", field, fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("%s must be <= %s (got %v)", field, fe.Param(), fe.Value())
	case "gt":
		return fmt.Sprintf("%s must be > %s (got %v)", field, fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("%s must be >= %s (got %v)", field, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got %v)", field, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("%s failed %q (got %v)", field, fe.Tag(), fe.Value())
	}
}
