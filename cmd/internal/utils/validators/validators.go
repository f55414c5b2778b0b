package validators

import (
	"reflect"
	"strings"

	"brainagro/cmd/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

// Register installs the custom tags used by the request contracts.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("taxid", TaxID)
	_ = validate.RegisterValidation("notblank", NotBlank)

	// Report json names instead of Go field names, so errors match the payload
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

// TaxID accepts CPF or CNPJ values, formatted or not.
func TaxID(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsTaxIDValid(val)
}

// NotBlank rejects strings made only of whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		log.Warnf("validator 'notblank' applied to non-string type: %s", field.Kind().String())
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}
