package validators

import (
	"net/http"
	"testing"

	"brainagro/cmd/internal/contract"
	"brainagro/cmd/internal/utils/apierror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidate() *validator.Validate {
	v := validator.New()
	Register(v)
	return v
}

func fieldErrors(t *testing.T, err error) map[string][]string {
	t.Helper()

	resp := apierror.FromValidationError(err)
	structured, ok := resp.(*apierror.StructuredError)
	require.True(t, ok, "expected a structured error, got %T", resp)
	assert.Equal(t, http.StatusBadRequest, structured.Code())
	return structured.Errors
}

func TestTaxIDTag(t *testing.T) {
	v := newValidate()

	assert.NoError(t, v.Struct(contract.ProducerRequest{TaxID: "512.342.040-10", Name: "Maria"}))
	assert.NoError(t, v.Struct(contract.ProducerRequest{TaxID: "56.777.431/0001-13", Name: "Agro SA"}))

	errs := fieldErrors(t, v.Struct(contract.ProducerRequest{TaxID: "22222222222", Name: "Maria"}))
	assert.Equal(t, []string{"tax_id must be a valid CPF or CNPJ"}, errs["tax_id"])
}

func TestNotBlankTag(t *testing.T) {
	v := newValidate()

	errs := fieldErrors(t, v.Struct(contract.CropRequest{Name: "   "}))
	assert.Equal(t, []string{"This field cannot be blank"}, errs["name"])
}

func TestPartialUpdateValidatesSuppliedFields(t *testing.T) {
	v := newValidate()
	empty := ""
	negative := -1.0

	assert.NoError(t, v.Struct(contract.UpdateFarmRequest{}))

	errs := fieldErrors(t, v.Struct(contract.UpdateFarmRequest{Name: &empty, TotalArea: &negative}))
	assert.Contains(t, errs, "name")
	assert.Equal(t, []string{"Value must be greater than or equal to 0"}, errs["total_area"])
}

func TestFieldErrorsAreCollected(t *testing.T) {
	v := newValidate()

	errs := fieldErrors(t, v.Struct(contract.FarmRequest{}))
	for _, field := range []string{"name", "total_area", "cultivable_area", "vegetation_area", "producer_id", "city_id"} {
		assert.Equal(t, []string{"This field is required"}, errs[field], field)
	}
}

func TestNonValidationErrorIsInternal(t *testing.T) {
	resp := apierror.FromValidationError(assert.AnError)
	assert.Equal(t, http.StatusInternalServerError, resp.Code())
}
