package utils

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/appdotbuilder/nutri-scan/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsValidationError_BindingFailures(t *testing.T) {
	// mirror gin, which wires validator to the binding tag
	v := validator.New()
	v.SetTagName("binding")

	t.Run("missing required field", func(t *testing.T) {
		err := v.Struct(&models.BarcodeCreate{BarcodeType: "EAN13", FoodItemID: 1})
		require.Error(t, err)

		translated := AsValidationError(err)
		var verr *models.ValidationError
		require.ErrorAs(t, translated, &verr)
		assert.Equal(t, "code", verr.Field)
		assert.Equal(t, "required", verr.Reason)
	})

	t.Run("max length exceeded", func(t *testing.T) {
		err := v.Struct(&models.FoodItemCreate{Name: strings.Repeat("x", 256)})
		require.Error(t, err)

		translated := AsValidationError(err)
		var verr *models.ValidationError
		require.ErrorAs(t, translated, &verr)
		assert.Equal(t, "name", verr.Field)
		assert.Equal(t, "exceeds maximum length", verr.Reason)
	})

	t.Run("compound field names become snake_case", func(t *testing.T) {
		err := v.Struct(&models.BarcodeCreate{Code: "123", FoodItemID: 1})
		require.Error(t, err)

		translated := AsValidationError(err)
		var verr *models.ValidationError
		require.ErrorAs(t, translated, &verr)
		assert.Equal(t, "barcode_type", verr.Field)
	})
}

func TestAsValidationError_JSONErrors(t *testing.T) {
	t.Run("wrong type", func(t *testing.T) {
		var in models.BarcodeCreate
		err := json.Unmarshal([]byte(`{"code": 12345}`), &in)
		require.Error(t, err)

		translated := AsValidationError(err)
		var verr *models.ValidationError
		require.ErrorAs(t, translated, &verr)
		assert.Equal(t, "code", verr.Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		var in models.BarcodeCreate
		err := json.Unmarshal([]byte(`{"code":`), &in)
		require.Error(t, err)

		translated := AsValidationError(err)
		var verr *models.ValidationError
		require.ErrorAs(t, translated, &verr)
		assert.Equal(t, "body", verr.Field)
	})
}

func TestAsValidationError_PassThrough(t *testing.T) {
	assert.Nil(t, AsValidationError(nil))

	sentinel := errors.New("storage exploded")
	assert.Equal(t, sentinel, AsValidationError(sentinel))
}
