package httpx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookshelf/internal/apperr"
)

func TestValidateStruct(t *testing.T) {
	type payload struct {
		Title         string   `validate:"required"`
		Authors       []string `validate:"required,min=1,dive,required"`
		PublishedDate string   `validate:"required,datetime=2006-01-02"`
	}

	t.Run("valid", func(t *testing.T) {
		err := ValidateStruct(payload{Title: "t", Authors: []string{"a"}, PublishedDate: "1999-01-01"})
		assert.NoError(t, err)
	})

	t.Run("field failures fold into one validation error", func(t *testing.T) {
		err := ValidateStruct(payload{PublishedDate: "1999"})
		assert.Error(t, err)

		var ae *apperr.Error
		assert.True(t, errors.As(err, &ae))
		assert.Equal(t, apperr.KindValidation, ae.Kind)
		assert.Contains(t, err.Error(), "title is required")
		assert.Contains(t, err.Error(), "authors is required")
		assert.Contains(t, err.Error(), "2006-01-02")
	})

	t.Run("empty author entry rejected", func(t *testing.T) {
		err := ValidateStruct(payload{Title: "t", Authors: []string{""}, PublishedDate: "1999-01-01"})
		assert.Error(t, err)
	})
}
