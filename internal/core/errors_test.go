package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "jurisdiction", Message: "is required"}
	assert.Equal(t, "jurisdiction: is required", err.Error())

	fieldless := &ValidationError{Message: "scenario contributes no requirements"}
	assert.Equal(t, "scenario contributes no requirements", fieldless.Error())
}

func TestValidationErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &ValidationError{Message: "wrapper", Err: inner}
	assert.ErrorIs(t, err, inner)
}
