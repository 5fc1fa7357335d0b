package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
	Rating *int   `json:"rating" validate:"required,gte=1"`
}

func TestStructPasses(t *testing.T) {
	rating := 3
	err := Struct(sampleRequest{Name: "Dr. Vega", Email: "vega@example.com", Rating: &rating})
	assert.NoError(t, err)
}

func TestStructReportsWireFieldNames(t *testing.T) {
	rating := 3
	err := Struct(sampleRequest{Email: "vega@example.com", Rating: &rating})
	require.Error(t, err)
	assert.Equal(t, "name is required", err.Error())
}

func TestStructEmailMessage(t *testing.T) {
	rating := 3
	err := Struct(sampleRequest{Name: "Dr. Vega", Email: "not-an-email", Rating: &rating})
	require.Error(t, err)
	assert.Equal(t, "email must be a valid email address", err.Error())
}

func TestStructMissingPointerField(t *testing.T) {
	err := Struct(sampleRequest{Name: "Dr. Vega", Email: "vega@example.com"})
	require.Error(t, err)
	assert.Equal(t, "rating is required", err.Error())
}
