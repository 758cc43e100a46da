package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required"`
	Delta int    `validate:"min=1,max=100"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateStruct(sample{Name: "x", Delta: 10}))

	err := ValidateStruct(sample{Delta: 0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample.Name")
	assert.Contains(t, err.Error(), "Tag: min")
}
