package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `json:"name" validate:"required"`
	Rate     *float64 `json:"baseRate" validate:"required,gte=0"`
	Status   string   `json:"status,omitempty" validate:"omitempty,oneof=active disabled"`
	Internal string   `json:"-" validate:"max=3"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()
	negative := -1.0

	errs := v.Struct(sample{Rate: &negative, Status: "broken", Internal: "toolong"})
	require.Len(t, errs, 4)

	assert.Equal(t, FieldError{Field: "name", Tag: "required", Message: "name is required"}, errs[0])
	assert.Equal(t, "baseRate must be greater than or equal to 0", errs[1].Message)
	assert.Equal(t, "status must be one of [active disabled]", errs[2].Message)
	assert.Equal(t, "max", errs[3].Tag)
}

func TestValidator_Valid(t *testing.T) {
	rate := 10.0
	assert.Nil(t, New().Struct(sample{Name: "Court", Rate: &rate}))
}

func TestFieldsAndJoin(t *testing.T) {
	errs := New().Struct(sample{})

	assert.Equal(t, []string{"name", "baseRate"}, Fields(errs, "required"))
	assert.Equal(t, "name is required; baseRate is required", Join(errs))
}
