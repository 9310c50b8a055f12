package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func TestValidate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&credentials{Username: "alice", Password: "pw123"}))

	err := v.Validate(&credentials{Username: "alice"})
	require.Error(t, err)
	assert.Equal(t, "password failed on 'required'", err.Error())

	err = v.Validate(&credentials{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "username failed on 'required'")
	assert.Contains(t, err.Error(), "password failed on 'required'")
}
