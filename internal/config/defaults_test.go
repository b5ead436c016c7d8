package config

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDefaults(t *testing.T) {
	t.Parallel()

	defaults := GetDefaults()
	assert.Equal(t, "auto", defaults["backend"])
	assert.Equal(t, "Claude Code", defaults["app_name"])
	assert.Equal(t, 0, defaults["timeout"])
	assert.Equal(t, false, defaults["debug"])
}

func TestDefaults_AreValid(t *testing.T) {
	t.Parallel()

	s := Defaults()
	require.NoError(t, validator.New().Struct(*s))
	assert.Equal(t, 0, s.Timeout, "default wait must be unbounded")
}
