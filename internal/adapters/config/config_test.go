package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsDevelopment(t *testing.T) {
	development := &Config{Settings: Settings{Env: EnvDevelopment}}
	require.True(t, development.IsDevelopment())

	production := &Config{Settings: Settings{Env: EnvProduction}}
	require.False(t, production.IsDevelopment())

	// Anything unrecognized is treated as production.
	unknown := &Config{Settings: Settings{Env: "staging"}}
	require.False(t, unknown.IsDevelopment())

	empty := &Config{}
	require.False(t, empty.IsDevelopment())
}
