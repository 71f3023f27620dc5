package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelfwise/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("NEXT_PUBLIC_API_URL", "")
	t.Setenv("API_TIMEOUT", "")
	t.Setenv("SEARCH_DEBOUNCE", "")
	t.Setenv("PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:3000/api", cfg.APIURL)
	assert.Equal(t, 10*time.Second, cfg.APITimeout)
	assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	assert.Equal(t, "__session", cfg.Identity.SessionCookie)
}

func TestLoadAPIURLFallback(t *testing.T) {
	t.Setenv("API_URL", "")
	t.Setenv("NEXT_PUBLIC_API_URL", "https://api.shelfwise.test")
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.shelfwise.test", cfg.APIURL)

	t.Setenv("API_URL", "http://backend:4000/api")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, "http://backend:4000/api", cfg.APIURL)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Setenv("SEARCH_DEBOUNCE", "soon")
	_, err := config.Load()
	assert.ErrorContains(t, err, "SEARCH_DEBOUNCE")
}
