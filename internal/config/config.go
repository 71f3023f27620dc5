package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	DBDSN        string
	LogFile      string
	APIURL       string
	CookieSecure bool

	APITimeout     time.Duration
	SearchDebounce time.Duration

	Identity struct {
		SecretKey     string
		PublicKeyPEM  string
		SignInURL     string
		SessionCookie string
		// DevToken signs every request in as a fixed backend account when no key is set.
		DevToken string
	}
}

func Load() (*Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	cfg := &Config{
		Port:         env("PORT", "8080"),
		DBDSN:        env("DB_DSN", "shelfwise.db"),
		LogFile:      os.Getenv("LOG_FILE"),
		APIURL:       env("API_URL", env("NEXT_PUBLIC_API_URL", "http://localhost:3000/api")),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
	}

	var err error
	if cfg.APITimeout, err = duration("API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SearchDebounce, err = duration("SEARCH_DEBOUNCE", 300*time.Millisecond); err != nil {
		return nil, err
	}

	cfg.Identity.SecretKey = os.Getenv("IDENTITY_SECRET_KEY")
	cfg.Identity.PublicKeyPEM = os.Getenv("IDENTITY_PUBLIC_KEY")
	cfg.Identity.SignInURL = env("IDENTITY_SIGN_IN_URL", "/coming-soon")
	cfg.Identity.SessionCookie = env("SESSION_COOKIE", "__session")
	cfg.Identity.DevToken = os.Getenv("IDENTITY_DEV_TOKEN")

	return cfg, nil
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%s must be a duration like 300ms: %q", key, v)
	}
	return d, nil
}
