package main

import (
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shelfwise/internal/api"
	"shelfwise/internal/auth"
	"shelfwise/internal/config"
	"shelfwise/internal/http/handlers"
	applog "shelfwise/internal/log"
	"shelfwise/internal/onboarding"
	"shelfwise/internal/repos"
)

func main() {
	lg := applog.Logger()
	cfg, err := config.Load()
	if err != nil {
		lg.Fatal().Err(err).Msg("config")
	}

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			lg.Warn().Err(err).Str("file", cfg.LogFile).Msg("could not open log file")
		} else {
			defer f.Close()
			applog.SetOutput(io.MultiWriter(os.Stdout, f))
			lg = applog.Logger()
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		lg.Fatal().Err(err).Str("dsn", cfg.DBDSN).Msg("open db")
	}
	defer db.Close()

	client := api.NewClient(api.Config{BaseURL: cfg.APIURL, Timeout: cfg.APITimeout})

	provider, err := identity(cfg)
	if err != nil {
		lg.Fatal().Err(err).Msg("identity provider")
	}

	deps := handlers.NewDeps(db, client, cfg)
	app := handlers.NewApp(deps, provider, onboarding.New(onboarding.APIDirectory{Client: client}))

	go func() {
		lg.Info().Str("port", cfg.Port).Str("api", cfg.APIURL).Msg("starting storefront")
		if err := app.Listen(":" + cfg.Port); err != nil {
			lg.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info().Msg("shutting down")

	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		lg.Error().Err(err).Msg("forced shutdown")
	}
}

// identity picks the session source. Without a verification key every visitor is
// signed out, unless a development token pins one backend account.
func identity(cfg *config.Config) (auth.Provider, error) {
	id := cfg.Identity
	if id.SecretKey != "" || id.PublicKeyPEM != "" {
		return auth.NewJWTProvider(auth.JWTConfig{
			Cookie:       id.SessionCookie,
			SecretKey:    id.SecretKey,
			PublicKeyPEM: id.PublicKeyPEM,
		})
	}
	lg := applog.Logger()
	if id.DevToken != "" {
		lg.Warn().Msg("no identity key configured; signing every request in with IDENTITY_DEV_TOKEN")
		return auth.Static{S: auth.SignedIn(id.DevToken, auth.Claims{Email: "dev@shelfwise.local", FirstName: "Dev"})}, nil
	}
	lg.Warn().Msg("no identity key configured; all visitors are signed out")
	return auth.Static{S: auth.SignedOut()}, nil
}
