// Command shelfwise-devapi serves the in-memory backend with demo data so the
// storefront can run without the real API. Pair it with IDENTITY_DEV_TOKEN.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"shelfwise/internal/api/apitest"
	"shelfwise/internal/domain"
	applog "shelfwise/internal/log"
)

func main() {
	_ = godotenv.Load()
	lg := applog.Logger()

	addr := os.Getenv("DEVAPI_ADDR")
	if addr == "" {
		addr = ":3000"
	}
	b := apitest.Seeded()
	b.AddAccount("dev-client", domain.User{Email: "client@shelfwise.local", Role: domain.RoleClient}, &domain.Profile{FirstName: "Casey", LastName: "Client"})
	b.AddAccount("dev-admin", domain.User{Email: "admin@shelfwise.local", Role: domain.RoleAdmin}, &domain.Profile{FirstName: "Ada", LastName: "Admin"})
	b.AddAccount("dev-new", domain.User{Email: "new@shelfwise.local"}, nil)

	server := &http.Server{Addr: addr, Handler: b.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		lg.Info().Str("addr", addr).Strs("tokens", []string{"dev-client", "dev-admin", "dev-new"}).Msg("dev api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Fatal().Err(err).Msg("dev api failed")
		}
	}()

	quit := make(chan os.Signal, 2)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		lg.Error().Err(err).Msg("forced shutdown")
	}
}
