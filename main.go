package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pasajes/internal/auth"
	intconfig "pasajes/internal/config"
	router "pasajes/internal/http"
	"pasajes/internal/http/handlers"
	"pasajes/internal/repositories"
	"pasajes/internal/services"
	"pasajes/internal/sheets"
	"pasajes/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type storeLink interface {
	sheets.Store
	sheets.Prober
}

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	shutdownTracing := telemetry.Setup("pasajes")

	manager, store := buildSession(env)
	repo := repositories.SheetsRepo{Store: store, Sheets: env.Sheets}
	desk := &services.Desk{
		Aggregator: &services.Aggregator{Source: repo, SeatCapacity: env.SeatCapacity},
		Sales:      services.SaleService{Writer: repo},
		Tickets:    services.TicketService{SeatCapacity: env.SeatCapacity},
	}

	bootCtx, cancelBoot := context.WithTimeout(context.Background(), 30*time.Second)
	if manager.Restore(bootCtx) {
		if _, notice, err := desk.Reload(bootCtx); err != nil {
			log.Printf("[BOOT] initial load failed: %v", err)
		} else {
			log.Printf("[BOOT] %s: %s", notice.Title, notice.Message)
		}
	} else {
		log.Println("[BOOT] sin sesión guardada, inicie sesión desde la interfaz")
	}
	cancelBoot()

	hd := &handlers.Handler{
		Desk:    desk,
		Session: manager,
		Operator: handlers.OperatorAuth{
			Username:     env.OperatorUsername,
			PasswordHash: env.OperatorPasswordHash,
			Secret:       []byte(env.JWTSecret),
			TTL:          env.JWTTTL,
		},
	}
	r := router.NewRouter(env, hd)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           otelhttp.NewHandler(r, "pasajes-http"),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Servidor en http://localhost%s (store=%s)", env.AppAddr, env.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("No se pudo iniciar el servidor: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("Apagando servidor...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Fallo al apagar el servidor: %v", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		log.Printf("[TELEMETRY] shutdown: %v", err)
	}

	log.Println("Servidor detenido.")
}

// buildSession wires the credential manager and the store it authorizes.
// The Google store takes the manager as its token source, and the manager
// probes through that same store.
func buildSession(env intconfig.Env) (*auth.Manager, storeLink) {
	if env.StoreDriver == intconfig.StoreDriverMemory {
		mem := sheets.NewMemoryStore()
		sheets.SeedDemo(mem, env.Sheets, time.Now())
		manager := auth.NewManager(auth.LocalCredentials{RedirectURL: env.GoogleRedirectURL}, &auth.MemoryTokenStore{})
		manager.Prober = mem
		return manager, mem
	}

	creds := auth.NewGoogleCredentials(env.GoogleClientID, env.GoogleClientSecret, env.GoogleRedirectURL)
	manager := auth.NewManager(creds, &auth.FileTokenStore{Path: env.TokenFile})
	gs, err := sheets.NewGoogleStore(context.Background(), env.SpreadsheetID, manager, env.StoreTimeout)
	if err != nil {
		log.Fatalf("No se pudo crear el cliente de Sheets: %v", err)
	}
	manager.Prober = gs
	return manager, gs
}
