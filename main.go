// Command saf.report serves the SAF emissions dashboard: it loads the
// full test record set from the database once at startup and renders
// eight fuel-type-linked visualizations over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/skyfuel-data/saf.report/internal/api"
	"github.com/skyfuel-data/saf.report/internal/config"
	"github.com/skyfuel-data/saf.report/internal/dashboard"
	"github.com/skyfuel-data/saf.report/internal/db"
	"github.com/skyfuel-data/saf.report/internal/saf"
	"github.com/skyfuel-data/saf.report/internal/security"
	"github.com/skyfuel-data/saf.report/internal/version"
)

var (
	configPath    = flag.String("config", "", "Path to JSON config file (optional)")
	listen        = flag.String("listen", "", "Listen address (overrides config)")
	dbDriver      = flag.String("db-driver", "", "Database driver: sqlite or postgres (overrides config)")
	dbPath        = flag.String("db", "", "SQLite file path or Postgres DSN (overrides config)")
	migrationsDir = flag.String("migrations", "", "Migrations directory (overrides config)")
	showVersion   = flag.Bool("version", false, "Print version and exit")
)

func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	flagOverrides := &config.Config{}
	if *listen != "" {
		flagOverrides.Listen = listen
	}
	if *dbDriver != "" {
		flagOverrides.DBDriver = dbDriver
	}
	if *dbPath != "" {
		flagOverrides.DBPath = dbPath
	}
	if *migrationsDir != "" {
		flagOverrides.MigrationsDir = migrationsDir
	}
	cfg.Merge(flagOverrides)
	return cfg, nil
}

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := security.ValidateDirectoryExists(*cfg.MigrationsDir); err != nil {
		log.Fatalf("invalid migrations directory: %v", err)
	}

	database, err := db.NewDB(*cfg.DBDriver, *cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := database.MigrateUp(*cfg.MigrationsDir); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// One blocking load at startup; the dashboard never reloads. Any
	// failure here is fatal: the process cannot render without the
	// full record set.
	records, err := database.LoadTestRecords(ctx)
	if err != nil {
		log.Fatalf("failed to load test records: %v", err)
	}
	store := saf.NewRecordStore(records)
	if store.DefaultFuel() == "" {
		log.Fatalf("no fuel types in saf_emissions_data; seed data first (see cmd/tools/seed-saf)")
	}
	log.Printf("loaded %d test records across %d fuel types", store.Len(), len(store.FuelTypes()))

	mux := http.NewServeMux()

	// admin debugging routes (expose only on a trusted interface)
	if err := database.AttachAdminRoutes(mux); err != nil {
		log.Fatalf("failed to attach admin routes: %v", err)
	}

	apiMux := api.NewServer(store, *cfg.EmissionUnits).ServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", apiMux))

	mux.Handle("/", dashboard.NewWebServer(store).ServeMux())

	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("got request %q", r.URL.Path)
		mux.ServeHTTP(w, r)
	})

	server := &http.Server{
		Addr:    *cfg.Listen,
		Handler: h,
	}

	go func() {
		log.Printf("serving SAF dashboard on %s", *cfg.Listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Printf("graceful shutdown complete")
}
