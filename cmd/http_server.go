package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/spf13/cobra"

	"github.com/wordhope/donation-site/internal"
	"github.com/wordhope/donation-site/internal/contact"
	"github.com/wordhope/donation-site/internal/core/events"
	"github.com/wordhope/donation-site/internal/donation"
	"github.com/wordhope/donation-site/internal/gallery"
	"github.com/wordhope/donation-site/internal/paymentgateway"
	"github.com/wordhope/donation-site/internal/transport/rest"
	"github.com/wordhope/donation-site/pkg/logger"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config          *internal.Config
	Router          *chi.Mux
	Logger          *slog.Logger
	EventBus        *events.EventBus
	DonationHandler *donation.Handler
	GalleryHandler  *gallery.Handler
	ContactHandler  *contact.Handler
	HealthHandler   *rest.HealthHandler
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	rest.RegisterAllRoutes(
		deps.Router,
		deps.DonationHandler,
		deps.GalleryHandler,
		deps.ContactHandler,
		deps.HealthHandler,
		deps.Config,
		deps.Logger,
	)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down...", "signal", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Format)
	appLogger := logger.L()

	eventBus := events.NewEventBus(appLogger)
	registerAuditSubscribers(eventBus, appLogger)

	gateway, err := paymentgateway.NewClient(paymentgateway.Config{
		SecretKey: config.Payment.SecretKey,
		Timeout:   config.Payment.Timeout,
	}, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize payment gateway: %w", err)
	}

	donationService := donation.NewService(
		gateway,
		eventBus,
		config.Server.BaseURL,
		config.Payment.ProductName,
		appLogger,
	)
	contactService := contact.NewService(eventBus, appLogger)
	galleryLoader := gallery.NewLoader(config.Content.Dir)

	return &Dependencies{
		Config:          config,
		Router:          chi.NewRouter(),
		Logger:          appLogger,
		EventBus:        eventBus,
		DonationHandler: donation.NewHandler(donationService, appLogger),
		GalleryHandler:  gallery.NewHandler(galleryLoader, appLogger),
		ContactHandler:  contact.NewHandler(contactService, appLogger),
		HealthHandler:   rest.NewHealthHandler(config.Content.Dir, config.Payment.SecretKey != ""),
	}, nil
}

// registerAuditSubscribers attaches log-only handlers so every domain event
// leaves a trace even without downstream consumers.
func registerAuditSubscribers(bus *events.EventBus, log *slog.Logger) {
	audit := func(ctx context.Context, event events.Event) error {
		log.Info("domain event",
			"event_id", event.EventID(),
			"event_type", event.EventType(),
			"occurred_at", event.OccurredAt())
		return nil
	}

	bus.Subscribe(events.EventTypeCheckoutSessionCreated, audit)
	bus.Subscribe(events.EventTypeCheckoutFailed, audit)
	bus.Subscribe(events.EventTypeContactMessageReceived, audit)
}
