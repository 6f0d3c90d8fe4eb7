package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"qcscargo/internal/analytics"
	"qcscargo/internal/api"
	"qcscargo/internal/api/handler/v1handler"
	"qcscargo/internal/blog"
	"qcscargo/internal/booking"
	"qcscargo/internal/config"
	"qcscargo/internal/customer"
	"qcscargo/internal/document"
	"qcscargo/internal/intake"
	"qcscargo/internal/quote"
	"qcscargo/internal/worker"
	"qcscargo/pkg/logger"
	"qcscargo/pkg/notify"
	"qcscargo/pkg/notify/mailapi"
	"qcscargo/pkg/notify/twilio"
	"qcscargo/pkg/objectstore"
	"qcscargo/pkg/resilience"
	"qcscargo/pkg/storage/postgres"

	"github.com/jackc/pgx/v5"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(ctx, deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func resilienceFor(cfg *config.Config, name string) notify.Resilience {
	return notify.Resilience{
		Policy: resilience.Policy{
			InitialInterval: cfg.Notify.Retry.InitialInterval,
			MaxInterval:     cfg.Notify.Retry.MaxInterval,
			MaxElapsedTime:  cfg.Notify.Retry.MaxElapsedTime,
			MaxAttempts:     cfg.Notify.Retry.MaxAttempts,
		},
		Breaker: resilience.NewBreaker(resilience.BreakerOptions{
			Name:             name,
			FailureThreshold: cfg.Notify.Breaker.FailureThreshold,
			OpenTimeout:      cfg.Notify.Breaker.OpenTimeout,
		}),
	}
}

// setupNotifiers builds the e-mail and SMS senders. Providers without
// credentials are replaced by a sender that only logs.
func setupNotifiers(ctx context.Context, cfg *config.Config) (notify.EmailSender, notify.SMSSender) {
	var email notify.EmailSender = notify.LogSender{}
	if cfg.Notify.Email.APIKey != "" {
		email = mailapi.New(&http.Client{Timeout: cfg.Notify.Email.Timeout},
			cfg.Notify.Email.BaseURL,
			cfg.Notify.Email.APIKey,
			cfg.Notify.Email.From)
	} else {
		logger.Warn(ctx, "e-mail provider is not configured, e-mails are only logged")
	}

	var sms notify.SMSSender = notify.LogSender{}
	if cfg.Notify.SMS.AccountSID != "" {
		sms = twilio.New(&http.Client{Timeout: cfg.Notify.SMS.Timeout}, twilio.Options{
			BaseURL:            cfg.Notify.SMS.BaseURL,
			AccountSID:         cfg.Notify.SMS.AccountSID,
			AuthToken:          cfg.Notify.SMS.AuthToken,
			From:               cfg.Notify.SMS.From,
			WhatsAppFrom:       cfg.Notify.SMS.WhatsAppFrom,
			DefaultCountryCode: cfg.Notify.DefaultCountryCode,
		})
	} else {
		logger.Warn(ctx, "SMS provider is not configured, text messages are only logged")
	}

	return notify.ResilientEmail(email, resilienceFor(cfg, "email")),
		notify.ResilientSMS(sms, resilienceFor(cfg, "sms"))
}

func setupWorkers(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	deps worker.Deps) (*river.Client[pgx.Tx], func(ctx context.Context)) {
	// river stops on its own when its context is cancelled; it is stopped
	// explicitly instead so running jobs can finish.
	riverClient, err := worker.Start(context.WithoutCancel(ctx), pgsql.Pool, deps, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}
	logger.Info(ctx, "workers started")

	return riverClient, func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers gracefully", zap.Error(err))
		}
	}
}

func setupServices(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) v1handler.Deps {
	objects, err := objectstore.NewMinio(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create object storage", zap.Error(err))
	}
	if err := objects.EnsureBucket(ctx); err != nil {
		logger.Fatal(ctx, "could not prepare documents bucket", zap.Error(err))
	}

	bookingOpts, err := booking.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "invalid booking config", zap.Error(err))
	}

	return v1handler.Deps{
		Customers: customer.New(pgsql, cfg.Notify.DefaultCountryCode),
		Bookings:  booking.New(pgsql, bookingOpts),
		Quotes:    quote.New(pgsql, quote.NewOptions(cfg)),
		Intake:    intake.New(pgsql),
		Documents: document.New(pgsql, objects, document.NewOptions(cfg)),
		Analytics: analytics.New(pgsql),
		Blog:      blog.New(pgsql, blog.NewOptions(cfg)),
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			email, sms := setupNotifiers(ctx, cfg)
			riverClient, stopWorkers := setupWorkers(ctx, cfg, pgsql, worker.Deps{
				Quotes: pgsql,
				Email:  email,
				SMS:    sms,
				Gate:   worker.NewChannelGate(),
			})

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps:   setupServices(ctx, cfg, pgsql),
				Health: pgsql,
				Jobs:   riverClient,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorkers(shutdownCtx)
		},
	}

	return cmd
}
