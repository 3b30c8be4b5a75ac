package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Chahethsen12/MobiTech-Elite/internal/assistant"
	"github.com/Chahethsen12/MobiTech-Elite/internal/auth"
	"github.com/Chahethsen12/MobiTech-Elite/internal/catalog"
	"github.com/Chahethsen12/MobiTech-Elite/internal/config"
	"github.com/Chahethsen12/MobiTech-Elite/internal/events"
	h "github.com/Chahethsen12/MobiTech-Elite/internal/http"
	"github.com/Chahethsen12/MobiTech-Elite/internal/logger"
	"github.com/Chahethsen12/MobiTech-Elite/internal/service"
	"github.com/Chahethsen12/MobiTech-Elite/internal/session"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

const sessionSweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogPretty)
	zlog.Logger = log

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("storefront stopped with error")
	}
	log.Info().Msg("storefront exited")
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	products, err := catalog.NewMemoryStore(catalog.SeedProducts())
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store, closeStore, err := newSessionStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	publisher := newPublisher(cfg, log)
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close publisher")
		}
	}()

	svc := service.NewStorefront(
		products,
		session.NewManager(store),
		auth.New(),
		publisher,
		assistant.New(newGenerator(ctx, cfg, log), cfg.AssistantTimeout, log),
		log,
	)

	router := h.NewRouter(svc, log, h.RouterConfig{
		RequestTimeout:     cfg.RequestTimeout,
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		AssistantRPS:       cfg.AssistantRPS,
		AssistantBurst:     cfg.AssistantBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      otelhttp.NewHandler(router, "storefront"),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// gRPC carries only the health and reflection services.
	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer)

	errCh := make(chan error, 2)

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("storefront http starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	go func() {
		log.Info().Str("port", cfg.GRPCPort).Msg("storefront grpc health starting")
		if err := grpcServer.Serve(lis); err != nil {
			errCh <- fmt.Errorf("grpc server error: %w", err)
		}
	}()

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down storefront")
	case runErr = <-errCh:
	}

	healthServer.Shutdown()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server forced to shutdown")
	}
	grpcServer.GracefulStop()

	return runErr
}

// newSessionStore picks the configured store. The returned func releases it.
func newSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (session.Store, func(), error) {
	if cfg.SessionStore == config.SessionStoreRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis connection failed: %w", err)
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis ping succeeded")

		return session.NewRedisStore(client, cfg.SessionTTL), func() { _ = client.Close() }, nil
	}

	store := session.NewMemoryStore(cfg.SessionTTL)
	janitorCtx, cancel := context.WithCancel(ctx)
	go session.NewJanitor(store, sessionSweepInterval, log).Run(janitorCtx)

	return store, cancel, nil
}

func newPublisher(cfg *config.Config, log zerolog.Logger) events.Publisher {
	brokers := cfg.Brokers()
	if len(brokers) == 0 {
		log.Info().Msg("no kafka brokers configured, order events go to the log")
		return events.NewLogPublisher(log)
	}

	log.Info().Strs("brokers", brokers).Str("topic", cfg.OrdersTopic).Msg("publishing order events to kafka")
	return events.NewKafkaPublisher(cfg.OrdersTopic, brokers...)
}

func newGenerator(ctx context.Context, cfg *config.Config, log zerolog.Logger) assistant.Generator {
	gen, err := assistant.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Warn().Err(err).Msg("assistant disabled")
		return assistant.Unconfigured()
	}
	return gen
}
