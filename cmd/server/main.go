package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"blood-donation-api/internal/api"
	"blood-donation-api/internal/appointment"
	"blood-donation-api/internal/auth"
	"blood-donation-api/internal/config"
	"blood-donation-api/internal/directory"
	"blood-donation-api/internal/forms"
	"blood-donation-api/internal/gateway"
	"blood-donation-api/internal/handler"
	"blood-donation-api/internal/middleware"
	"blood-donation-api/internal/store"
	"blood-donation-api/internal/store/memory"
)

const migrationFile = "db/migrations/001_init.sql"

// backend is what both data collaborators provide.
type backend interface {
	handler.Accounts
	appointment.Repo
	forms.Repo
	directory.Source
	Ping(ctx context.Context) error
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger, err := config.NewLogger(cfg.Production())
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, closeStore, err := openBackend(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("data backend", zap.Error(err))
	}
	defer closeStore()

	iss := auth.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	appts := appointment.NewManager(st, appointment.Options{
		Facilities:     cfg.Facilities,
		Slots:          cfg.Slots,
		ClosedOnSunday: cfg.ClosedOnSunday,
		Location:       cfg.Location,
	})
	h := handler.New(handler.Deps{
		Accounts:     st,
		Appointments: appts,
		Directory:    directory.NewService(st),
		Forms:        forms.NewService(st, forms.Options{Location: cfg.Location}),
		Issuer:       iss,
		Log:          logger,
	})

	// grpc server
	rl := middleware.NewRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst)
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.Observe(logger),
			middleware.RateLimit(rl),
			middleware.Auth(iss),
		),
	)
	api.RegisterBloodBankServiceServer(srv, h)

	lis, err := net.Listen("tcp", ":"+cfg.GRPCPort)
	if err != nil {
		logger.Fatal("listen", zap.Error(err))
	}
	go func() {
		logger.Info("grpc listening", zap.String("port", cfg.GRPCPort))
		if err := srv.Serve(lis); err != nil {
			logger.Error("grpc serve", zap.Error(err))
		}
	}()

	// browser gateway -> forwards to grpc on localhost
	gw, err := gateway.Dial("localhost:"+cfg.GRPCPort, gateway.Options{
		AllowedOrigin: cfg.CORSOrigin,
		Health:        st.Ping,
		Log:           logger,
	})
	if err != nil {
		logger.Fatal("gateway", zap.Error(err))
	}
	defer gw.Close()

	httpSrv := &http.Server{
		Addr:              ":" + cfg.WebPort,
		Handler:           gw.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Info("gateway listening", zap.String("port", cfg.WebPort))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", zap.Error(err))
	}
	srv.GracefulStop()
}

// openBackend picks the data collaborator named by DATA_BACKEND.
func openBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (backend, func(), error) {
	if cfg.DataBackend == config.BackendMemory {
		logger.Warn("using in-memory data backend; data is lost on exit")
		return memory.New(), func() {}, nil
	}

	st, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to postgres")

	if cfg.AutoMigrate {
		if script, err := os.ReadFile(migrationFile); err != nil {
			logger.Warn("migration file not found, skipping", zap.Error(err))
		} else if err := st.Migrate(ctx, string(script)); err != nil {
			st.Close()
			return nil, nil, err
		} else {
			logger.Info("migration applied", zap.String("file", migrationFile))
		}
	}
	return st, st.Close, nil
}
