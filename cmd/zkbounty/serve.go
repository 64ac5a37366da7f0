package main

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/zkontract/zkbounty/internal/config"
	grpcHandler "github.com/zkontract/zkbounty/internal/handler/grpc"
	httpHandler "github.com/zkontract/zkbounty/internal/handler/http"
	"github.com/zkontract/zkbounty/internal/infrastructure/storage/gormdb"
	"github.com/zkontract/zkbounty/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and gRPC APIs",
	RunE:  serve,
}

func serve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	log.Info().Msgf("Starting %s v%s", cfg.App.Name, cfg.App.Version)

	db, err := initDatabase(cfg)
	if err != nil {
		return err
	}

	chain := newChainClient(cfg)
	if _, err := chain.GetProgram(ctx, cfg.Aleo.BountyProgramID); err != nil {
		log.Warn().Err(err).Str("program", cfg.Aleo.BountyProgramID).Msg("bounty program not reachable")
	} else {
		log.Info().Str("network", cfg.Aleo.Network).Str("program", cfg.Aleo.BountyProgramID).Msg("connected to Aleo node")
	}

	journal := gormdb.NewTransactionRepository(db)
	proposals := gormdb.NewProposalRepository(db)

	policy := newPolicyProvider(ctx, cfg)
	defer func() {
		if err := policy.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("closing flag client")
		}
	}()

	bounties := service.NewBountyService(chain, cfg.Aleo.BountyProgramID, service.WithJournal(journal))
	engine := newTransferEngine(cfg, policy, journal)

	// Start gRPC server
	grpcServer := grpcHandler.NewServer(
		grpcHandler.NewBountyHandler(bounties.Reader(), bounties),
		cfg.GRPC.EnableReflection,
	)
	lis, err := net.Listen("tcp", cfg.GRPC.Port)
	if err != nil {
		return err
	}
	go func() {
		log.Info().Msgf("gRPC server listening on %s", cfg.GRPC.Port)
		if err := grpcServer.Serve(lis); err != nil && err != grpc.ErrServerStopped {
			log.Error().Err(err).Msg("failed to serve gRPC")
		}
	}()

	// Start HTTP server
	auth, err := newAuthMiddleware(ctx, cfg)
	if err != nil {
		return err
	}
	handler := httpHandler.NewBountyHTTPHandler(bounties.Reader(), bounties, bounties, engine, proposals, journal)
	httpServer := initHTTPServer(cfg, handler, auth)
	go func() {
		log.Info().Msgf("HTTP server listening on %s", cfg.HTTP.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("failed to serve HTTP")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down servers...")

	// Graceful shutdown
	grpcServer.GracefulStop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Servers stopped")
	return nil
}

func newAuthMiddleware(ctx context.Context, cfg *config.Config) (mux.MiddlewareFunc, error) {
	if cfg.Auth.JWKSURL == "" {
		log.Warn().Msg("auth.jwks_url not set, mutating routes are unauthenticated")
		return nil, nil
	}

	jwks, err := keyfunc.NewDefaultCtx(ctx, []string{cfg.Auth.JWKSURL})
	if err != nil {
		return nil, err
	}
	return httpHandler.RequireJWT(jwks.Keyfunc), nil
}

func initHTTPServer(cfg *config.Config, handler *httpHandler.BountyHTTPHandler, auth mux.MiddlewareFunc) *http.Server {
	router := mux.NewRouter()
	router.Use(httpHandler.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	// Register HTTP handlers
	handler.RegisterRoutes(router, auth)

	return &http.Server{
		Addr:              cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
