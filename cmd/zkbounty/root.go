package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/zkontract/zkbounty/internal/config"
	"github.com/zkontract/zkbounty/internal/domain"
	"github.com/zkontract/zkbounty/internal/infrastructure/aleo"
	"github.com/zkontract/zkbounty/internal/infrastructure/flags"
	"github.com/zkontract/zkbounty/internal/infrastructure/metadata"
	"github.com/zkontract/zkbounty/internal/infrastructure/storage/gormdb"
	"github.com/zkontract/zkbounty/internal/infrastructure/wallet"
	"github.com/zkontract/zkbounty/internal/service"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "zkbounty",
	Short:         "Client for the zkontract.aleo bounty board",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.GetConfig(configPath)
		if err != nil {
			return err
		}
		setupLogger(cfg.Log.Level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config/config.yaml", "path to the config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(bountyCmd)
	rootCmd.AddCommand(proposalCmd)
	rootCmd.AddCommand(feeCmd)
	rootCmd.AddCommand(rewardCmd)
	rootCmd.AddCommand(creditsCmd)
	rootCmd.AddCommand(programCmd)
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
}

// loadConfig returns the config already read in PersistentPreRunE
func loadConfig() *config.Config {
	cfg, _ := config.GetConfig(configPath)
	return cfg
}

func initDatabase(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.User,
			cfg.Database.Password,
			cfg.Database.DBName,
			cfg.Database.SSLMode,
		)
		dialector = postgres.Open(dsn)
	default:
		dialector = sqlite.Open(cfg.Database.SQLitePath)
	}

	db, err := gormdb.NewDB(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("database connected and migrated successfully")
	return db, nil
}

func newChainClient(cfg *config.Config) *aleo.Client {
	return aleo.NewClient(cfg.Aleo.RPCURL, aleo.WithProgramCacheSize(cfg.Aleo.ProgramCacheSize))
}

func newPolicyProvider(ctx context.Context, cfg *config.Config) *flags.PolicyProvider {
	fallback := domain.SelectionPolicy(cfg.Transfer.SelectionPolicy)
	if cfg.Flipt.URL == "" {
		return flags.NewStaticPolicyProvider(fallback)
	}

	provider, err := flags.NewFliptPolicyProvider(ctx, cfg.Flipt.URL, cfg.Flipt.Namespace, fallback)
	if err != nil {
		log.Warn().Err(err).Msg("flipt unavailable, using static selection policy")
		return flags.NewStaticPolicyProvider(fallback)
	}
	return provider
}

func newTransferEngine(cfg *config.Config, policy service.PolicySource, journal service.TransactionJournal) *service.TransferEngine {
	w := wallet.NewRPCWallet(aleo.NewClient(cfg.Wallet.RPCURL), cfg.Wallet.Address)

	return service.NewTransferEngine(
		w,
		metadata.NewClient(cfg.Metadata.BaseURL, cfg.Metadata.Timeout, metadata.WithBearerToken(cfg.Metadata.Token)),
		policy,
		service.EngineConfig{
			Address:      w.Address(),
			Network:      cfg.Aleo.Network,
			PollInterval: cfg.Transfer.PollInterval,
			MaxAttempts:  cfg.Transfer.MaxAttempts,
			FeePrivate:   cfg.Transfer.FeePrivate,
		},
		service.WithEngineJournal(journal),
	)
}
