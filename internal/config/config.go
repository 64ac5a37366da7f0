package config

import (
	"fmt"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type (
	Config struct {
		App       `yaml:"app" env-prefix:"APP_"`
		HTTP      `yaml:"http" env-prefix:"HTTP_"`
		GRPC      `yaml:"grpc" env-prefix:"GRPC_"`
		Database  `yaml:"database" env-prefix:"DATABASE_"`
		Aleo      `yaml:"aleo" env-prefix:"ALEO_"`
		Wallet    `yaml:"wallet" env-prefix:"WALLET_"`
		Metadata  `yaml:"metadata" env-prefix:"METADATA_"`
		Transfer  `yaml:"transfer" env-prefix:"TRANSFER_"`
		Flipt     `yaml:"flipt" env-prefix:"FLIPT_"`
		Auth      `yaml:"auth" env-prefix:"AUTH_"`
		RateLimit `yaml:"rate_limit" env-prefix:"RATE_LIMIT_"`
		Log       `yaml:"log" env-prefix:"LOG_"`
	}

	App struct {
		Name    string `yaml:"name" env:"NAME" env-default:"zkbounty"`
		Version string `yaml:"version" env:"VERSION" env-default:"dev"`
	}

	HTTP struct {
		Port string `yaml:"port" env:"PORT" env-default:":8080"`
	}

	GRPC struct {
		Port             string `yaml:"port" env:"PORT" env-default:":9090"`
		EnableReflection bool   `yaml:"enable_reflection" env:"ENABLE_REFLECTION"`
	}

	// Database selects postgres or sqlite
	Database struct {
		Driver     string `yaml:"driver" env:"DRIVER" env-default:"sqlite"`
		Host       string `yaml:"host" env:"HOST"`
		Port       string `yaml:"port" env:"PORT"`
		User       string `yaml:"user" env:"USER"`
		Password   string `yaml:"password" env:"PASSWORD"`
		DBName     string `yaml:"dbname" env:"DBNAME"`
		SSLMode    string `yaml:"sslmode" env:"SSLMODE" env-default:"disable"`
		SQLitePath string `yaml:"sqlite_path" env:"SQLITE_PATH" env-default:"zkbounty.db"`
	}

	Aleo struct {
		RPCURL           string `yaml:"rpc_url" env:"RPC_URL" env-default:"https://testnetbeta.aleorpc.com"`
		Network          string `yaml:"network" env:"NETWORK" env-default:"testnetbeta"`
		BountyProgramID  string `yaml:"bounty_program_id" env:"BOUNTY_PROGRAM_ID" env-default:"zkontract.aleo"`
		ProgramCacheSize int    `yaml:"program_cache_size" env:"PROGRAM_CACHE_SIZE" env-default:"32"`
	}

	Wallet struct {
		RPCURL  string `yaml:"rpc_url" env:"RPC_URL"`
		Address string `yaml:"address" env:"ADDRESS"`
	}

	Metadata struct {
		BaseURL string        `yaml:"base_url" env:"BASE_URL" env-default:"http://localhost:8080"`
		Timeout time.Duration `yaml:"timeout" env:"TIMEOUT" env-default:"10s"`
		// Token is sent as a bearer token when no caller token is forwarded
		Token string `yaml:"token" env:"TOKEN"`
	}

	Transfer struct {
		PollInterval    time.Duration `yaml:"poll_interval" env:"POLL_INTERVAL" env-default:"2s"`
		MaxAttempts     int           `yaml:"max_attempts" env:"MAX_ATTEMPTS" env-default:"60"`
		SelectionPolicy string        `yaml:"selection_policy" env:"SELECTION_POLICY" env-default:"first-fit"`
		FeePrivate      bool          `yaml:"fee_private" env:"FEE_PRIVATE" env-default:"true"`
	}

	Flipt struct {
		URL       string `yaml:"url" env:"URL"`
		Namespace string `yaml:"namespace" env:"NAMESPACE" env-default:"default"`
	}

	Auth struct {
		JWKSURL string `yaml:"jwks_url" env:"JWKS_URL"`
	}

	RateLimit struct {
		RPS   float64 `yaml:"rps" env:"RPS" env-default:"20"`
		Burst int     `yaml:"burst" env:"BURST" env-default:"40"`
	}

	Log struct {
		Level string `yaml:"level" env:"LEVEL" env-default:"info"`
	}
)

var (
	instance *Config
	once     sync.Once
)

// GetConfig reads config from file or environment variables
func GetConfig(path string) (*Config, error) {
	var err error

	once.Do(func() {
		instance = &Config{}

		if err = cleanenv.ReadConfig(path, instance); err != nil {
			err = fmt.Errorf("config error: %w", err)
			return
		}

		err = instance.Validate()
	})

	if err != nil {
		return nil, err
	}

	return instance, nil
}

// Validate checks values cleanenv cannot constrain
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("config error: unsupported database driver %q", c.Database.Driver)
	}
	switch c.Transfer.SelectionPolicy {
	case "first-fit", "best-fit":
	default:
		return fmt.Errorf("config error: unknown selection policy %q", c.Transfer.SelectionPolicy)
	}
	if c.Transfer.MaxAttempts <= 0 {
		return fmt.Errorf("config error: transfer.max_attempts must be positive")
	}
	return nil
}
