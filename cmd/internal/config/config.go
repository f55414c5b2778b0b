package config

import (
	"context"
	"os"
	"strconv"

	"brainagro/cmd/internal/domain/database"
	"brainagro/cmd/internal/utils/uid"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

const EnvProduction = "production"

type AppConfig struct {
	Env             string
	Port            string
	DBDriver        string
	DBDSN           string
	SeedStates      bool
	MachineID       int64
	MinhaReceitaURL string
}

// Load fills the process environment (AWS SSM in production, .env
// otherwise) and reads the config out of it.
func Load(ctx context.Context) (AppConfig, error) {
	if os.Getenv("GO_ENV") == EnvProduction {
		if err := loadProdEnv(ctx); err != nil {
			return AppConfig{}, err
		}
	} else if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}
	return FromEnv(), nil
}

// FromEnv reads the config from the current environment, applying defaults.
func FromEnv() AppConfig {
	return AppConfig{
		Env:             get("GO_ENV", "development"),
		Port:            get("PORT", "7070"),
		DBDriver:        get("DB_DRIVER", database.DriverSQLite),
		DBDSN:           get("DB_DSN", ""),
		SeedStates:      getBool("SEED_STATES", true),
		MachineID:       getInt("MACHINE_ID", uid.DefaultMachineID),
		MinhaReceitaURL: get("MINHARECEITA_URL", ""),
	}
}

func (c AppConfig) Database() database.Config {
	return database.Config{
		Driver:     c.DBDriver,
		DSN:        c.DBDSN,
		SeedStates: c.SeedStates,
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getInt(key string, def int64) int64 {
	v, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		log.Debugf("using default %s=%d", key, def)
		return def
	}
	return v
}
