package config

import (
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	Port          string `env:"PORT,default=3000"`
	CookieSecret  string `env:"COOKIE_SECRET,default=secret"`
	DataDir       string `env:"DATA_DIR,default=."`
	PublicDir     string `env:"PUBLIC_DIR,default=./public"`
	SessionStrict bool   `env:"SESSION_STRICT,default=false"`
}

func Load() (Config, error) {
	if _, productionExists := os.LookupEnv("PRODUCTION"); !productionExists {
		log.Println("Not in production environment; loading local .env file")
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
