package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Settings struct {
	AppName string `envconfig:"APP_NAME" default:"shoppingify-api"`
	Debug   bool   `envconfig:"DEBUG" default:"false"`
	Host    string `envconfig:"HOST" default:"0.0.0.0"`
	Port    int    `envconfig:"PORT" default:"8080"`

	// Public prefix for image URLs, e.g. "http://localhost:8080/"
	Domain    string `envconfig:"DOMAIN" default:"http://localhost:8080/"`
	UploadDir string `envconfig:"UPLOAD_DIR" default:"static"`

	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBName     string `envconfig:"DB_NAME" default:"shoppingify"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`

	JWTSecret      string `envconfig:"JWT_SECRET" default:"change-me"`
	JWTExpireHours int    `envconfig:"JWT_EXPIRE_HOURS" default:"72"`

	// Optional; when S3Bucket is set images go to S3 instead of local disk.
	S3Bucket string `envconfig:"S3_BUCKET"`
	S3Region string `envconfig:"S3_REGION"`
}

var C Settings

func Load() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	if err := envconfig.Process("", &C); err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
}
