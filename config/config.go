package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

const (
	DefaultBucketName = "production-cb-offergenerator"
	DefaultRegion     = "eu-west-2"
	DefaultProfile    = "production"
	DefaultLocalPath  = "./downloads"
)

type Config struct {
	ApiURL     string
	AccessKey  string
	SecretKey  string
	Profile    string
	BucketName string
	Region     string
	LocalPath  string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn(".env file not found, using environment variables only")
	}

	config := &Config{
		ApiURL:     getEnv("API_URL", ""),
		AccessKey:  getEnv("ACCESS_KEY", ""),
		SecretKey:  getEnv("SECRET_KEY", ""),
		Profile:    getEnv("AWS_PROFILE", DefaultProfile),
		BucketName: getEnv("BUCKET_NAME", DefaultBucketName),
		Region:     getEnv("REGION", DefaultRegion),
		LocalPath:  getEnv("LOCAL_PATH", DefaultLocalPath),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
