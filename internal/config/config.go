package config

import (
	"crypto/rsa"
	"encoding/base64"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"

	"github.com/ameyclubrealty/clubrealty-admin-api/internal/utils"
)

const AppName = "clubrealty-admin-api"

type Config struct {
	AppName string
	AppPort string
	AppURL  string // allowed CORS origin (the admin SPA)

	// Document store
	MongoURI      string
	MongoDatabase string

	// Auth
	RSAPrivateKey      *rsa.PrivateKey
	RSAPublicKey       *rsa.PublicKey
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration

	// Blob storage
	S3Bucket          string
	S3Region          string
	S3Endpoint        string // optional: DO Spaces, R2, MinIO
	S3AccessKeyID     string
	S3SecretAccessKey string

	// Seed admin, created on first boot when the collection is empty
	SeedAdminEmail    string
	SeedAdminPassword string
	SeedAdminName     string

	MaxUploadBytes int64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.Logger.Info("No .env file found, using system environment variables")
	}

	utils.Logger.Info("Loading config for app: ", AppName)

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		utils.Logger.Fatal("MONGODB_URI env var is missing")
	}

	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		utils.Logger.Fatal("APP_URL env var is missing")
	}

	priv := parseRSAPrivateKey("JWT_PRIVATE_KEY_B64")
	pub := parseRSAPublicKey("JWT_PUBLIC_KEY_B64")

	bucket := os.Getenv("S3_BUCKET")
	if bucket == "" {
		utils.Logger.Fatal("S3_BUCKET env var is missing")
	}
	region := os.Getenv("S3_REGION")
	if region == "" {
		utils.Logger.Fatal("S3_REGION env var is missing")
	}
	accessKey := os.Getenv("S3_ACCESS_KEY_ID")
	secretKey := os.Getenv("S3_SECRET_ACCESS_KEY")
	if accessKey == "" || secretKey == "" {
		utils.Logger.Fatal("S3_ACCESS_KEY_ID / S3_SECRET_ACCESS_KEY env vars are missing")
	}

	seedEmail := os.Getenv("SEED_ADMIN_EMAIL")
	seedPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if seedEmail == "" || seedPassword == "" {
		utils.Logger.Fatal("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD env vars are missing")
	}

	cfg := &Config{
		AppName:            AppName,
		AppPort:            getEnv("APP_PORT", "8080"),
		AppURL:             appURL,
		MongoURI:           mongoURI,
		MongoDatabase:      getEnv("MONGODB_DATABASE", "clubrealty"),
		RSAPrivateKey:      priv,
		RSAPublicKey:       pub,
		AccessTokenExpiry:  getDurationEnv("ACCESS_TOKEN_EXPIRY", 15*time.Minute),
		RefreshTokenExpiry: getDurationEnv("REFRESH_TOKEN_EXPIRY", 30*24*time.Hour),
		S3Bucket:           bucket,
		S3Region:           region,
		S3Endpoint:         os.Getenv("S3_ENDPOINT"),
		S3AccessKeyID:      accessKey,
		S3SecretAccessKey:  secretKey,
		SeedAdminEmail:     seedEmail,
		SeedAdminPassword:  seedPassword,
		SeedAdminName:      getEnv("SEED_ADMIN_NAME", "Administrator"),
		MaxUploadBytes:     getInt64Env("MAX_UPLOAD_MB", 10) * 1024 * 1024,
	}

	utils.Logger.Infof("Loaded config for %s", AppName)
	return cfg
}

func parseRSAPrivateKey(envVar string) *rsa.PrivateKey {
	raw := os.Getenv(envVar)
	if raw == "" {
		utils.Logger.Fatalf("%s env var is missing", envVar)
	}
	pemBytes, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s is not valid base64", envVar)
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s is not a valid RSA private key", envVar)
	}
	return key
}

func parseRSAPublicKey(envVar string) *rsa.PublicKey {
	raw := os.Getenv(envVar)
	if raw == "" {
		utils.Logger.Fatalf("%s env var is missing", envVar)
	}
	pemBytes, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s is not valid base64", envVar)
	}
	key, err := jwt.ParseRSAPublicKeyFromPEM(pemBytes)
	if err != nil {
		utils.Logger.WithError(err).Fatalf("%s is not a valid RSA public key", envVar)
	}
	return key
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		utils.Logger.Warnf("Invalid %s %q, using default %s", key, v, fallback)
		return fallback
	}
	return d
}

func getInt64Env(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		utils.Logger.Warnf("Invalid %s %q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
