package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Settings struct {
	MariaDBDSN      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ServerPort      int

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string
	PublicBaseURL  string

	JWTSecret     string
	AdminEmail    string
	AdminPassword string

	RedisAddr     string
	RedisPassword string

	FFmpegBin string
}

func Load() (*Settings, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found; proceeding with OS environment variables")
	}

	viper.AutomaticEnv()

	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	required := []string{
		"MARIADB_DSN",
		"MARIADB_MAX_OPEN_CONN",
		"MARIADB_MAX_IDLE_CONNS",
		"MARIADB_CONN_MAX_LIFETIME",
		"SERVER_PORT",
		"MINIO_ENDPOINT",
		"MINIO_ACCESS_KEY",
		"MINIO_SECRET_KEY",
		"MINIO_BUCKET",
		"JWT_SECRET",
	}
	for _, key := range required {
		if !viper.IsSet(key) {
			return nil, fmt.Errorf("%s is required", key)
		}
	}

	viper.SetDefault("FFMPEG_BIN", "ffmpeg")

	return &Settings{
		MariaDBDSN:      viper.GetString("MARIADB_DSN"),
		MaxOpenConns:    viper.GetInt("MARIADB_MAX_OPEN_CONN"),
		MaxIdleConns:    viper.GetInt("MARIADB_MAX_IDLE_CONNS"),
		ConnMaxLifetime: time.Duration(viper.GetInt("MARIADB_CONN_MAX_LIFETIME")) * time.Second,
		ServerPort:      viper.GetInt("SERVER_PORT"),
		MinioEndpoint:   viper.GetString("MINIO_ENDPOINT"),
		MinioAccessKey:  viper.GetString("MINIO_ACCESS_KEY"),
		MinioSecretKey:  viper.GetString("MINIO_SECRET_KEY"),
		MinioUseSSL:     viper.GetBool("MINIO_USE_SSL"),
		MinioBucket:     viper.GetString("MINIO_BUCKET"),
		PublicBaseURL:   viper.GetString("PUBLIC_BASE_URL"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		AdminEmail:      viper.GetString("ADMIN_EMAIL"),
		AdminPassword:   viper.GetString("ADMIN_PASSWORD"),
		RedisAddr:       viper.GetString("REDIS_ADDR"),
		RedisPassword:   viper.GetString("REDIS_PASSWORD"),
		FFmpegBin:       viper.GetString("FFMPEG_BIN"),
	}, nil
}
