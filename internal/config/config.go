package config

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/stahnma/github-explorer/internal/errors"
)

const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"

	DefaultAPIBaseURL = "https://api.github.com/"
	DefaultListenAddr = "localhost:8080"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	GitHubToken string
	APIBaseURL  string
	StorageType string
	StoragePath string
	ListenAddr  string
	DebugMode   bool

	S3Bucket    string
	S3ObjectKey string
	AWSRegion   string
}

// LoadDotEnv reads KEY=value pairs from the given files (".env" when none
// are given) into the process environment. Missing files are ignored and
// variables already set win.
func LoadDotEnv(filenames ...string) {
	if len(filenames) == 0 {
		filenames = []string{".env"}
	}
	for _, f := range filenames {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		_ = godotenv.Load(f)
	}
}

// FromEnvironment creates a Config from environment variables.
func FromEnvironment() Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("GITHUB_API_URL", DefaultAPIBaseURL)
	v.SetDefault("STORAGE_TYPE", StorageFile)
	v.SetDefault("LISTEN_ADDR", DefaultListenAddr)

	cfg := Config{
		GitHubToken: v.GetString("GITHUB_TOKEN"),
		APIBaseURL:  v.GetString("GITHUB_API_URL"),
		StorageType: strings.ToLower(v.GetString("STORAGE_TYPE")),
		StoragePath: v.GetString("STORAGE_PATH"),
		ListenAddr:  v.GetString("LISTEN_ADDR"),
		DebugMode:   truthy(v.GetString("DEBUG")),
		S3Bucket:    v.GetString("S3_BUCKET_NAME"),
		S3ObjectKey: v.GetString("S3_OBJECT_KEY"),
		AWSRegion:   v.GetString("AWS_REGION"),
	}
	if cfg.StoragePath == "" {
		cfg.StoragePath = DefaultStoragePath(cfg.StorageType)
	}
	return cfg
}

// DefaultStoragePath returns the store location used when STORAGE_PATH is
// unset. Under Lambda only the temp directory is writable.
func DefaultStoragePath(storageType string) string {
	name := "github-explorer.gob"
	if storageType == StorageSQLite {
		name = "github-explorer.db"
	}
	if os.Getenv("LAMBDA_TASK_ROOT") != "" {
		return filepath.Join(os.TempDir(), name)
	}
	return name
}

// Validate checks the fields that have a fixed set of legal values.
func (c Config) Validate() error {
	if c.StorageType != StorageFile && c.StorageType != StorageSQLite {
		return apperrors.NewConfigError("STORAGE_TYPE", "must be 'file' or 'sqlite'")
	}
	if c.StoragePath == "" {
		return apperrors.NewConfigError("STORAGE_PATH", "must not be empty")
	}
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return apperrors.NewConfigError("GITHUB_API_URL", "must be an absolute URL")
	}
	return nil
}

func truthy(s string) bool {
	return s != "" && s != "0" && strings.ToLower(s) != "false"
}
