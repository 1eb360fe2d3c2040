package config

import (
	"sync"
	"time"

	"github.com/spf13/viper"
)

// StorageConfiguration defines the document storage backend settings.
// Backend is either "local" or "s3"; the s3 settings follow the MinIO
// client conventions (endpoint without scheme).
type StorageConfiguration struct {
	Backend      string
	LocalDir     string
	S3Endpoint   string
	S3AccessKey  string
	S3SecretKey  string
	S3Region     string
	S3Bucket     string
	S3UseSSL     bool
	StoreTimeout time.Duration
}

var (
	storageConfigOnce sync.Once
	storageConfig     *StorageConfiguration
)

// StorageConfig returns the document storage configurations
func StorageConfig() *StorageConfiguration {
	storageConfigOnce.Do(func() {
		viper.SetDefault("STORAGE_BACKEND", "local")
		viper.SetDefault("STORAGE_LOCAL_DIR", "./uploads")
		viper.SetDefault("STORAGE_S3_ENDPOINT", "localhost:9000")
		viper.SetDefault("STORAGE_S3_REGION", "us-east-1")
		viper.SetDefault("STORAGE_S3_BUCKET", "verification-documents")
		viper.SetDefault("STORAGE_S3_USE_SSL", true)
		viper.SetDefault("STORAGE_TIMEOUT", 30)

		storageConfig = &StorageConfiguration{
			Backend:      viper.GetString("STORAGE_BACKEND"),
			LocalDir:     viper.GetString("STORAGE_LOCAL_DIR"),
			S3Endpoint:   viper.GetString("STORAGE_S3_ENDPOINT"),
			S3AccessKey:  viper.GetString("STORAGE_S3_ACCESS_KEY"),
			S3SecretKey:  viper.GetString("STORAGE_S3_SECRET_KEY"),
			S3Region:     viper.GetString("STORAGE_S3_REGION"),
			S3Bucket:     viper.GetString("STORAGE_S3_BUCKET"),
			S3UseSSL:     viper.GetBool("STORAGE_S3_USE_SSL"),
			StoreTimeout: time.Duration(viper.GetInt("STORAGE_TIMEOUT")) * time.Second,
		}
	})
	return storageConfig
}
