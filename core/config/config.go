package config

import (
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"china-division/core/database"
	"china-division/core/dataset"
	"china-division/core/logger"
	"china-division/core/server"
	"china-division/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio).
	Storage storage.Config `mapstructure:"storage"`
	// Dataset selects where revision tables are loaded from.
	Dataset dataset.Config `mapstructure:"dataset"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the export database connection.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and the .env file
// in path, then validates it.
func LoadConfig(path string) (*Config, error) {
	envPath := filepath.Join(path, ".env")

	// A missing .env is normal outside development.
	_ = godotenv.Overload(envPath)

	v := viper.New()
	bindValues(v, Config{}, "")

	// DATASET_SOURCE -> dataset.source
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks settings that would otherwise fail late at load time.
func (c *Config) Validate() error {
	if !c.Dataset.IsValidSource() {
		return fmt.Errorf("invalid dataset source %q (want embedded, dir or bucket)", c.Dataset.Source)
	}
	if c.Dataset.CodeColumn < 0 || c.Dataset.NameColumn < 0 || c.Dataset.CodeColumn == c.Dataset.NameColumn {
		return fmt.Errorf("invalid dataset columns: code=%d name=%d", c.Dataset.CodeColumn, c.Dataset.NameColumn)
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Registering every key, even with an empty default, lets AutomaticEnv see it.
		v.SetDefault(key, defaultValue)
	}
}
