// Package config provides configuration management for the division service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from the `default` struct tags of each
// section.
//
// # Configuration Structure
//
//   - Server: HTTP port and API key
//   - Dataset: source of the revision tables (embedded, dir, bucket) and column layout
//   - Storage: S3/MinIO credentials and bucket for the bucket source
//   - Database: export target (mysql or sqlite)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Dataset.Source)
package config
