// Package config provides configuration management for the Brick Manager.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: mapping database connection details
//   - Redis: shared rate-limit backend connection
//   - Storage: S3/MinIO credentials for manifest archiving
//   - CatalogAPI: upstream part catalog base URL and key
//   - RateLimit: validation endpoint windows and ceilings
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
