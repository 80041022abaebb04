// Package config provides configuration management for the image proxy.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Every field of the nested structs is registered as a
// default from its `default` tag, so each one can be overridden by an
// environment variable named after its path (e.g. supabase.url -> SUPABASE_URL).
//
// # Configuration Structure
//
//   - Server: HTTP port and timeouts
//   - Storage: Supabase URL, service role key, default bucket and driver settings
//   - Log: Logging level and format
//   - Metrics: Prometheus endpoint
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Storage.Bucket())
package config
