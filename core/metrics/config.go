package metrics

// Config holds configuration for the metrics endpoint.
type Config struct {
	// Enabled exposes the Prometheus endpoint.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Path is the route serving the metrics.
	Path string `mapstructure:"path" default:"/metrics"`
}
