package catalogapi

// Config holds configuration for the external catalog service client.
type Config struct {
	// BaseURL is the root URL of the catalog service.
	BaseURL string `mapstructure:"base_url" default:"https://api.bricklink.example"`
	// ApiKey is the bearer token for the catalog service.
	ApiKey string `mapstructure:"api_key" default:""`
	// TimeoutSeconds bounds every outbound call.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
}
