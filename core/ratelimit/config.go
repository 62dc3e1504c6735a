package ratelimit

// Config holds the rate-limit windows enforced on the validation endpoint.
type Config struct {
	// WindowSeconds is the fixed window length.
	WindowSeconds int `mapstructure:"window_seconds" default:"60"`
	// MaxHits is the per-caller ceiling within one window.
	MaxHits int `mapstructure:"max_hits" default:"30"`
	// GlobalMaxHits is the all-callers ceiling within one window.
	GlobalMaxHits int `mapstructure:"global_max_hits" default:"300"`
}
