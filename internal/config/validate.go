package config

import "fmt"

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in [1,65535] (got %d)", c.Server.Port)
	}
	if c.Server.RatePerMinute < 0 {
		return fmt.Errorf("server.rate_per_minute must be >= 0 (got %d)", c.Server.RatePerMinute)
	}
	if c.Engine.DefaultCutoff < 0 || c.Engine.DefaultCutoff > 100 {
		return fmt.Errorf("engine.default_cutoff must be in [0,100] (got %d)", c.Engine.DefaultCutoff)
	}
	if c.Engine.MaxUploadBytes <= 0 {
		return fmt.Errorf("engine.max_upload_bytes must be > 0 (got %d)", c.Engine.MaxUploadBytes)
	}
	if c.Engine.CacheSize < 0 {
		return fmt.Errorf("engine.cache_size must be >= 0 (got %d)", c.Engine.CacheSize)
	}
	return nil
}
