package colony

import "strconv"

// Config controls grid dimensions and how the generator populates it.
type Config struct {
	Size  int   `yaml:"size" mapstructure:"size"`
	Bases int   `yaml:"bases" mapstructure:"bases"`
	Seed  int64 `yaml:"seed" mapstructure:"seed"`

	// MaxAttempts caps the random draws spent looking for each base.
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:        10,
		Bases:       1,
		Seed:        1337,
		MaxAttempts: 10000,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse or fall out of range keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns a copy of c with the recognised keys of cfg applied on top.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["bases"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Bases = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["max_attempts"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxAttempts = parsed
		}
	}
	return c
}
