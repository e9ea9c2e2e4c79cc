package domain

// Config holds the server configuration loaded from serv.yaml, with defaults
// applied for every unset field.
type Config struct {
	// Port is the TCP port the development server listens on.
	Port int

	// Root is the project root directory served and watched.
	Root string

	// WatchIgnore lists directory names excluded from file watching.
	WatchIgnore []string

	// CacheCapacity bounds the rewrite cache entry count.
	CacheCapacity int

	// DebounceMillis is the watcher debounce window in milliseconds.
	DebounceMillis int
}

// Defaults for unset configuration fields.
const (
	DefaultPort           = 3000
	DefaultCacheCapacity  = 1000
	DefaultDebounceMillis = 50
)

// ApplyDefaults fills zero-valued fields with their defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Root == "" {
		c.Root = "."
	}
	if c.CacheCapacity == 0 {
		c.CacheCapacity = DefaultCacheCapacity
	}
	if c.DebounceMillis == 0 {
		c.DebounceMillis = DefaultDebounceMillis
	}
}
