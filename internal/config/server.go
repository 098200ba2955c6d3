package config

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	HTTP HTTPConfig `yaml:"http"`
}

// HTTPConfig holds the HTTP listener settings.
type HTTPConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
	// AllowOrigins lists the CORS origins permitted to send credentials.
	AllowOrigins []string `yaml:"allow_origins"`
}
