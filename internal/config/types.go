package config

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int            `yaml:"port"`
	DSN            string         `yaml:"dsn"` // MySQL DSN, overrides Database when set
	Database       DatabaseConfig `yaml:"database"`
	Env            string         `yaml:"env"` // "development" | "production"
	JWTSecret      string         `yaml:"jwt_secret"`
	PlatformDomain string         `yaml:"platform_domain"` // apex domain for tenant subdomains
	AllowedOrigins []string       `yaml:"allowed_origins"`
}

// DatabaseConfig assembles a DSN from parts when no full DSN is given.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Charset  string `yaml:"charset"`
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env != "production" }
