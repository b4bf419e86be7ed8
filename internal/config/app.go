package config

import "time"

type App struct {
	Name            string        `env:"APP_NAME" envDefault:"dnf_market"`
	Version         string        `env:"APP_VERSION" envDefault:"dev"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:":8080"`
	ProbeAddr       string        `env:"PROBE_ADDR" envDefault:":8081"`
	MetricsAddr     string        `env:"METRICS_ADDR" envDefault:":9090"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	AllowedOrigins  []string      `env:"ALLOWED_ORIGINS" envDefault:"http://localhost:5173,http://localhost:3000" envSeparator:","`
	LogFieldMaxLen  int           `env:"LOG_FIELD_MAX_LEN" envDefault:"4096"`
	CatalogSource   string        `env:"CATALOG_SOURCE" envDefault:"embedded"`
}
