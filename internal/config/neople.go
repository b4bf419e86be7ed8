package config

import "time"

type Neople struct {
	APIKey         string        `env:"NEOPLE_API_KEY,notEmpty" json:"-"`
	BaseURL        string        `env:"NEOPLE_API_BASE_URL" envDefault:"https://api.neople.co.kr/df"`
	RequestTimeout time.Duration `env:"NEOPLE_REQUEST_TIMEOUT" envDefault:"30s"`
	SaleLimit      int           `env:"NEOPLE_SALE_LIMIT" envDefault:"100"`
	RecentWindow   int           `env:"NEOPLE_RECENT_WINDOW" envDefault:"10"`
	MaxConcurrency int           `env:"NEOPLE_MAX_CONCURRENCY" envDefault:"8"`
	CacheTTL       time.Duration `env:"NEOPLE_CACHE_TTL" envDefault:"5m"` // 0 отключает кэш
}
