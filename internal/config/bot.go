package config

import "time"

// Bot: без токена отчёты пишутся в лог, без AdminID команды не принимаются.
type Bot struct {
	Token          string        `env:"BOT_TOKEN" json:"-"`
	ChatID         int64         `env:"BOT_CHAT_ID"`
	AdminID        int64         `env:"BOT_ADMIN_ID"`
	ReportInterval time.Duration `env:"REPORT_INTERVAL" envDefault:"0s"`
	ReportSchedule string        `env:"REPORT_SCHEDULE"`
}
