package store

import (
	"time"

	"wordguard/internal/platform/config"
	"wordguard/internal/platform/store/ch"
)

// Config selects and configures backends
type Config struct {
	PG PGConfig
	CH CHConfig
}

// PGConfig configures Postgres
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int
	AppName     string

	ConnectRetries int
	PingTimeout    time.Duration
}

// CHConfig configures ClickHouse
type CHConfig struct {
	Enabled bool
	ch.Config
}

// FromConfig reads PG_* and CH_* keys. A backend is enabled when its address is set
func FromConfig(c config.Conf, role string) Config {
	pg := c.Prefix("PG_")
	cc := c.Prefix("CH_")
	url := pg.MayString("URL", "")
	addr := ch.SplitAddr(cc.MayString("ADDR", ""))
	return Config{
		PG: PGConfig{
			Enabled:        url != "",
			URL:            url,
			MaxConns:       int32(pg.MayInt("MAX_CONNS", 8)),
			LogSQL:         pg.MayBool("LOG_SQL", false),
			SlowQueryMs:    pg.MayInt("SLOW_MS", 200),
			AppName:        "wordguard-" + role,
			ConnectRetries: pg.MayInt("CONNECT_RETRIES", 20),
			PingTimeout:    pg.MayDuration("PING_TIMEOUT", 3*time.Second),
		},
		CH: CHConfig{
			Enabled: len(addr) > 0,
			Config: ch.Config{
				Addr:     addr,
				Database: cc.MayString("DATABASE", "wordguard"),
				User:     cc.MayString("USER", "default"),
				Password: cc.MayString("PASSWORD", ""),
				Role:     role,
				Timeout:  cc.MayDuration("DIAL_TIMEOUT", 5*time.Second),
			},
		},
	}
}
