package config

import (
	"log"
	"reflect"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v6"

	"github.com/tonkeeper/wallet-activity/pkg/addressbook"
)

type Config struct {
	API struct {
		Port      int           `env:"PORT" envDefault:"8081"`
		CacheSize int           `env:"CACHE_SIZE" envDefault:"10000"`
		CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"10s"`
	}
	App struct {
		LogLevel    string   `env:"LOG_LEVEL" envDefault:"INFO"`
		MetricsPort int      `env:"METRICS_PORT" envDefault:"9010"`
		Timezone    timezone `env:"TIMEZONE" envDefault:"UTC"`
		DefaultLang string   `env:"DEFAULT_LANG" envDefault:"en"`
		SpamFilter  bool     `env:"SPAM_FILTER" envDefault:"true"`
		SentryDSN   string   `env:"SENTRY_DSN"`
	}
	TonAPI struct {
		URL      string `env:"TONAPI_URL" envDefault:"https://tonapi.io"`
		Token    string `env:"TONAPI_TOKEN"`
		Attempts uint   `env:"TONAPI_ATTEMPTS" envDefault:"3"`
		RPS      int    `env:"TONAPI_RPS" envDefault:"0"`
	}
	AddressBook struct {
		Path     string `env:"ADDRESS_BOOK_PATH"`
		Disabled bool   `env:"ADDRESS_BOOK_DISABLED" envDefault:"false"`
	}
}

type timezone struct {
	*time.Location
}

func Load() Config {
	c, err := parse()
	if err != nil {
		log.Panicf("[‼️  Config parsing failed] %+v\n", err)
	}
	return c
}

func parse() (Config, error) {
	var c Config
	if err := env.ParseWithFuncs(&c, map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(timezone{}): func(v string) (interface{}, error) {
			location, err := time.LoadLocation(v)
			if err != nil {
				return nil, err
			}
			return timezone{location}, nil
		}}); err != nil {
		return Config{}, err
	}
	if c.AddressBook.Path == "" {
		c.AddressBook.Path = addressbook.DefaultAddressPath
	}
	return c, nil
}
