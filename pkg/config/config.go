package config

import (
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[fxquery]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"30"`
	Window      time.Duration `envconfig:"WINDOW" default:"1s"`
}

//revive:disable
type ExchangeRateApi struct {
	ApiKey string `envconfig:"API_KEY"`
	ApiUrl string `envconfig:"API_URL" default:"https://v6.exchangerate-api.com/v6"`
	// HTTPTimeout of zero keeps the transport defaults.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"0s"`
}

//revive:enable

// Converter holds the settings a host would otherwise keep for the
// plugin.
type Converter struct {
	FavoriteCurrencies string `envconfig:"FAVORITE_CURRENCIES" default:"USD,EUR"`
}

type App struct {
	Env             string           `envconfig:"APP_ENV" default:"development"`
	Server          *Server          `envconfig:"SERVER"`
	Log             *Log             `envconfig:"LOG"`
	RateLimit       *RateLimit       `envconfig:"RATE_LIMIT"`
	ExchangeRateApi *ExchangeRateApi `envconfig:"EXCHANGE_RATE"`
	Converter       *Converter       `envconfig:"CONVERTER"`
}
