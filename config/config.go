package config

import (
	"io"
	"net/url"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/juju/errors"

	"github.com/9seconds/geosuggest/geosuggest"
)

const (
	DefaultTimeout           = 10 * time.Second
	DefaultUserAgent         = "geosuggest/" + Version
	DefaultRateLimitInterval = 100 * time.Millisecond
	DefaultRateLimitBurst    = 10

	Version = "1.0.0"
)

type duration struct {
	time.Duration
}

func (dur *duration) UnmarshalText(text []byte) (err error) {
	dur.Duration, err = time.ParseDuration(string(text))
	return
}

// Config is a content of the optional configuration file. Any value
// can be overridden by a command line flag.
type Config struct {
	APIKey            string   `toml:"apikey"`
	Endpoint          string   `toml:"endpoint"`
	Language          string   `toml:"language"`
	Timeout           duration `toml:"timeout"`
	UserAgent         string   `toml:"user_agent"`
	RateLimitInterval duration `toml:"rate_limit_interval"`
	RateLimitBurst    int      `toml:"rate_limit_burst"`
}

func (c *Config) GetEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}

	return geosuggest.DefaultEndpoint
}

func (c *Config) GetTimeout() time.Duration {
	if c.Timeout.Duration == 0 {
		return DefaultTimeout
	}

	return c.Timeout.Duration
}

func (c *Config) GetUserAgent() string {
	if c.UserAgent != "" {
		return c.UserAgent
	}

	return DefaultUserAgent
}

func (c *Config) GetRateLimitInterval() time.Duration {
	if c.RateLimitInterval.Duration == 0 {
		return DefaultRateLimitInterval
	}

	return c.RateLimitInterval.Duration
}

func (c *Config) GetRateLimitBurst() int {
	if c.RateLimitBurst == 0 {
		return DefaultRateLimitBurst
	}

	return c.RateLimitBurst
}

// Default returns a config which is used if no file is given.
func Default() *Config {
	return &Config{}
}

func Parse(reader io.Reader) (*Config, error) {
	conf := &Config{}

	buf, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Annotate(err, "Cannot read config file")
	}

	if _, err := toml.Decode(string(buf), conf); err != nil {
		return nil, errors.Annotate(err, "Cannot parse config file")
	}

	if err = Validate(conf); err != nil {
		return nil, errors.Annotate(err, "Invalid value")
	}

	return conf, nil
}

// Validate checks values which may come both from the file and from
// the command line.
func Validate(conf *Config) error {
	if conf.Timeout.Duration < 0 {
		return errors.NotValidf("timeout %s", conf.Timeout.Duration)
	}

	if conf.RateLimitInterval.Duration < 0 {
		return errors.NotValidf("rate limit interval %s", conf.RateLimitInterval.Duration)
	}

	if conf.RateLimitBurst < 0 {
		return errors.NotValidf("rate limit burst %d", conf.RateLimitBurst)
	}

	if conf.Language != "" && len(conf.Language) != 2 {
		return errors.NotValidf("language %q", conf.Language)
	}

	endpoint, err := url.Parse(conf.GetEndpoint())
	if err != nil {
		return errors.Annotatef(err, "Incorrect endpoint %s", conf.GetEndpoint())
	}

	if (endpoint.Scheme != "http" && endpoint.Scheme != "https") || endpoint.Host == "" {
		return errors.NotValidf("endpoint %s", conf.GetEndpoint())
	}

	return nil
}

// SetTimeout sets a timeout which is given outside of the file.
func (c *Config) SetTimeout(value time.Duration) {
	c.Timeout.Duration = value
}
