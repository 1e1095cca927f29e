package tracker

import (
	"os"
	"time"

	"electiontracker/lib/configutil"
	"electiontracker/lib/scrapers/ballotpedia"
	"electiontracker/lib/timezone"

	"dario.cat/mergo"
)

type ScrapeConfig struct {
	// BaseURL overrides the source host, empty means the real one.
	BaseURL string `json:"base_url"`
	// RequestDelay is the politeness delay between fetches, in seconds.
	RequestDelay float64 `json:"request_delay"`
	// Timeout bounds a single fetch, in seconds.
	Timeout float64 `json:"timeout"`
	// MaxRetries bounds retry-with-backoff on transient fetch failures.
	MaxRetries int `json:"max_retries"`
	// DebugDir, when set, dumps all scrape traffic there.
	DebugDir string `json:"debug_dir"`
}

type Config struct {
	DataDir string       `json:"data_dir"`
	Port    int          `json:"port"`
	Scrape  ScrapeConfig `json:"scrape"`
	Years   []int        `json:"years"`
	States  []string     `json:"states"`
}

func DefaultConfig() Config {
	currentYear := timezone.Now().Year()
	years := make([]int, 0, 7)
	for y := currentYear; y < currentYear+7; y++ {
		years = append(years, y)
	}

	return Config{
		DataDir: "data",
		Port:    4000,
		Scrape: ScrapeConfig{
			RequestDelay: 2,
			Timeout:      10,
			MaxRetries:   3,
		},
		Years:  years,
		States: ballotpedia.PriorityStates,
	}
}

// LoadConfig reads a config file and backfills unset fields from the
// defaults. A missing file yields the defaults outright. Backfilling is
// zero-value based, so an explicit `request_delay: 0` or `port: 0` is
// indistinguishable from an omitted field and comes back as the default.
// The politeness delay is mandatory, a zero delay cannot be configured.
func LoadConfig(path string) (Config, error) {
	cfg, err := configutil.ReadConfig[Config](path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, err
	}

	err = mergo.Merge(&cfg, DefaultConfig())
	if err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c ScrapeConfig) clientOptions() ballotpedia.ClientOptions {
	return ballotpedia.ClientOptions{
		BaseURL:  c.BaseURL,
		Delay:    time.Duration(c.RequestDelay * float64(time.Second)),
		Timeout:  time.Duration(c.Timeout * float64(time.Second)),
		Retries:  c.MaxRetries,
		DebugDir: c.DebugDir,
	}
}
