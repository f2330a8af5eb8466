package config

import "github.com/kelseyhightower/envconfig"

// Config is the runtime configuration loaded from CROSSPOST_* environment
// variables. The core converters receive values from here at construction;
// they never read the environment themselves.
type Config struct {
	BlogBaseURL  string `split_words:"true" default:"https://blog.secure-auto-lab.com"`
	ZennBaseURL  string `split_words:"true" default:"https://zenn.dev"`
	ZennUsername string `split_words:"true" default:"tinou"`
	Author       string `default:"tinou"`
	HistoryPath  string `split_words:"true" default:"crosspost.db"`
	LogLevel     string `split_words:"true" default:"info"`
	LogFormat    string `split_words:"true" default:"console"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("crosspost", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
