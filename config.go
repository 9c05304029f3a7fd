package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"gopkg.in/yaml.v2"
)

const defaultConfigFile = "lumen.yaml"

type config struct {
	LogLevel    string `yaml:"log-level"`
	ColorTraces bool   `yaml:"color-traces"`
	HistoryFile string `yaml:"history-file"`
}

func defaultConfig() config {
	return config{
		LogLevel:    "INFO",
		ColorTraces: true,
	}
}

// loadConfig reads path over the defaults. An empty path means defaults
// only; no file is looked up implicitly.
func loadConfig(path string) (config, error) {
	conf := defaultConfig()
	if path == "" {
		return conf, nil
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return conf, fmt.Errorf("error reading %s: %w", path, err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return conf, fmt.Errorf("error reading %s: %w", path, err)
	}

	return conf, nil
}

// apply configures logging. Logs go to stderr so program output on stdout
// stays clean.
func (c config) apply() error {
	level, err := capnslog.ParseLevel(strings.ToUpper(c.LogLevel))
	if err != nil {
		return fmt.Errorf("bad log level %q: %w", c.LogLevel, err)
	}

	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, false))
	capnslog.SetGlobalLogLevel(level)

	return nil
}
