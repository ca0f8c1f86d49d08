package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/bufbuild/protocst/lexer"
)

const defaultConfigFile = ".protocst.toml"

// config is read from a TOML file. Flags given on the command line take
// precedence over it.
type config struct {
	// TabWidth is the tab stop used for column numbers.
	TabWidth int `toml:"tab_width"`
	// Format is the output format of the tokens command, "yaml" or "text".
	Format string `toml:"format"`
}

func defaultConfig() config {
	return config{TabWidth: lexer.DefaultTabWidth, Format: formatYAML}
}

// loadConfig reads the config file at path. A missing file is only an
// error if the user asked for it explicitly.
func loadConfig(fsys afero.Fs, path string, explicit bool, logger logrus.FieldLogger) (config, error) {
	cfg := defaultConfig()
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		logger.WithField("config", path).Warnf("unknown key %q", key.String())
	}
	if cfg.TabWidth <= 0 {
		return cfg, fmt.Errorf("%s: tab_width must be positive, got %d", path, cfg.TabWidth)
	}
	if err := checkFormat(cfg.Format); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithField("config", path).Debug("loaded config")
	return cfg, nil
}

const (
	formatYAML = "yaml"
	formatText = "text"
)

func checkFormat(format string) error {
	switch format {
	case formatYAML, formatText:
		return nil
	default:
		return fmt.Errorf("unknown format %q, want one of %s", format, strings.Join([]string{formatYAML, formatText}, ", "))
	}
}
