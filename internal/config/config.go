// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the imedict configuration from a YAML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ianlewis/go-imedict"
)

// ErrNotFound indicates that an explicitly requested config file does not
// exist.
var ErrNotFound = errors.New("config file not found")

// Config is the imedict configuration.
type Config struct {
	StrokeJSONPath      string `yaml:"stroke_json"      env:"IMEDICT_STROKE_JSON"      env-default:"data/strokeData.json"`
	SuggestionsJSONPath string `yaml:"suggestions_json" env:"IMEDICT_SUGGESTIONS_JSON" env-default:"data/suggestionsData.json"`
	StrokeTxtPath       string `yaml:"stroke_txt"       env:"IMEDICT_STROKE_TXT"       env-default:"data/strokeData.txt"`
	SuggestionsTxtPath  string `yaml:"suggestions_txt"  env:"IMEDICT_SUGGESTIONS_TXT"  env-default:"data/suggestionsData.txt"`

	Build BuildConfig `yaml:"build"`
	Log   LogConfig   `yaml:"log"`
}

// BuildConfig configures how missing source files are generated.
type BuildConfig struct {
	// Dir is the working directory of the build commands.
	Dir string `yaml:"dir" env:"IMEDICT_BUILD_DIR"`

	// Commands are run in order when a source file is missing. No commands
	// means missing sources are an error.
	Commands []string `yaml:"commands" env:"IMEDICT_BUILD_COMMANDS" env-separator:";"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level" env:"IMEDICT_LOG_LEVEL" env-default:"info"`

	// Format is either text or json.
	Format string `yaml:"format" env:"IMEDICT_LOG_FORMAT" env-default:"text"`
}

// Load reads the configuration. If path is not empty the file must exist.
// Otherwise the first existing file in fallbacks is read, if any. Environment
// variables override file values.
func Load(path string, fallbacks ...string) (*Config, error) {
	var cfg Config

	if path == "" {
		for _, p := range fallbacks {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	} else if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("reading config from environment: %w", err)
	}
	return &cfg, nil
}

// Paths returns the conversion paths.
func (c *Config) Paths() imedict.Config {
	return imedict.Config{
		StrokeJSONPath:      c.StrokeJSONPath,
		SuggestionsJSONPath: c.SuggestionsJSONPath,
		StrokeTxtPath:       c.StrokeTxtPath,
		SuggestionsTxtPath:  c.SuggestionsTxtPath,
	}
}
