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

package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-imedict"
	"github.com/ianlewis/go-imedict/internal/testutil"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load("", filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := &Config{
		StrokeJSONPath:      "data/strokeData.json",
		SuggestionsJSONPath: "data/suggestionsData.json",
		StrokeTxtPath:       "data/strokeData.txt",
		SuggestionsTxtPath:  "data/suggestionsData.txt",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}
}

func TestLoad_env(t *testing.T) {
	t.Setenv("IMEDICT_STROKE_JSON", "K6-web/public/strokeData.json")
	t.Setenv("IMEDICT_BUILD_COMMANDS", "bun install;bun run compile")
	t.Setenv("IMEDICT_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff("K6-web/public/strokeData.json", cfg.StrokeJSONPath); diff != "" {
		t.Errorf("StrokeJSONPath (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"bun install", "bun run compile"}, cfg.Build.Commands); diff != "" {
		t.Errorf("Build.Commands (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("debug", cfg.Log.Level); diff != "" {
		t.Errorf("Log.Level (-want, +got):\n%s", diff)
	}
}

func TestLoad_file(t *testing.T) {
	t.Setenv("IMEDICT_SUGGESTIONS_TXT", "env/suggestionsData.txt")

	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "imedict.yaml", `
stroke_json: web/strokeData.json
suggestions_txt: file/suggestionsData.txt
build:
  dir: web
  commands:
    - bun install
    - bun run compile
log:
  format: json
`)

	// Explicit paths take precedence over fallbacks.
	other := testutil.WriteFile(t, dir, "other.yaml", "stroke_json: other.json\n")

	cfg, err := Load(path, other)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	expected := &Config{
		StrokeJSONPath:      "web/strokeData.json",
		SuggestionsJSONPath: "data/suggestionsData.json",
		StrokeTxtPath:       "data/strokeData.txt",
		SuggestionsTxtPath:  "env/suggestionsData.txt",
		Build: BuildConfig{
			Dir:      "web",
			Commands: []string{"bun install", "bun run compile"},
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Errorf("Load (-want, +got):\n%s", diff)
	}

	paths := imedict.Config{
		StrokeJSONPath:      "web/strokeData.json",
		SuggestionsJSONPath: "data/suggestionsData.json",
		StrokeTxtPath:       "data/strokeData.txt",
		SuggestionsTxtPath:  "env/suggestionsData.txt",
	}
	if diff := cmp.Diff(paths, cfg.Paths()); diff != "" {
		t.Errorf("Paths (-want, +got):\n%s", diff)
	}
}

func TestLoad_fallback(t *testing.T) {
	dir := t.TempDir()
	fallback := testutil.WriteFile(t, dir, "config.yaml", "stroke_txt: out/strokeData.txt\n")

	cfg, err := Load("", filepath.Join(dir, "missing.yaml"), fallback)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff("out/strokeData.txt", cfg.StrokeTxtPath); diff != "" {
		t.Errorf("StrokeTxtPath (-want, +got):\n%s", diff)
	}
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "imedict.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load: want %v, got %v", ErrNotFound, err)
	}
}
