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

package imedict

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ianlewis/go-imedict/internal/testutil"
)

func testConfig(dir string) Config {
	return Config{
		StrokeJSONPath:      filepath.Join(dir, "strokeData.json"),
		SuggestionsJSONPath: filepath.Join(dir, "suggestionsData.json"),
		StrokeTxtPath:       filepath.Join(dir, "out", "strokeData.txt"),
		SuggestionsTxtPath:  filepath.Join(dir, "out", "suggestionsData.txt"),
	}
}

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestConverter_Run(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig(dir)
	testutil.WriteFile(t, dir, "strokeData.json", `[
		{"character": "A", "strokeSequences": ["12"]},
		{"character": "B", "strokeSequences": ["12", "34"]},
		{"character": "X", "strokeSequences": ["99", "99"]},
		"bad"
	]`)
	testutil.WriteFile(t, dir, "suggestionsData.json", `{"妈": ["  ", "mama", "mama", "ma"], "x": 1}`)

	var logs bytes.Buffer
	res, err := New(cfg, &Options{Logger: testLogger(&logs)}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	expected := &Result{
		DictionaryLines:    4,
		DictionaryWritten:  true,
		SkippedEntries:     1,
		SuggestionLines:    2,
		SuggestionsWritten: true,
		SkippedLists:       1,
	}
	if diff := cmp.Diff(expected, res); diff != "" {
		t.Errorf("Run (-want, +got):\n%s", diff)
	}

	dictionary := strings.Join([]string{
		"# Chinese IME Dictionary",
		"# Format: code<TAB>character",
		"# Lines starting with # or ; are comments",
		"# File must be UTF-8 encoded",
		"",
		"12\tA",
		"12\tB",
		"34\tB",
		"99\tX",
	}, "\n")
	if diff := cmp.Diff(dictionary, testutil.ReadFile(t, cfg.StrokeTxtPath)); diff != "" {
		t.Errorf("dictionary (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff("妈\tmama\n妈\tma", testutil.ReadFile(t, cfg.SuggestionsTxtPath)); diff != "" {
		t.Errorf("suggestions (-want, +got):\n%s", diff)
	}
	if !strings.Contains(logs.String(), "skipped malformed stroke entries") {
		t.Errorf("expected debug log for skipped entries, got:\n%s", logs.String())
	}
}

func TestConverter_Run_idempotent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig(dir)
	testutil.WriteFile(t, dir, "strokeData.json", `[{"character": "十", "strokeSequences": ["一丨"]}]`)
	testutil.WriteFile(t, dir, "suggestionsData.json", `{"十": ["十分", "十一"]}`)

	c := New(cfg, &Options{Logger: testLogger(&bytes.Buffer{})})
	var outputs []string
	for i := 0; i < 2; i++ {
		if _, err := c.Run(context.Background()); err != nil {
			t.Fatalf("Run: %v", err)
		}
		outputs = append(outputs,
			testutil.ReadFile(t, cfg.StrokeTxtPath)+testutil.ReadFile(t, cfg.SuggestionsTxtPath))
	}
	if diff := cmp.Diff(outputs[0], outputs[1]); diff != "" {
		t.Errorf("second run (-first, +second):\n%s", diff)
	}
}

func TestConverter_Run_emptyGuard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		strokes     string
		suggestions string
	}{
		{name: "empty array", strokes: "[]", suggestions: "{}"},
		{name: "null", strokes: "null", suggestions: "null"},
		{name: "blank", strokes: "  \n", suggestions: ""},
		{name: "no valid records", strokes: `[{"character": " ", "strokeSequences": ["1"]}]`, suggestions: `{"a": [""]}`},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			cfg := testConfig(dir)
			testutil.WriteFile(t, dir, "strokeData.json", test.strokes)
			testutil.WriteFile(t, dir, "suggestionsData.json", test.suggestions)
			testutil.WriteFile(t, dir, "out/strokeData.txt", "12\tA")
			testutil.WriteFile(t, dir, "out/suggestionsData.txt", "妈\tmama")

			var logs bytes.Buffer
			res, err := New(cfg, &Options{Logger: testLogger(&logs)}).Run(context.Background())
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if diff := cmp.Diff(&Result{}, res); diff != "" {
				t.Errorf("Run (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff("12\tA", testutil.ReadFile(t, cfg.StrokeTxtPath)); diff != "" {
				t.Errorf("dictionary modified (-want, +got):\n%s", diff)
			}
			if diff := cmp.Diff("妈\tmama", testutil.ReadFile(t, cfg.SuggestionsTxtPath)); diff != "" {
				t.Errorf("suggestions modified (-want, +got):\n%s", diff)
			}
			for _, want := range []string{
				"No stroke dictionary entries found; strokeData.txt not updated to avoid wiping data.",
				"No suggestions entries found; suggestionsData.txt not updated to avoid wiping data.",
			} {
				if !strings.Contains(logs.String(), want) {
					t.Errorf("missing warning %q in:\n%s", want, logs.String())
				}
			}
		})
	}
}

func TestConverter_Run_missingStrokes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig(dir)
	testutil.WriteFile(t, dir, "suggestionsData.json", `{"妈": ["mama"]}`)

	_, err := New(cfg, &Options{Logger: testLogger(&bytes.Buffer{})}).Run(context.Background())
	if diff := cmp.Diff(ErrMissingFile, err, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("Run (-want, +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), cfg.StrokeJSONPath) {
		t.Errorf("error %q does not reference %q", err, cfg.StrokeJSONPath)
	}
	for _, path := range []string{cfg.StrokeTxtPath, cfg.SuggestionsTxtPath} {
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: expected no output, got %v", path, err)
		}
	}
}

func TestConverter_Run_partial(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig(dir)
	testutil.WriteFile(t, dir, "strokeData.json", `[{"character": "A", "strokeSequences": ["12"]}]`)
	testutil.WriteFile(t, dir, "suggestionsData.json", "{not valid json")

	res, err := New(cfg, &Options{Logger: testLogger(&bytes.Buffer{})}).Run(context.Background())
	if diff := cmp.Diff(ErrParse, err, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("Run (-want, +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), cfg.SuggestionsJSONPath) {
		t.Errorf("error %q does not reference %q", err, cfg.SuggestionsJSONPath)
	}

	// The dictionary written before the failure is kept.
	if diff := cmp.Diff(&Result{DictionaryLines: 1, DictionaryWritten: true}, res); diff != "" {
		t.Errorf("Run (-want, +got):\n%s", diff)
	}
	if !strings.HasSuffix(testutil.ReadFile(t, cfg.StrokeTxtPath), "\n12\tA") {
		t.Errorf("dictionary not written")
	}
}

type fakeProvider struct {
	dir    string
	called []string
	err    error
}

func (p *fakeProvider) EnsureSources(_ context.Context, paths ...string) error {
	p.called = append(p.called, paths...)
	if p.err != nil {
		return p.err
	}
	for _, path := range paths {
		data := "[]"
		if strings.HasSuffix(path, "suggestionsData.json") {
			data = `{"a": ["b"]}`
		}
		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			return err
		}
	}
	return nil
}

func TestConverter_Run_provider(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig(dir)
	testutil.WriteFile(t, dir, "strokeData.json", `[{"character": "A", "strokeSequences": ["12"]}]`)

	p := &fakeProvider{dir: dir}
	res, err := New(cfg, &Options{
		Provider: p,
		Logger:   testLogger(&bytes.Buffer{}),
	}).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if diff := cmp.Diff([]string{cfg.SuggestionsJSONPath}, p.called); diff != "" {
		t.Errorf("EnsureSources paths (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(1, res.SuggestionLines); diff != "" {
		t.Errorf("SuggestionLines (-want, +got):\n%s", diff)
	}
}

func TestConverter_Run_providerNotCalled(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := testConfig(dir)
	testutil.WriteFile(t, dir, "strokeData.json", `[]`)
	testutil.WriteFile(t, dir, "suggestionsData.json", `{}`)

	p := &fakeProvider{dir: dir}
	if _, err := New(cfg, &Options{Provider: p, Logger: testLogger(&bytes.Buffer{})}).Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(p.called) != 0 {
		t.Errorf("EnsureSources called with %q", p.called)
	}
}

func TestConverter_Run_providerError(t *testing.T) {
	t.Parallel()

	errBuild := errors.New("build failed")
	p := &fakeProvider{err: errBuild}
	_, err := New(testConfig(t.TempDir()), &Options{
		Provider: p,
		Logger:   testLogger(&bytes.Buffer{}),
	}).Run(context.Background())
	if diff := cmp.Diff(errBuild, err, cmpopts.EquateErrors()); diff != "" {
		t.Fatalf("Run (-want, +got):\n%s", diff)
	}
}

func TestCommandProvider(t *testing.T) {
	t.Parallel()

	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	tests := []struct {
		name     string
		commands []string
		err      error
		failure  bool
	}{
		{
			name: "generates sources",
			commands: []string{
				`sh -c 'printf "[]" > strokeData.json'`,
				"",
				`sh -c "printf '{}' > suggestionsData.json"`,
			},
		},
		{
			name:     "still missing",
			commands: []string{`sh -c 'printf "[]" > strokeData.json'`},
			err:      ErrSourcesUnavailable,
		},
		{
			name:     "command fails",
			commands: []string{"sh -c 'exit 3'"},
			failure:  true,
		},
		{
			name:     "bad quoting",
			commands: []string{`sh -c 'unterminated`},
			failure:  true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			var stderr bytes.Buffer
			p := &CommandProvider{
				Dir:      dir,
				Commands: test.commands,
				Stderr:   &stderr,
			}
			err := p.EnsureSources(context.Background(),
				filepath.Join(dir, "strokeData.json"),
				filepath.Join(dir, "suggestionsData.json"),
			)
			if test.failure {
				if err == nil {
					t.Fatal("EnsureSources: expected failure")
				}
				return
			}
			if diff := cmp.Diff(test.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("EnsureSources (-want, +got):\n%s", diff)
			}
		})
	}
}
