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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/shlex"

	"github.com/ianlewis/go-imedict/internal/source"
	"github.com/ianlewis/go-imedict/strokes"
	"github.com/ianlewis/go-imedict/suggest"
)

var (
	// ErrMissingFile indicates that a source file does not exist.
	ErrMissingFile = source.ErrMissingFile

	// ErrParse indicates that a source file is not valid JSON.
	ErrParse = source.ErrParse

	// ErrSourcesUnavailable indicates that source files were still missing
	// after the SourceProvider ran.
	ErrSourcesUnavailable = errors.New("source data files still not found")
)

// Config holds the paths used by a conversion.
type Config struct {
	// StrokeJSONPath is the stroke data source.
	StrokeJSONPath string

	// SuggestionsJSONPath is the suggestions data source.
	SuggestionsJSONPath string

	// StrokeTxtPath is the dictionary file to write.
	StrokeTxtPath string

	// SuggestionsTxtPath is the suggestions file to write.
	SuggestionsTxtPath string
}

// SourceProvider makes source files available, for example by running the
// tool that generates them.
type SourceProvider interface {
	// EnsureSources is called with the source paths that do not exist. It
	// returns nil once all of them exist.
	EnsureSources(ctx context.Context, paths ...string) error
}

// Options are options for a Converter.
type Options struct {
	// Provider is called when source files are missing. If nil, missing
	// sources fail the conversion.
	Provider SourceProvider

	// Logger receives warnings and debug information. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Result holds the outcome of a conversion.
type Result struct {
	// DictionaryLines is the number of lines written to the dictionary file.
	DictionaryLines int

	// DictionaryWritten is true if the dictionary file was written.
	DictionaryWritten bool

	// SkippedEntries is the number of malformed stroke entries.
	SkippedEntries int

	// SuggestionLines is the number of lines written to the suggestions file.
	SuggestionLines int

	// SuggestionsWritten is true if the suggestions file was written.
	SuggestionsWritten bool

	// SkippedLists is the number of malformed suggestion values.
	SkippedLists int
}

// Converter converts source data into IME text files.
type Converter struct {
	cfg      Config
	provider SourceProvider
	logger   *slog.Logger
}

// New returns a new Converter.
func New(cfg Config, opts *Options) *Converter {
	c := &Converter{
		cfg:    cfg,
		logger: slog.Default(),
	}
	if opts != nil {
		c.provider = opts.Provider
		if opts.Logger != nil {
			c.logger = opts.Logger
		}
	}
	return c
}

// Run performs the conversion. The dictionary is converted first. If the
// suggestions conversion fails, the dictionary file is left as written and the
// partial Result is returned along with the error.
func (c *Converter) Run(ctx context.Context) (*Result, error) {
	res := &Result{}

	if err := c.ensureSources(ctx); err != nil {
		return res, err
	}
	if err := c.convertStrokes(res); err != nil {
		return res, err
	}
	if err := c.convertSuggestions(res); err != nil {
		return res, err
	}
	return res, nil
}

func (c *Converter) ensureSources(ctx context.Context) error {
	if c.provider == nil {
		return nil
	}

	var missing []string
	for _, path := range []string{c.cfg.StrokeJSONPath, c.cfg.SuggestionsJSONPath} {
		if !source.Exists(path) {
			missing = append(missing, path)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	c.logger.Warn("source data files not found, generating them", slog.Any("paths", missing))
	if err := c.provider.EnsureSources(ctx, missing...); err != nil {
		return fmt.Errorf("generating source data: %w", err)
	}
	return nil
}

func (c *Converter) convertStrokes(res *Result) error {
	data, err := source.Read(c.cfg.StrokeJSONPath)
	if err != nil {
		//nolint:wrapcheck // source errors include the path.
		return err
	}

	src, err := strokes.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", c.cfg.StrokeJSONPath, err)
	}
	res.SkippedEntries = src.Skipped
	if src.Skipped > 0 {
		c.logger.Debug("skipped malformed stroke entries",
			slog.String("path", c.cfg.StrokeJSONPath),
			slog.Int("count", src.Skipped),
		)
	}

	n, err := strokes.Write(c.cfg.StrokeTxtPath, strokes.Flatten(src.Entries))
	if errors.Is(err, strokes.ErrEmpty) {
		c.logger.Warn(fmt.Sprintf("No stroke dictionary entries found; %s not updated to avoid wiping data.",
			filepath.Base(c.cfg.StrokeTxtPath)))
		return nil
	}
	if err != nil {
		//nolint:wrapcheck // already wrapped by strokes.
		return err
	}

	res.DictionaryLines = n
	res.DictionaryWritten = true
	return nil
}

func (c *Converter) convertSuggestions(res *Result) error {
	data, err := source.Read(c.cfg.SuggestionsJSONPath)
	if err != nil {
		//nolint:wrapcheck // source errors include the path.
		return err
	}

	src, err := suggest.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", c.cfg.SuggestionsJSONPath, err)
	}
	res.SkippedLists = src.Skipped
	if src.Skipped > 0 {
		c.logger.Debug("skipped malformed suggestion lists",
			slog.String("path", c.cfg.SuggestionsJSONPath),
			slog.Int("count", src.Skipped),
		)
	}

	n, err := suggest.Write(c.cfg.SuggestionsTxtPath, suggest.Flatten(src.Lists))
	if errors.Is(err, suggest.ErrEmpty) {
		c.logger.Warn(fmt.Sprintf("No suggestions entries found; %s not updated to avoid wiping data.",
			filepath.Base(c.cfg.SuggestionsTxtPath)))
		return nil
	}
	if err != nil {
		//nolint:wrapcheck // already wrapped by suggest.
		return err
	}

	res.SuggestionLines = n
	res.SuggestionsWritten = true
	return nil
}

var _ SourceProvider = (*CommandProvider)(nil)

// CommandProvider generates source files by running a list of commands.
// Commands are split into arguments using shell quoting rules but are not
// run by a shell.
type CommandProvider struct {
	// Dir is the working directory of the commands.
	Dir string

	// Commands are run in order. The first failing command stops the run.
	Commands []string

	// Stdout and Stderr receive the commands' output. If nil, output is
	// discarded.
	Stdout io.Writer
	Stderr io.Writer
}

// EnsureSources implements [SourceProvider.EnsureSources].
func (p *CommandProvider) EnsureSources(ctx context.Context, paths ...string) error {
	for _, command := range p.Commands {
		args, err := shlex.Split(command)
		if err != nil {
			return fmt.Errorf("parsing command %q: %w", command, err)
		}
		if len(args) == 0 {
			continue
		}

		//nolint:gosec // commands come from the user's configuration.
		cmd := exec.CommandContext(ctx, args[0], args[1:]...)
		cmd.Dir = p.Dir
		cmd.Stdout = p.Stdout
		cmd.Stderr = p.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("running %q: %w", command, err)
		}
	}

	var missing []string
	for _, path := range paths {
		if !source.Exists(path) {
			missing = append(missing, path)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrSourcesUnavailable, strings.Join(missing, ", "))
	}
	return nil
}
