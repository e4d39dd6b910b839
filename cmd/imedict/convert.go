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

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-imedict"
)

var convertCommand = &cli.Command{
	Name:   "convert",
	Usage:  "convert the JSON sources into IME text files",
	Action: runConvert,
}

func runConvert(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	opts := &imedict.Options{
		Logger: newLogger(cfg.Log, c.App.ErrWriter),
	}
	if len(cfg.Build.Commands) > 0 {
		opts.Provider = &imedict.CommandProvider{
			Dir:      cfg.Build.Dir,
			Commands: cfg.Build.Commands,
			Stdout:   c.App.Writer,
			Stderr:   c.App.ErrWriter,
		}
	}

	w := c.App.Writer
	paths := cfg.Paths()
	fmt.Fprintln(w, "Converting JSON to IME text format...")

	res, err := imedict.New(paths, opts).Run(c.Context)
	if res != nil {
		if res.DictionaryWritten {
			fmt.Fprintf(w, "Wrote %d dictionary entries to %s\n", res.DictionaryLines, paths.StrokeTxtPath)
		}
		if res.SuggestionsWritten {
			fmt.Fprintf(w, "Wrote %d suggestion entries to %s\n", res.SuggestionLines, paths.SuggestionsTxtPath)
		}
	}
	//nolint:wrapcheck // errors carry the file path and are printed as is.
	return err
}
