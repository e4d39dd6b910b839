// Copyright 2025 Ian Lewis
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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-imedict/strokes"
	"github.com/ianlewis/go-imedict/suggest"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "look up characters by stroke code",
	ArgsUsage: "CODE...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing CODE argument", ErrImedict)
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		d, err := strokes.Open(cfg.StrokeTxtPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrImedict, err)
		}

		return printMatches(c, []string{"Code", "Character"}, d.Lookup)
	},
}

var suggestCommand = &cli.Command{
	Name:      "suggest",
	Usage:     "look up suggestions by key",
	ArgsUsage: "KEY...",
	Action: func(c *cli.Context) error {
		if c.NArg() == 0 {
			return fmt.Errorf("%w: missing KEY argument", ErrImedict)
		}

		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}
		sg, err := suggest.Open(cfg.SuggestionsTxtPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrImedict, err)
		}

		return printMatches(c, []string{"Key", "Suggestion"}, sg.Lookup)
	},
}

// printMatches prints a table of the values found by lookup for each
// argument. It returns ErrNoMatch if no argument matched.
func printMatches(c *cli.Context, headers []string, lookup func(string) []string) error {
	tbl := table.New(headers[0], headers[1]).WithWriter(c.App.Writer)

	var missing []string
	for _, q := range c.Args().Slice() {
		values := lookup(q)
		if len(values) == 0 {
			missing = append(missing, q)
			continue
		}
		for _, v := range values {
			tbl.AddRow(q, v)
		}
	}

	if len(missing) == c.NArg() {
		return fmt.Errorf("%w: %s", ErrNoMatch, strings.Join(missing, ", "))
	}

	tbl.Print()
	for _, q := range missing {
		fmt.Fprintf(c.App.ErrWriter, "no match for %q\n", q)
	}
	return nil
}
