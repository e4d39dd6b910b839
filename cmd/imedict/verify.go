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

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-imedict/strokes"
	"github.com/ianlewis/go-imedict/suggest"
)

var verifyCommand = &cli.Command{
	Name:  "verify",
	Usage: "check the IME text files for duplicate and malformed lines",
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		d, err := strokes.Open(cfg.StrokeTxtPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrImedict, err)
		}
		sg, err := suggest.Open(cfg.SuggestionsTxtPath)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrImedict, err)
		}

		tbl := table.New("File", "Lines", "Keys", "Duplicates", "Malformed").WithWriter(c.App.Writer)
		tbl.AddRow(cfg.StrokeTxtPath, d.Len(), d.Codes(), d.Duplicates(), d.Malformed())
		tbl.AddRow(cfg.SuggestionsTxtPath, sg.Len(), sg.Keys(), sg.Duplicates(), sg.Malformed())
		tbl.Print()

		if d.Duplicates()+d.Malformed()+sg.Duplicates()+sg.Malformed() > 0 {
			return ErrVerify
		}
		return nil
	},
}
