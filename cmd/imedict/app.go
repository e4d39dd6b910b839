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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"

	"github.com/ianlewis/go-imedict/internal/config"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFailure is the exit code for any failed run.
	ExitCodeFailure
)

// ErrImedict is a parent error for all command errors.
var ErrImedict = errors.New("imedict")

// ErrNoMatch indicates that a lookup found nothing.
var ErrNoMatch = fmt.Errorf("%w: no match", ErrImedict)

// ErrVerify indicates that an output file failed verification.
var ErrVerify = fmt.Errorf("%w: verification failed", ErrImedict)

var copyrightNames = []string{
	"2026 Ian Lewis",
}

func newImedictApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Convert stroke and suggestion JSON data into IME text files.",
		Description: strings.Join([]string{
			"Converts the stroke dictionary and suggestion data produced by the",
			"dictionary tooling into the tab-delimited files read by the IME.",
			"Running without a command performs the conversion.",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
				EnvVars: []string{"IMEDICT_CONFIG"},
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright: strings.Join(copyrightNames, "\n"),
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}
			return runConvert(c)
		},
		Commands: []*cli.Command{
			convertCommand,
			lookupCommand,
			suggestCommand,
			verifyCommand,
		},
		// Errors are reported by main.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// loadConfig loads the configuration named by the --config flag or from the
// default locations.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"), configLocations()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImedict, err)
	}
	return cfg, nil
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()
	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

GitCommit:  %s
BuildDate:  %s
GoVersion:  %s
`,
		c.App.Name,
		versionInfo.GitVersion,
		c.App.Copyright,
		versionInfo.GitCommit,
		versionInfo.BuildDate,
		versionInfo.GoVersion,
	)
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrImedict, err)
	}
	return nil
}
