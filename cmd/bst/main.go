// Copyright 2014-2022 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command bst builds, queries and rebalances binary search trees of integers
// from the command line.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(-1)
	}
}

func run(args []string) error {
	return newApp(os.Stdout, os.Stderr).Run(args)
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := &cli.App{
		Name:      "bst",
		Usage:     "build, query and rebalance binary search trees",
		Version:   versioninfo.Short(),
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity: debug, info, warn or error",
				Value:   "info",
				EnvVars: []string{"BST_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "format",
				Usage:   "tree diagram style: ascii or treeprint",
				Value:   formatASCII,
				EnvVars: []string{"BST_FORMAT"},
			},
		},
	}
	app.Commands = []*cli.Command{
		cmdDemo,
		cmdBuild,
	}
	return app
}

// configLogger returns a console logger writing to the app's error stream at
// the level selected by --log-level.
func configLogger(cctx *cli.Context) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cctx.String("log-level"))
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(cctx.App.ErrWriter),
		level,
	)
	return zap.New(core).With(zap.String("command", cctx.Command.Name)), nil
}
