// Copyright 2024 The abcgen Authors. All rights reserved
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

// Command abcgen-version converts the plain-text version file of the
// repository into CMake definitions.
//
//	abcgen-version                  # generate src/version.cmake
//	abcgen-version -check           # verify it is up to date
//	abcgen-version -version_file x  # use another version source
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/an-dr/abcgen"
	"github.com/golang/glog"
)

var (
	rootFlag   string
	configFlag string
	checkFlag  bool
	diffFlag   bool

	versionFileFlag string
	outputFlag      string
)

func init() {
	flag.StringVar(&rootFlag, "root", ".", "Repository root; relative paths are taken from here.")
	flag.StringVar(&configFlag, "config", "", "Read defaults from `file` instead of <root>/"+abcgen.DefaultConfigFile+".")
	flag.BoolVar(&checkFlag, "check", false, "Only check whether the output file matches the version file.")
	flag.BoolVar(&diffFlag, "diff", false, "With -check, print how the output file differs.")

	flag.StringVar(&versionFileFlag, "version_file", "", "Plain-text version file.")
	flag.StringVar(&outputFlag, "output", "", "Generated CMake file.")
}

func loadConfig() (abcgen.Config, error) {
	path := configFlag
	if path == "" {
		path = filepath.Join(rootFlag, abcgen.DefaultConfigFile)
	}
	cfg, err := abcgen.LoadConfig(path, configFlag != "")
	if err != nil {
		return cfg, err
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "version_file":
			cfg.VersionFile = versionFileFlag
		case "output":
			cfg.VersionOutput = outputFlag
		}
	})
	return cfg.Rooted(rootFlag), nil
}

func versionMain() int {
	defer glog.Flush()
	r := abcgen.NewReporter(os.Stdout, os.Stderr)
	cfg, err := loadConfig()
	if err != nil {
		glog.Errorf("%v", err)
		r.Fail("%v", err)
		return abcgen.ExitError
	}
	var v abcgen.Version
	return abcgen.Run(abcgen.Job{
		Name:     "abcgen-version",
		Output:   cfg.VersionOutput,
		Check:    checkFlag,
		ShowDiff: diffFlag,
		Render: func() (string, error) {
			content, ver, err := abcgen.RenderVersionFile(cfg)
			v = ver
			return content, err
		},
		Done: func(string) string {
			return fmt.Sprintf("Generated %s for version %s", cfg.VersionOutput, v)
		},
	}, r)
}

func main() {
	flag.Parse()
	os.Exit(versionMain())
}
