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

// Command abcgen-single builds the single-file release of abcmake by
// inlining every local include of the main module file.
package main

import (
	"flag"
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

	srcDirFlag       string
	mainFileFlag     string
	outputFlag       string
	versionFileFlag  string
	embedVersionFlag bool
)

func init() {
	flag.StringVar(&rootFlag, "root", ".", "Repository root; relative paths are taken from here.")
	flag.StringVar(&configFlag, "config", "", "Read defaults from `file` instead of <root>/"+abcgen.DefaultConfigFile+".")
	flag.BoolVar(&checkFlag, "check", false, "Only verify that the release file is up to date.")
	flag.BoolVar(&diffFlag, "diff", false, "With -check, print how the release file differs.")

	flag.StringVar(&srcDirFlag, "src_dir", "", "Directory holding the main file.")
	flag.StringVar(&mainFileFlag, "main_file", "", "Main module file inside src_dir.")
	flag.StringVar(&outputFlag, "output", "", "Path of the single-file release.")
	flag.StringVar(&versionFileFlag, "version_file", "", "Plain-text version file.")
	flag.BoolVar(&embedVersionFlag, "embed_version", false, "Stamp the version into the release.")
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
		case "src_dir":
			cfg.SrcDir = srcDirFlag
		case "main_file":
			cfg.MainFile = mainFileFlag
		case "output":
			cfg.Output = outputFlag
		case "version_file":
			cfg.VersionFile = versionFileFlag
		case "embed_version":
			cfg.EmbedVersion = embedVersionFlag
		}
	})
	return cfg.Rooted(rootFlag), nil
}

func singleMain() int {
	defer glog.Flush()
	r := abcgen.NewReporter(os.Stdout, os.Stderr)
	cfg, err := loadConfig()
	if err != nil {
		glog.Errorf("%v", err)
		r.Fail("%v", err)
		return abcgen.ExitError
	}
	return abcgen.Run(abcgen.Job{
		Name:     "abcgen-single",
		Output:   cfg.Output,
		Check:    checkFlag,
		ShowDiff: diffFlag,
		Render: func() (string, error) {
			return abcgen.RenderSingleFile(cfg)
		},
	}, r)
}

func main() {
	flag.Parse()
	os.Exit(singleMain())
}
