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

package abcgen

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/glog"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the repository root.
const DefaultConfigFile = "abcgen.yaml"

// Config holds the repository layout. Relative paths are relative to
// the repository root.
type Config struct {
	SrcDir        string `yaml:"src_dir"`
	MainFile      string `yaml:"main_file"`
	Output        string `yaml:"output"`
	VersionFile   string `yaml:"version_file"`
	VersionOutput string `yaml:"version_output"`
	EmbedVersion  bool   `yaml:"embed_version"`
}

func DefaultConfig() Config {
	return Config{
		SrcDir:        "src",
		MainFile:      "ab.cmake",
		Output:        "dist/single_file/ab.cmake",
		VersionFile:   "version",
		VersionOutput: "src/version.cmake",
	}
}

// LoadConfig returns DefaultConfig overridden by the keys set in
// filename. A missing file is an error only if required is set.
func LoadConfig(filename string, required bool) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) && !required {
		glog.V(1).Infof("no config %s, using defaults", filename)
		return cfg, nil
	}
	if err != nil {
		return cfg, fileError(filename, "", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return DefaultConfig(), &Error{Kind: ParseError, Filename: filename, Err: err}
	}
	glog.V(1).Infof("config %s: %+v", filename, cfg)
	return cfg, nil
}

// Rooted returns c with relative paths joined to root.
func (c Config) Rooted(root string) Config {
	join := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(root, p)
	}
	c.SrcDir = join(c.SrcDir)
	c.Output = join(c.Output)
	c.VersionFile = join(c.VersionFile)
	c.VersionOutput = join(c.VersionOutput)
	return c
}

// MainPath is the root document of the amalgamation.
func (c Config) MainPath() string {
	return filepath.Join(c.SrcDir, c.MainFile)
}
