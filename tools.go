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

import "github.com/golang/glog"

// RenderSingleFile amalgamates the main file of cfg and, if asked to,
// stamps the version into the result.
func RenderSingleFile(cfg Config) (string, error) {
	content, err := AmalgamateFile(cfg.MainPath())
	if err != nil {
		return "", err
	}
	if cfg.EmbedVersion {
		v, err := LoadVersionFile(cfg.VersionFile)
		if err != nil {
			return "", err
		}
		var ok bool
		content, ok = EmbedVersion(content, RenderVersion(v))
		if !ok {
			glog.Warningf("%s: no %q or %q found, version %s not embedded", cfg.MainPath(), VersionMarker, VersionToken, v)
		}
	}
	if refs, err := LocalIncludes(content); err == nil {
		for _, ref := range refs {
			glog.Warningf("%s: include of %q left in the output", cfg.MainPath(), ref.Expr)
		}
	}
	return content, nil
}

// RenderVersionFile returns the CMake version file for the version file
// of cfg.
func RenderVersionFile(cfg Config) (string, Version, error) {
	v, err := LoadVersionFile(cfg.VersionFile)
	if err != nil {
		return "", Version{}, err
	}
	glog.V(1).Infof("parsed version %s", v)
	return RenderVersion(v), v, nil
}
