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
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/golang/glog"
)

const (
	// VersionMarker is replaced by the rendered version block.
	VersionMarker = "# @ABCMAKE_VERSION_BLOCK@"
	// VersionToken is the fallback placeholder when no marker exists.
	VersionToken = "@ABCMAKE_VERSION@"
)

var (
	ErrEmptyVersion      = errors.New("version is empty")
	ErrVersionComponents = errors.New("version must have two or three dot separated components")
	ErrVersionNotInteger = errors.New("version components must be non-negative integers")
)

// Version is a semantic version triple.
type Version struct {
	Major, Minor, Patch int
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// ParseVersion parses "MAJOR.MINOR" or "MAJOR.MINOR.PATCH". Surrounding
// whitespace is ignored.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, &Error{Kind: ParseError, Err: ErrEmptyVersion}
	}
	parts := strings.Split(s, ".")
	if len(parts) != 2 && len(parts) != 3 {
		return Version{}, &Error{Kind: ParseError, Expr: s, Err: ErrVersionComponents}
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.ParseUint(p, 10, 31)
		if err != nil {
			return Version{}, &Error{Kind: ParseError, Expr: s, Err: ErrVersionNotInteger}
		}
		nums[i] = int(n)
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// LoadVersionFile reads and parses a plain-text version file.
func LoadVersionFile(filename string) (Version, error) {
	glog.V(1).Infof("reading version from %s", filename)
	data, err := os.ReadFile(filename)
	if err != nil {
		return Version{}, fileError(filename, "", err)
	}
	v, err := ParseVersion(string(data))
	if err != nil {
		var e *Error
		if errors.As(err, &e) {
			e.Filename = filename
		}
		return Version{}, err
	}
	return v, nil
}

// RenderVersion returns the CMake definitions of v.
func RenderVersion(v Version) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "set(ABCMAKE_VERSION_MAJOR %d)\n", v.Major)
	fmt.Fprintf(&sb, "set(ABCMAKE_VERSION_MINOR %d)\n", v.Minor)
	fmt.Fprintf(&sb, "set(ABCMAKE_VERSION_PATCH %d)\n", v.Patch)
	sb.WriteString(`set(ABCMAKE_VERSION "${ABCMAKE_VERSION_MAJOR}.${ABCMAKE_VERSION_MINOR}.${ABCMAKE_VERSION_PATCH}")` + "\n")
	return sb.String()
}

// EmbedVersion puts block in place of the first VersionMarker of doc,
// followed by an empty line. Without a marker every VersionToken is
// replaced by block. The result reports whether doc was changed; doc is
// returned as is when it has neither.
func EmbedVersion(doc, block string) (string, bool) {
	if strings.Contains(doc, VersionMarker) {
		return strings.Replace(doc, VersionMarker, block+"\n", 1), true
	}
	if strings.Contains(doc, VersionToken) {
		return strings.ReplaceAll(doc, VersionToken, block), true
	}
	return doc, false
}
