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
	"os"
	"path/filepath"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// CheckStatus is the state of a generated file compared to what it
// should contain.
type CheckStatus int

const (
	UpToDate CheckStatus = iota
	Missing
	Stale
)

func (s CheckStatus) String() string {
	switch s {
	case UpToDate:
		return "up to date"
	case Missing:
		return "missing"
	case Stale:
		return "out of date"
	}
	return "unknown"
}

// CheckArtifact compares the file at filename with want byte for byte.
// It never writes.
func CheckArtifact(filename string, want []byte) (CheckStatus, error) {
	have, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Missing, nil
	}
	if err != nil {
		return Missing, fileError(filename, "", err)
	}
	if !bytes.Equal(have, want) {
		return Stale, nil
	}
	return UpToDate, nil
}

// ArtifactDiff describes how have differs from want.
func ArtifactDiff(have, want string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(have, want, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// WriteArtifact replaces filename with data, creating parent directories
// as needed. A failed write leaves any previous file in place.
func WriteArtifact(filename string, data []byte) error {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fileError(dir, "", err)
	}
	if err := replaceFile(filename, data, 0644); err != nil {
		return fileError(filename, "", err)
	}
	return nil
}
