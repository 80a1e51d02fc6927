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
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen", "version.cmake")
	content := "set(V 1)\n"
	render := func() (string, error) { return content, nil }

	run := func(check bool, r func() (string, error)) (int, string, string) {
		var stdout, stderr bytes.Buffer
		code := Run(Job{
			Name:     "abcgen-version",
			Output:   out,
			Check:    check,
			ShowDiff: true,
			Render:   r,
		}, NewReporter(&stdout, &stderr))
		return code, stdout.String(), stderr.String()
	}

	code, _, stderr := run(true, render)
	if code != ExitMissing {
		t.Errorf("check of missing file: exit %d, want %d", code, ExitMissing)
	}
	if !strings.Contains(stderr, "missing") {
		t.Errorf("check of missing file: stderr %q", stderr)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("check mode wrote %s: %v", out, err)
	}

	code, stdout, _ := run(false, render)
	if code != ExitOK {
		t.Errorf("generate: exit %d, want %d", code, ExitOK)
	}
	if want := "generated (9 bytes)"; !strings.Contains(stdout, want) {
		t.Errorf("generate: stdout %q, want %q", stdout, want)
	}

	code, stdout, _ = run(true, render)
	if code != ExitOK || !strings.Contains(stdout, "up to date") {
		t.Errorf("check of fresh file: exit %d, stdout %q", code, stdout)
	}

	content = "set(V 2)\n"
	code, _, stderr = run(true, render)
	if code != ExitStale {
		t.Errorf("check of stale file: exit %d, want %d", code, ExitStale)
	}
	if !strings.Contains(stderr, "out of date") || !strings.Contains(stderr, "Run: abcgen-version") {
		t.Errorf("check of stale file: stderr %q", stderr)
	}
	if got, _ := os.ReadFile(out); string(got) != "set(V 1)\n" {
		t.Errorf("check mode changed %s to %q", out, got)
	}

	code, _, stderr = run(false, func() (string, error) {
		return "", &Error{Kind: FileNotFound, Filename: "ab.cmake", Expr: "a.cmake", Err: os.ErrNotExist}
	})
	if code != ExitError {
		t.Errorf("failed render: exit %d, want %d", code, ExitError)
	}
	if !strings.Contains(stderr, `ab.cmake: "a.cmake"`) {
		t.Errorf("failed render: stderr %q", stderr)
	}
	if got, _ := os.ReadFile(out); string(got) != "set(V 1)\n" {
		t.Errorf("failed render changed %s to %q", out, got)
	}
}
