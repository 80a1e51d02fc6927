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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteArtifact(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "dist", "single_file", "ab.cmake")
	for _, content := range []string{"first\n", "second\n"} {
		if err := WriteArtifact(out, []byte(content)); err != nil {
			t.Fatalf("WriteArtifact(%q)=%v", out, err)
		}
		got, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != content {
			t.Errorf("%s=%q, want %q", out, got, content)
		}
	}
	ents, err := os.ReadDir(filepath.Dir(out))
	if err != nil {
		t.Fatal(err)
	}
	if len(ents) != 1 {
		var names []string
		for _, e := range ents {
			names = append(names, e.Name())
		}
		t.Errorf("files in %s: %q, want only ab.cmake", filepath.Dir(out), names)
	}

	// A regular file where a parent directory should be.
	blocked := filepath.Join(out, "x.cmake")
	if err := WriteArtifact(blocked, []byte("x\n")); KindOf(err) != IOError {
		t.Errorf("WriteArtifact(%q)=%v; want %v", blocked, err, IOError)
	}
	if got, err := os.ReadFile(out); err != nil || string(got) != "second\n" {
		t.Errorf("%s=%q, %v after failed write; want %q", out, got, err, "second\n")
	}
}

func TestCheckArtifact(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "ab.cmake")
	want := []byte("set(X 1)\n")

	for _, tc := range []struct {
		have *string
		want CheckStatus
	}{
		{have: nil, want: Missing},
		{have: strPtr("set(X 2)\n"), want: Stale},
		{have: strPtr("set(X 1)"), want: Stale},
		{have: strPtr("set(X 1)\n"), want: UpToDate},
	} {
		if tc.have != nil {
			if err := os.WriteFile(out, []byte(*tc.have), 0644); err != nil {
				t.Fatal(err)
			}
		}
		got, err := CheckArtifact(out, want)
		if err != nil {
			t.Errorf("CheckArtifact()=_, %v", err)
		}
		if got != tc.want {
			t.Errorf("CheckArtifact() with %v=%v, want %v", tc.have != nil, got, tc.want)
		}
	}

	_, err := CheckArtifact(dir, want)
	if KindOf(err) != IOError {
		t.Errorf("CheckArtifact(dir)=_, %v; want %v", err, IOError)
	}
}

func strPtr(s string) *string { return &s }

func TestArtifactDiff(t *testing.T) {
	d := ArtifactDiff("set(X 1)\n", "set(X 2)\n")
	if !strings.Contains(d, "1") || !strings.Contains(d, "2") {
		t.Errorf("ArtifactDiff()=%q, want both versions", d)
	}
	if d := ArtifactDiff("same", "same"); d != "same" {
		t.Errorf("ArtifactDiff(same, same)=%q, want %q", d, "same")
	}
}
