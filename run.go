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
	"os"

	"github.com/golang/glog"
)

// Process exit codes shared by the tools.
const (
	ExitOK      = 0
	ExitMissing = 1
	ExitStale   = 2
	ExitError   = 3
)

var (
	errArtifactMissing = errors.New("missing (check failed)")
	errArtifactStale   = errors.New("out of date")
)

// Job generates one file.
type Job struct {
	// Name is the command to run to regenerate Output, shown when a
	// check fails.
	Name   string
	Output string
	// Check compares Output with the rendered content instead of
	// writing it.
	Check    bool
	ShowDiff bool
	// Render computes the content of Output.
	Render func() (string, error)
	// Done, if set, returns the message printed after Output was written.
	Done func(content string) string
}

// Run executes job and returns the process exit code. Nothing is written
// unless rendering succeeded.
func Run(job Job, r *Reporter) int {
	content, err := job.Render()
	if err != nil {
		glog.Errorf("%s: %v", job.Output, err)
		r.Fail("%v", err)
		return ExitError
	}
	if job.Check {
		return check(job, content, r)
	}
	if err := WriteArtifact(job.Output, []byte(content)); err != nil {
		glog.Errorf("%v", err)
		r.Fail("%v", err)
		return ExitError
	}
	if job.Done != nil {
		r.OK("%s", job.Done(content))
	} else {
		r.OK("%s generated (%d bytes)", job.Output, len(content))
	}
	return ExitOK
}

func check(job Job, content string, r *Reporter) int {
	status, err := CheckArtifact(job.Output, []byte(content))
	if err != nil {
		r.Fail("%v", err)
		return ExitError
	}
	glog.V(1).Infof("%s: %s", job.Output, status)
	switch status {
	case Missing:
		r.Fail("%v", &Error{Kind: FileNotFound, Filename: job.Output, Err: errArtifactMissing})
		return ExitMissing
	case Stale:
		r.Fail("%v", &Error{Kind: StaleArtifact, Filename: job.Output, Err: errArtifactStale})
		if job.Name != "" {
			r.Hint("Run: %s", job.Name)
		}
		if job.ShowDiff {
			have, err := os.ReadFile(job.Output)
			if err == nil {
				r.Text(ArtifactDiff(string(have), content) + "\n")
			}
		}
		return ExitStale
	}
	r.OK("%s is up to date.", job.Output)
	return ExitOK
}
