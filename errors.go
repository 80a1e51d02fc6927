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
)

// ErrorKind classifies failures so callers can branch on outcome.
type ErrorKind int

const (
	UnknownError ErrorKind = iota
	FileNotFound
	ParseError
	IOError
	StaleArtifact
)

func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file not found"
	case ParseError:
		return "parse error"
	case IOError:
		return "i/o error"
	case StaleArtifact:
		return "stale artifact"
	}
	return "error"
}

// Error is returned by every operation in this package.
// Filename is the file being processed and Expr, if any, the include
// expression or version text at fault.
type Error struct {
	Kind     ErrorKind
	Filename string
	Expr     string
	Err      error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Err != nil {
		msg = e.Err.Error()
	}
	switch {
	case e.Filename != "" && e.Expr != "":
		return fmt.Sprintf("%s: %q: %s", e.Filename, e.Expr, msg)
	case e.Filename != "":
		return fmt.Sprintf("%s: %s", e.Filename, msg)
	case e.Expr != "":
		return fmt.Sprintf("%q: %s", e.Expr, msg)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of err, or UnknownError if err did not come
// from this package.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return UnknownError
}

// fileError classifies a failure from the os package.
func fileError(filename, expr string, err error) error {
	kind := IOError
	if errors.Is(err, os.ErrNotExist) {
		kind = FileNotFound
	}
	return &Error{Kind: kind, Filename: filename, Expr: expr, Err: err}
}
