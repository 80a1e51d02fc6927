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
	"path/filepath"
	"regexp"
	"strings"
)

const (
	listDirVar   = "${CMAKE_CURRENT_LIST_DIR}"
	sourceDirVar = "${CMAKE_CURRENT_SOURCE_DIR}"

	moduleExt = ".cmake"
)

var dirPlaceholders = []string{listDirVar, sourceDirVar}

// includeRE runs on masked text, so comment bytes may sit between the
// keyword and the parenthesis.
var includeRE = regexp.MustCompile(`(?i)\binclude[\s\x00]*\(([^)]*)\)`)

var (
	errEmptyInclude      = errors.New("empty include directive")
	errUnterminatedQuote = errors.New("unterminated quote in include directive")
)

// IncludeRef is an include directive found in a document.
type IncludeRef struct {
	// Literal is the directive as written, e.g. "include(\n  a.cmake)".
	// It is always doc[Pos:Pos+len(Literal)].
	Literal string
	// Expr is the path expression with quotes and extra whitespace removed.
	Expr string
	Pos  int
}

// IncludeScanner walks the include directives of a document in order.
// Directives inside comments are never reported.
type IncludeScanner struct {
	doc      string
	masked   string
	filename string
	pos      int
	ref      IncludeRef
	err      error
}

// ScanIncludes returns a scanner over the include directives of doc.
func ScanIncludes(doc string) *IncludeScanner {
	return newIncludeScanner(doc, "")
}

func newIncludeScanner(doc, filename string) *IncludeScanner {
	return &IncludeScanner{
		doc:      doc,
		masked:   maskComments(doc),
		filename: filename,
	}
}

// Scan advances to the next directive. It returns false at the end of
// the document or on a malformed directive; see Err.
func (s *IncludeScanner) Scan() bool {
	if s.err != nil || s.pos >= len(s.masked) {
		return false
	}
	loc := includeRE.FindStringSubmatchIndex(s.masked[s.pos:])
	if loc == nil {
		s.pos = len(s.masked)
		return false
	}
	start, end := s.pos+loc[0], s.pos+loc[1]
	raw := strings.ReplaceAll(s.masked[s.pos+loc[2]:s.pos+loc[3]], string(commentMask), "")
	s.pos = end
	expr, err := cleanIncludeExpr(raw)
	if err != nil {
		s.err = &Error{Kind: ParseError, Filename: s.filename, Expr: s.doc[start:end], Err: err}
		return false
	}
	s.ref = IncludeRef{
		Literal: s.doc[start:end],
		Expr:    expr,
		Pos:     start,
	}
	return true
}

// Ref returns the directive found by the last successful Scan.
func (s *IncludeScanner) Ref() IncludeRef { return s.ref }

// Err returns the parse error that stopped the scan, if any.
func (s *IncludeScanner) Err() error { return s.err }

// ExtractIncludes returns every include directive of doc in document order.
func ExtractIncludes(doc string) ([]IncludeRef, error) {
	return extractIncludes(doc, "")
}

func extractIncludes(doc, filename string) ([]IncludeRef, error) {
	var refs []IncludeRef
	s := newIncludeScanner(doc, filename)
	for s.Scan() {
		refs = append(refs, s.Ref())
	}
	return refs, s.Err()
}

func cleanIncludeExpr(raw string) (string, error) {
	e := strings.TrimSpace(raw)
	if e == "" {
		return "", errEmptyInclude
	}
	if q := e[0]; q == '"' || q == '\'' {
		switch {
		case len(e) >= 2 && e[len(e)-1] == q:
			e = e[1 : len(e)-1]
		case strings.IndexByte(e[1:], q) < 0:
			return "", errUnterminatedQuote
		}
	}
	e = strings.Join(strings.Fields(e), " ")
	if e == "" {
		return "", errEmptyInclude
	}
	return e, nil
}

// IsLocalInclude reports whether expr names a file of this source tree,
// as opposed to a module or package found by CMake itself.
func IsLocalInclude(expr string) bool {
	for _, v := range dirPlaceholders {
		if strings.Contains(expr, v) {
			return true
		}
	}
	if strings.ContainsAny(expr, `/\`) || strings.HasSuffix(expr, moduleExt) {
		return !isAbsPath(expr)
	}
	return false
}

func isAbsPath(p string) bool {
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") || strings.HasPrefix(p, `\`) {
		return true
	}
	// Drive letter, as in C:/foo.
	if len(p) >= 3 && p[1] == ':' && (p[2] == '/' || p[2] == '\\') {
		c := p[0] | 0x20
		return c >= 'a' && c <= 'z'
	}
	return false
}

// ResolveIncludePath maps a local include expression to a canonical
// absolute path, using baseDir for relative expressions. Directory
// placeholders are dropped since they denote baseDir itself.
func ResolveIncludePath(expr, baseDir string) string {
	p := expr
	for _, v := range dirPlaceholders {
		p = strings.ReplaceAll(p, v+"/", "")
		p = strings.ReplaceAll(p, v+`\`, "")
		p = strings.ReplaceAll(p, v, "")
	}
	p = filepath.FromSlash(strings.ReplaceAll(p, `\`, "/"))
	if !filepath.IsAbs(p) {
		p = filepath.Join(baseDir, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p
}
