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
	"sort"
	"strings"

	"github.com/golang/glog"
)

// Amalgamator inlines local includes of CMake files.
// The zero value reads files from the local filesystem.
type Amalgamator struct {
	// ReadFile reads an included file. os.ReadFile is used if nil.
	ReadFile func(filename string) ([]byte, error)
}

// pathChain is the set of files being inlined along one inclusion chain.
// It is never mutated, so a branch only sees its own ancestors.
type pathChain struct {
	path   string
	parent *pathChain
}

func (c *pathChain) push(path string) *pathChain {
	return &pathChain{path: path, parent: c}
}

func (c *pathChain) contains(path string) bool {
	for ; c != nil; c = c.parent {
		if c.path == path {
			return true
		}
	}
	return false
}

func (a *Amalgamator) readFile(filename string) ([]byte, error) {
	if a.ReadFile != nil {
		return a.ReadFile(filename)
	}
	return os.ReadFile(filename)
}

// Amalgamate returns doc with every local include recursively replaced
// by the content of the file it names. Relative paths in doc are taken
// relative to baseDir.
func (a *Amalgamator) Amalgamate(doc, baseDir string) (string, error) {
	return a.amalgamate(doc, "", baseDir, nil)
}

// AmalgamateFile reads filename and amalgamates it relative to its own
// directory. An include leading back to filename is left as written;
// the Python build script inlined the root once more before stopping.
func (a *Amalgamator) AmalgamateFile(filename string) (string, error) {
	path := ResolveIncludePath(filename, ".")
	data, err := a.readFile(path)
	if err != nil {
		return "", fileError(filename, "", err)
	}
	var chain *pathChain
	return a.amalgamate(string(data), filename, filepath.Dir(path), chain.push(path))
}

func (a *Amalgamator) amalgamate(doc, filename, baseDir string, chain *pathChain) (string, error) {
	refs, err := extractIncludes(doc, filename)
	if err != nil {
		return "", err
	}
	local := localRefs(refs)
	sort.SliceStable(local, func(i, j int) bool {
		if local[i].Expr != local[j].Expr {
			return local[i].Expr < local[j].Expr
		}
		return local[i].Literal < local[j].Literal
	})

	repl := make(map[string]string)
	for _, ref := range local {
		if _, ok := repl[ref.Literal]; ok {
			continue
		}
		path := ResolveIncludePath(ref.Expr, baseDir)
		if chain.contains(path) {
			glog.V(1).Infof("%s: %s already on the include chain, left as is", displayName(filename), path)
			continue
		}
		data, err := a.readFile(path)
		if err != nil {
			return "", fileError(displayName(filename), ref.Expr, err)
		}
		glog.V(1).Infof("%s: inline %s", displayName(filename), path)
		content, err := a.amalgamate(string(data), path, filepath.Dir(path), chain.push(path))
		if err != nil {
			return "", err
		}
		repl[ref.Literal] = content
	}
	if len(repl) == 0 {
		return doc, nil
	}

	// Splice at the scanned positions only, so that an identical
	// directive inside a comment stays untouched.
	var sb strings.Builder
	prev := 0
	for _, ref := range refs {
		content, ok := repl[ref.Literal]
		if !ok {
			continue
		}
		sb.WriteString(doc[prev:ref.Pos])
		sb.WriteString(content)
		prev = ref.Pos + len(ref.Literal)
	}
	sb.WriteString(doc[prev:])
	return sb.String(), nil
}

func localRefs(refs []IncludeRef) []IncludeRef {
	var local []IncludeRef
	for _, ref := range refs {
		if IsLocalInclude(ref.Expr) {
			local = append(local, ref)
		}
	}
	return local
}

func displayName(filename string) string {
	if filename == "" {
		return "<input>"
	}
	return filename
}

// LocalIncludes returns the local include directives left in doc.
func LocalIncludes(doc string) ([]IncludeRef, error) {
	refs, err := ExtractIncludes(doc)
	if err != nil {
		return nil, err
	}
	return localRefs(refs), nil
}

// Amalgamate is Amalgamator.Amalgamate on the local filesystem.
func Amalgamate(doc, baseDir string) (string, error) {
	var a Amalgamator
	return a.Amalgamate(doc, baseDir)
}

// AmalgamateFile is Amalgamator.AmalgamateFile on the local filesystem.
func AmalgamateFile(filename string) (string, error) {
	var a Amalgamator
	return a.AmalgamateFile(filename)
}
