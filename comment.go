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

import "strings"

const (
	blockCommentOpen  = "#[["
	blockCommentClose = "]]"
)

// commentSpan is a half-open byte range [start, end) of a comment.
type commentSpan struct {
	start, end int
}

// findComments locates CMake comments in s.
//
// Block comments are taken first, wherever they appear, and a "#[[" with
// no closing "]]" is an ordinary '#'. A line comment starts at the first
// '#' preceded on its line by an even number of '"' and an even number of
// '\''. Escaped quotes are not recognized, so this is an approximation of
// the CMake lexer, not a faithful one. Newlines inside a block comment do
// not end the line for the quote count or for a line comment.
func findComments(s string) []commentSpan {
	var spans []commentSpan
	var dq, sq int
	lineStart := -1
	for i := 0; i < len(s); {
		if strings.HasPrefix(s[i:], blockCommentOpen) {
			if j := strings.Index(s[i+len(blockCommentOpen):], blockCommentClose); j >= 0 {
				end := i + len(blockCommentOpen) + j + len(blockCommentClose)
				if lineStart < 0 {
					spans = append(spans, commentSpan{i, end})
				}
				i = end
				continue
			}
		}
		ch := s[i]
		switch {
		case ch == '\n':
			if lineStart >= 0 {
				end := i
				if end > lineStart && s[end-1] == '\r' {
					end--
				}
				spans = append(spans, commentSpan{lineStart, end})
				lineStart = -1
			}
			dq, sq = 0, 0
		case lineStart >= 0:
		case ch == '#' && dq%2 == 0 && sq%2 == 0:
			lineStart = i
		case ch == '"':
			dq++
		case ch == '\'':
			sq++
		}
		i++
	}
	if lineStart >= 0 {
		spans = append(spans, commentSpan{lineStart, len(s)})
	}
	return spans
}

// StripComments returns doc with all CMake comments removed. Every line
// survives, possibly empty, except the interior line breaks of removed
// block comments.
func StripComments(doc string) string {
	spans := findComments(doc)
	if len(spans) == 0 {
		return doc
	}
	var sb strings.Builder
	sb.Grow(len(doc))
	prev := 0
	for _, sp := range spans {
		sb.WriteString(doc[prev:sp.start])
		prev = sp.end
	}
	sb.WriteString(doc[prev:])
	return sb.String()
}

// commentMask replaces comment bytes in the result of maskComments.
const commentMask = '\x00'

// maskComments overwrites every comment byte of doc with commentMask, so
// offsets into the result are offsets into doc.
func maskComments(doc string) string {
	spans := findComments(doc)
	if len(spans) == 0 {
		return doc
	}
	b := []byte(doc)
	for _, sp := range spans {
		for i := sp.start; i < sp.end; i++ {
			b[i] = commentMask
		}
	}
	return string(b)
}
