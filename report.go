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
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Reporter prints status lines for the user. Colors are only used when
// the writers are terminals.
type Reporter struct {
	out, errOut io.Writer

	okStyle   lipgloss.Style
	failStyle lipgloss.Style
	hintStyle lipgloss.Style
}

func NewReporter(out, errOut io.Writer) *Reporter {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)
	return &Reporter{
		out:       out,
		errOut:    errOut,
		okStyle:   outR.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		failStyle: errR.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		hintStyle: errR.NewStyle().Faint(true),
	}
}

func (r *Reporter) OK(f string, a ...interface{}) {
	fmt.Fprintf(r.out, "%s %s\n", r.okStyle.Render("ok:"), fmt.Sprintf(f, a...))
}

func (r *Reporter) Fail(f string, a ...interface{}) {
	fmt.Fprintf(r.errOut, "%s %s\n", r.failStyle.Render("error:"), fmt.Sprintf(f, a...))
}

func (r *Reporter) Hint(f string, a ...interface{}) {
	fmt.Fprintf(r.errOut, "   %s\n", r.hintStyle.Render(fmt.Sprintf(f, a...)))
}

// Text writes s unstyled to the error stream.
func (r *Reporter) Text(s string) {
	io.WriteString(r.errOut, s)
}
