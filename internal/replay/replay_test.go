// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wuc656/walkctl/internal/replay"
)

const searchForm = `
name: search
form:
  title: Search
  bounds: {x: 0, y: 0, width: 400, height: 300}
  focus: filter
  children:
    - {type: edit, name: filter, bounds: {x: 10, y: 10, width: 200, height: 20}}
    - {type: pushbutton, name: ok, text: OK, default: true, bounds: {x: 220, y: 10, width: 80, height: 20}}
    - {type: checkbox, name: cb, text: Recursive, bounds: {x: 10, y: 40, width: 100, height: 20}}
    - type: tab
      name: pages
      bounds: {x: 10, y: 70, width: 200, height: 100}
      pages: [{text: Files}, {text: Folders}]
    - type: treeview
      name: tree
      bounds: {x: 220, y: 70, width: 150, height: 100}
      items:
        - text: src
          children: [{text: a.go}, {text: b.go}]
steps:
%s
expect:
%s
`

func parse(t *testing.T, steps, expect string) *replay.Scenario {
	t.Helper()

	sc, err := replay.Parse([]byte(fmt.Sprintf(searchForm, steps, expect)))
	require.NoError(t, err)
	return sc
}

func TestRun_Passes(t *testing.T) {
	sc := parse(t, `
  - {action: type, target: filter, text: abc}
  - {action: key, key: tab}
  - {action: key, key: space}
  - {action: click, target: cb}
  - {action: select, target: pages, index: 1}
  - {action: expand, target: tree, path: src}
  - {action: select, target: tree, path: src/b.go}
  - {action: focus, target: filter}
  - {action: key, key: return}
`, `
  - "[filter.Text] == 'abc'"
  - "len([filter.Text]) == 3"
  - "[ok.Clicks] == 2"
  - "[cb.Checked] && [cb.Clicks] == 1"
  - "[pages.Selected] == 1"
  - "[tree.Selected] == 'b.go' && [tree.Count] == 3"
  - "focus == 'filter'"
`)

	report, err := replay.Run(sc, replay.Options{})
	require.NoError(t, err)
	assert.Equal(t, "search", report.Scenario)
	require.Len(t, report.Results, 7)
	for _, res := range report.Results {
		assert.True(t, res.Passed, "%s: %v", res.Expect, res.Err)
	}
	assert.True(t, report.Passed())
}

func TestRun_ShiftTabAndClose(t *testing.T) {
	sc := parse(t, `
  - {action: key, key: shift+tab}
  - {action: close}
`, `
  - "[tree.Disposed]"
  - "focus == ''"
`)

	report, err := replay.Run(sc, replay.Options{})
	require.NoError(t, err)
	assert.True(t, report.Passed(), "%+v", report.Results)
}

func TestRun_FailuresAreReported(t *testing.T) {
	sc := parse(t, `
  - {action: settext, target: filter, text: xyz}
`, `
  - "[filter.Text] == 'abc'"
  - "[filter.Length]"
  - "[filter.Nope] == 1"
  - "[nobody.Text] == ''"
  - "[filter.Text] == 'xyz'"
`)

	report, err := replay.Run(sc, replay.Options{})
	require.NoError(t, err)
	require.Len(t, report.Results, 5)

	assert.False(t, report.Results[0].Passed)
	assert.NoError(t, report.Results[0].Err)
	assert.Error(t, report.Results[1].Err, "a number is not a boolean")
	assert.ErrorContains(t, report.Results[2].Err, replay.ErrUnknownProperty.Error())
	assert.ErrorContains(t, report.Results[3].Err, replay.ErrUnknownControl.Error())
	assert.True(t, report.Results[4].Passed)
	assert.Equal(t, 4, report.Failures())
	assert.False(t, report.Passed())
}

func TestRun_StepErrors(t *testing.T) {
	tests := []struct {
		name  string
		steps string
	}{
		{name: "unknown target", steps: "  - {action: click, target: ghost}"},
		{name: "tab out of range", steps: "  - {action: select, target: pages, index: 5}"},
		{name: "missing tree item", steps: "  - {action: expand, target: tree, path: src/c.go}"},
		{name: "not a tree", steps: "  - {action: collapse, target: pages, path: src}"},
		{name: "no items", steps: "  - {action: select, target: filter}"},
		{name: "closed twice", steps: "  - {action: close}\n  - {action: close}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := parse(t, tt.steps, "  - 'true'")
			_, err := replay.Run(sc, replay.Options{})
			assert.Error(t, err)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		steps string
		exp   string
	}{
		{name: "unknown action", steps: "  - {action: jump}", exp: "  - 'true'"},
		{name: "missing target", steps: "  - {action: click}", exp: "  - 'true'"},
		{name: "bad key", steps: "  - {action: key, key: hyper+q}", exp: "  - 'true'"},
		{name: "bad button", steps: "  - {action: click, target: ok, button: fourth}", exp: "  - 'true'"},
		{name: "bad expression", steps: "  - {action: type}", exp: "  - '(('"},
		{name: "unknown key", steps: "  - {action: type, speed: 3}", exp: "  - 'true'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := replay.Parse([]byte(fmt.Sprintf(searchForm, tt.steps, tt.exp)))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("form: {title: x}\n"), 0o644))

	sc, err := replay.Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, sc.Name, "the file names an unnamed scenario")

	_, err = replay.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReport_Print(t *testing.T) {
	color.NoColor = true

	r := &replay.Report{
		Scenario: "demo",
		Results: []replay.Result{
			{Expect: "a", Passed: true},
			{Expect: "b", Passed: false},
		},
	}

	var buf bytes.Buffer
	r.Print(&buf)
	assert.Equal(t, "demo (0s)\n  PASS a\n  FAIL b\n  1/2 failed\n", buf.String())
}
