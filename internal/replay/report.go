// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package replay

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

type Result struct {
	Expect string
	Passed bool
	Err    error
}

type Report struct {
	Scenario string
	Results  []Result
	Duration time.Duration
}

func (r *Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}

func (r *Report) Passed() bool {
	return r.Failures() == 0
}

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
)

// Print writes one line per expectation followed by a summary. Colors follow
// color.NoColor.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", r.Scenario, dim(fmt.Sprintf("(%s)", r.Duration.Round(time.Millisecond))))

	for _, res := range r.Results {
		label := passLabel("PASS")
		if !res.Passed {
			label = failLabel("FAIL")
		}
		fmt.Fprintf(w, "  %s %s", label, res.Expect)
		if res.Err != nil {
			fmt.Fprintf(w, " %s", dim(res.Err.Error()))
		}
		fmt.Fprintln(w)
	}

	if r.Passed() {
		fmt.Fprintf(w, "  %s\n", passLabel(fmt.Sprintf("%d/%d passed", len(r.Results), len(r.Results))))
	} else {
		fmt.Fprintf(w, "  %s\n", failLabel(fmt.Sprintf("%d/%d failed", r.Failures(), len(r.Results))))
	}
}
