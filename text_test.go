// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/wuc656/walkctl"
)

func TestNewText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "plain", want: "plain"},
		{raw: "a\x00b\x00", want: "ab"},
		{raw: "e\u0301", want: "\u00e9"},
		{raw: "", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, walkctl.NewText(tt.raw).String(), "raw %q", tt.raw)
	}
}

func TestTextLengths(t *testing.T) {
	tests := []struct {
		text      string
		units     int
		graphemes int
	}{
		{text: "abc", units: 3, graphemes: 3},
		{text: "\U0001F600", units: 2, graphemes: 1},
		{text: "\U0001F1E9\U0001F1EA", units: 4, graphemes: 1},
		{text: "ña", units: 2, graphemes: 2},
	}

	for _, tt := range tests {
		txt := walkctl.NewText(tt.text)
		assert.Equal(t, tt.units, txt.Len(), "%q", tt.text)
		assert.Equal(t, tt.graphemes, txt.Graphemes(), "%q", tt.text)
	}
}

func TestTextCompare(t *testing.T) {
	en := walkctl.CompareOptions{Language: language.English}
	numeric := walkctl.CompareOptions{Language: language.English, Numeric: true}
	folded := walkctl.CompareOptions{Language: language.English, IgnoreCase: true}

	file2, file10 := walkctl.NewText("file2"), walkctl.NewText("file10")
	assert.Equal(t, 1, file2.Compare(file10, en))
	assert.Equal(t, -1, file2.Compare(file10, numeric))

	upper, lower := walkctl.NewText("ABC"), walkctl.NewText("abc")
	assert.NotZero(t, upper.Compare(lower, en))
	assert.Zero(t, upper.Compare(lower, folded))
}
