// Copyright 2024 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package walkctl

import (
	"strings"
	"unicode/utf16"

	"github.com/rivo/uniseg"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Text is window text as the native layer stores it: free of NULs and in
// NFC form.
type Text struct {
	s string
}

func NewText(raw string) Text {
	if strings.IndexByte(raw, 0) >= 0 {
		raw = strings.ReplaceAll(raw, "\x00", "")
	}
	return Text{s: norm.NFC.String(raw)}
}

func (t Text) String() string {
	return t.s
}

// Len returns the length in UTF-16 code units, the unit native length
// limits are expressed in.
func (t Text) Len() int {
	n := 0
	for _, r := range t.s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Graphemes returns the number of user-perceived characters.
func (t Text) Graphemes() int {
	return uniseg.GraphemeClusterCount(t.s)
}

// CompareOptions selects a collation.
type CompareOptions struct {
	Language   language.Tag
	IgnoreCase bool
	// Numeric orders runs of digits by value.
	Numeric bool
}

func (o CompareOptions) collator() *collate.Collator {
	var opts []collate.Option
	if o.IgnoreCase {
		opts = append(opts, collate.IgnoreCase)
	}
	if o.Numeric {
		opts = append(opts, collate.Numeric)
	}
	return collate.New(o.Language, opts...)
}

// Compare collates t against u and returns -1, 0 or 1.
func (t Text) Compare(u Text, opts CompareOptions) int {
	return opts.collator().CompareString(t.s, u.s)
}
