// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// id_fn.go - node naming schemes.
//
// An IDFn maps a zero-based index to a node label. It must be pure: the same
// index always yields the same label, and distinct indexes yield distinct
// labels, otherwise constructors would silently merge nodes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn names the node at a zero-based index.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterIDFn renders idx as a spreadsheet column: 0→"A", 25→"Z", 26→"AA".
// Panics if idx < 0.
func LetterIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for i := idx; i >= 0; i = i/26 - 1 {
		pos--
		buf[pos] = byte('A' + i%26)
	}

	return string(buf[pos:])
}

// PrefixIDFn returns an IDFn rendering prefix followed by the decimal index,
// e.g. PrefixIDFn("v") gives "v0", "v1", ...
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// WithDefaultIDs resets the scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}

// WithLetterIDs names nodes A, B, ..., Z, AA, AB, ...
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}

// WithPrefixIDs names nodes prefix0, prefix1, ...
func WithPrefixIDs(prefix string) BuilderOption {
	return WithIDScheme(PrefixIDFn(prefix))
}
