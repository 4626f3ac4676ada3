package sii

import (
	"regexp"
	"strconv"
	"strings"
)

// Document is a decoded save document. Lookups scan the text on every call;
// no structured view is kept.
type Document struct {
	content string
}

// NewDocument wraps text for editing.
func NewDocument(text string) *Document {
	return &Document{content: text}
}

// Content returns the current document text.
func (d *Document) Content() string {
	return d.content
}

// hspace is horizontal whitespace, Unicode spaces included. It excludes '\n'
// so a match never leaves its line.
const hspace = `[\p{Zs}\t\f\r\v]*`

// propertyPattern matches one "key: value" line for a literal key. The three
// groups are the prefix up to the value, the value, and trailing whitespace.
func propertyPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^(` + hspace + regexp.QuoteMeta(key) + hspace + `:` + hspace + `)(.+?)(` + hspace + `)$`)
}

// Get returns the trimmed value of the first line assigning key.
func (d *Document) Get(key string) (string, bool) {
	m := propertyPattern(key).FindStringSubmatch(d.content)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[2]), true
}

// Set replaces the value of the first line assigning key, keeping the line's
// indentation, spacing and trailing whitespace. It reports false and leaves
// the document unchanged when key is absent or value spans more than one line.
func (d *Document) Set(key, value string) bool {
	if strings.ContainsAny(value, "\r\n") {
		return false
	}
	loc := propertyPattern(key).FindStringSubmatchIndex(d.content)
	if loc == nil {
		return false
	}
	start, end := loc[4], loc[5]
	d.content = d.content[:start] + value + d.content[end:]
	return true
}

// Int returns the first value assigned to key parsed as an integer.
func (d *Document) Int(key string) (int64, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SetInt sets key to the decimal representation of n.
func (d *Document) SetInt(key string, n int64) bool {
	return d.Set(key, strconv.FormatInt(n, 10))
}
