// Package display formats save values for terminal output.
package display

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// German grouping: dots as thousands separators.
var printer = message.NewPrinter(language.German)

// Count formats n with dot thousands separators: 10000000 -> "10.000.000".
func Count(n int64) string {
	return printer.Sprintf("%d", n)
}

// Money formats a balance in euros: 50000000 -> "€50.000.000".
func Money(n int64) string {
	return "€" + Count(n)
}
