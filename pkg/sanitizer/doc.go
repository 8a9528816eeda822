// Package sanitizer normalises raw field input before it is validated.
//
// Every helper is a pure string transform that never fails; unusable input
// simply comes back unchanged or empty. Helpers compose with Apply and Compose:
//
//	normalizeCountry := sanitizer.Compose(sanitizer.Trim, sanitizer.FoldCase)
//	normalizeCountry("  United KINGDOM ") // "united kingdom"
//
// Case folding uses golang.org/x/text/cases so that comparisons behave for
// non-ASCII names as well.
package sanitizer
