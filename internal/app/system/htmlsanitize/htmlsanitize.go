// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips unsafe markup from HTML fragments before
// they are handed to templates as trusted content.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

// fragmentPolicy permits user-generated-content elements plus class
// attributes, which the dashboard fragments use for styling.
var fragmentPolicy = func() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("class").Globally()
	return p
}()

// Sanitize removes scripts, event handlers, and javascript: URLs from
// the fragment, keeping structural markup and class attributes.
func Sanitize(fragment string) string {
	return fragmentPolicy.Sanitize(fragment)
}
