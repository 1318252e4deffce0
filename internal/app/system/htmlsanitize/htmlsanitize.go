// Package htmlsanitize strips markup from user-authored free text before
// it is stored on the workspace aggregate.
//
// Chat messages, task comments, titles, and descriptions are echoed back
// to every team member's client, so they pass through bluemonday's strict
// policy: all tags are removed and only text content survives.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s, returning plain text.
func Text(s string) string {
	return strict.Sanitize(s)
}
