// Package htmlsanitize strips unsafe HTML from operator-entered rich text
// before it is stored (settings footer, quote notes).
package htmlsanitize

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	once   sync.Once
	policy *bluemonday.Policy
)

// Sanitize removes scripts, event handlers, and javascript: URLs while
// preserving common formatting tags and safe links.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}
	once.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return strings.TrimSpace(policy.Sanitize(input))
}
