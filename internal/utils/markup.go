package utils

import (
	"html"
	"strings"

	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/microcosm-cc/bluemonday"
)

// MarkupGuard rejects user text that contains HTML markup.
// Accepted text is stored exactly as posted.
type MarkupGuard struct {
	policy *bluemonday.Policy
}

func NewMarkupGuard() *MarkupGuard {
	return &MarkupGuard{policy: bluemonday.StrictPolicy()}
}

// the html tokenizer folds CR and CRLF into LF inside text
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Check returns a validation error when the strict policy would drop anything from s.
// Text tokens come back entity-escaped, so both sides are compared unescaped.
func (g *MarkupGuard) Check(s string) error {
	s = newlines.Replace(s)
	if html.UnescapeString(g.policy.Sanitize(s)) != html.UnescapeString(s) {
		return errors.Validation("tidak dapat memproses permintaan karena konten mengandung markup HTML")
	}
	return nil
}
