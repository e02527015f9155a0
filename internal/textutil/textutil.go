// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textutil cleans untrusted text and normalizes dates before
// records reach the core utilities.
package textutil

import (
	"strings"
	"time"

	"github.com/pdiddy/researchlib/pkg/types"
)

// ISODate is the layout every normalized date uses.
const ISODate = "2006-01-02"

var unsafeChars = strings.NewReplacer(
	"<", "", ">", "", `"`, "", "'", "", "%", "",
	";", "", "(", "", ")", "", "&", "", "+", "",
)

// SanitizeText removes the characters < > " ' % ; ( ) & + and trims
// surrounding whitespace.
func SanitizeText(s string) string {
	return strings.TrimSpace(unsafeChars.Replace(s))
}

// inputLayouts are tried in order by FormatDate.
var inputLayouts = []string{"01/02/2006", ISODate}

// FormatDate converts a date written as MM/DD/YYYY or YYYY-MM-DD into
// YYYY-MM-DD.
func FormatDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(ISODate), nil
		}
	}
	return "", types.NewInputError("date", "date format not recognized, use MM/DD/YYYY or YYYY-MM-DD: "+s)
}

// Today returns the date of now in YYYY-MM-DD form.
func Today(now time.Time) string {
	return now.Format(ISODate)
}
