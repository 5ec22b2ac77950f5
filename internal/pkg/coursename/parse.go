// Package coursename turns a raw course listing such as
// "AAE 4311 : OPEN ELECTIVE - INTRODUCTION TO AEROSPACE ENGINEERING"
// into its code, display title and department.
package coursename

import (
	"regexp"
	"strings"
)

// OtherDepartment is used when a code carries no leading department letters.
const OtherDepartment = "OTHER"

// maxSeparatorIndex bounds where a separator may start. Anything further in
// is treated as part of the title.
const maxSeparatorIndex = 15

// separators in priority order
var separators = []string{" : ", " - ", ": "}

var (
	departmentPattern = regexp.MustCompile(`^[A-Z]+`)

	// Applied once each, in this order.
	boilerplatePrefixes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^OPEN ELECTIVE\s*-?\s*`),
		regexp.MustCompile(`(?i)^ELECTIVE\s*-?\s*`),
		regexp.MustCompile(`(?i)^ELCTIVE\s*-?\s*`), // misspelling present in the source listings
	}
)

// Listing is the structured form of a raw course listing.
type Listing struct {
	Code       string
	Title      string
	Department string
}

// Parse splits a listing into code and title and derives the department.
// It never fails: a listing without a recognised separator yields an empty
// code, the OTHER department and the whole input as title.
func Parse(raw string) Listing {
	code, title := splitCode(raw)

	return Listing{
		Code:       code,
		Title:      CleanTitle(title),
		Department: Department(code),
	}
}

func splitCode(raw string) (string, string) {
	for _, sep := range separators {
		idx := strings.Index(raw, sep)
		if idx > 0 && idx < maxSeparatorIndex {
			return strings.TrimSpace(raw[:idx]), strings.TrimSpace(raw[idx+len(sep):])
		}
	}
	return "", raw
}

// Department returns the leading run of uppercase letters of code, or
// OtherDepartment when there is none.
func Department(code string) string {
	if dept := departmentPattern.FindString(code); dept != "" {
		return dept
	}
	return OtherDepartment
}

// CleanTitle strips the "OPEN ELECTIVE -" style boilerplate from the start of a title.
func CleanTitle(title string) string {
	for _, p := range boilerplatePrefixes {
		title = p.ReplaceAllString(title, "")
	}
	return strings.TrimSpace(title)
}
