package schooldir

import (
	"regexp"
	"strings"
)

// DefaultDateStamp is the print date found at the start of the page header
// lines of the published listing.
const DefaultDateStamp = "7/4/25"

// SearchURLFragment appears in the page footer of the printed search results.
const SearchURLFragment = "https://www.incschools.org/find-a-charter-school/?"

// boilerplatePhrases are site navigation strings repeated on every page.
var boilerplatePhrases = []string{
	"Privacy - Terms",
	"Find a Charter School",
	"Illinois Network of Charter Schools",
}

var pageNumberRe = regexp.MustCompile(`^\d+/\d+$`)

// Cleaner removes headers, footers and navigation text from extracted text.
type Cleaner struct {
	// DateStamp drops lines starting with it. Empty disables the check.
	DateStamp string
}

// NewCleaner returns a Cleaner for the published listing.
func NewCleaner() *Cleaner {
	return &Cleaner{DateStamp: DefaultDateStamp}
}

// Clean splits text into trimmed lines and drops empty and boilerplate lines.
// The remaining lines keep their order; duplicates are kept.
func (c *Cleaner) Clean(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || c.isBoilerplate(line) {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (c *Cleaner) isBoilerplate(line string) bool {
	for _, phrase := range boilerplatePhrases {
		if strings.Contains(line, phrase) {
			return true
		}
	}
	if pageNumberRe.MatchString(line) {
		return true
	}
	if strings.Contains(line, SearchURLFragment) {
		return true
	}
	if c.DateStamp != "" && strings.HasPrefix(line, c.DateStamp) {
		return true
	}
	// Result count banners such as "42 Results".
	if strings.Contains(line, "Results") && strings.Count(line, " ") < 3 {
		return true
	}
	return false
}
