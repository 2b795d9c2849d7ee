package schooldir

import (
	"regexp"
	"strings"
)

// LineKind identifies what a cleaned line of the listing contains.
type LineKind int

// LineKind values, in classification priority order.
const (
	LineUnknown LineKind = iota
	LinePhone
	LineAddress
	LineURL
	LineCharterType
	LineGradeLevels
	LineSQRPRating
	LineSQRPRatingPrefixed
	LineProfileURLPrefixed
)

// String returns the name of the kind.
func (k LineKind) String() string {
	switch k {
	case LinePhone:
		return "phone"
	case LineAddress:
		return "address"
	case LineURL:
		return "url"
	case LineCharterType:
		return "charter_type"
	case LineGradeLevels:
		return "grade_levels"
	case LineSQRPRating:
		return "sqrp_rating"
	case LineSQRPRatingPrefixed:
		return "sqrp_rating_prefixed"
	case LineProfileURLPrefixed:
		return "profile_url_prefixed"
	default:
		return "unknown"
	}
}

// ProfileBaseURL is the prefix of every school profile link.
const ProfileBaseURL = "https://www.incschools.org/school/"

// Line prefixes carrying a labelled value.
const (
	SQRPRatingPrefix = "SQRP Rating:"
	ProfilePrefix    = "School Profile:"
)

// ws matches any Unicode space. PDF text often separates words with
// U+00A0, which \s alone does not match.
const ws = `[\s\p{Zs}]`

var (
	phoneRe       = regexp.MustCompile(`\(\d{3}\)` + ws + `\d{3}-\d{4}`)
	addressRe     = regexp.MustCompile(`^\d+.+?[A-Z]{2}` + ws + `\d{5}(?:-\d{4})?$`)
	profileURLRe  = regexp.MustCompile(`^` + regexp.QuoteMeta(ProfileBaseURL) + `[^/\s\p{Zs}]+/?`)
	gradeLevelsRe = regexp.MustCompile(`^(?:PK` + ws + `?-` + ws + `?\d+|K` + ws + `?-` + ws + `?\d+|\d+` + ws + `?-` + ws + `?\d+|N/A)$`)
	sqrpRatingRe  = regexp.MustCompile(`^(?:Level` + ws + `\d\+?|Not Applicable|Inability to Rate)$`)
)

// ClassifyLine returns the kind of a single cleaned line.
// Patterns are tested in a fixed order and the first match wins, so a line
// holding both a phone number and an address is a phone line.
func ClassifyLine(line string) LineKind {
	switch {
	case phoneRe.MatchString(line):
		return LinePhone
	case addressRe.MatchString(line):
		return LineAddress
	case profileURLRe.MatchString(line):
		return LineURL
	case line == DefaultCharterType:
		return LineCharterType
	case gradeLevelsRe.MatchString(line):
		return LineGradeLevels
	case sqrpRatingRe.MatchString(line):
		return LineSQRPRating
	case strings.HasPrefix(line, SQRPRatingPrefix):
		return LineSQRPRatingPrefixed
	case strings.HasPrefix(line, ProfilePrefix):
		return LineProfileURLPrefixed
	default:
		return LineUnknown
	}
}

// PrefixedValue returns line with every occurrence of prefix removed and
// surrounding whitespace trimmed.
func PrefixedValue(line, prefix string) string {
	return strings.TrimSpace(strings.ReplaceAll(line, prefix, ""))
}
