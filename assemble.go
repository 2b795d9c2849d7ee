package schooldir

import (
	"unicode"
	"unicode/utf8"
)

// minNameLength is the rune count a line must exceed to be taken as a name.
const minNameLength = 10

// AssembleRecords groups cleaned lines into school records.
//
// An unclassified line longer than minNameLength runes that is not all
// upper-case starts a new school. Classified lines overwrite the matching
// field of the school in progress. A school is emitted only when it is
// complete, so a school whose address line is missing is dropped.
func AssembleRecords(lines []string) []*SchoolRecord {
	var records []*SchoolRecord

	// nil until the first name line is seen.
	var current *SchoolRecord

	flush := func() {
		if current != nil && current.Complete() {
			records = append(records, current)
		}
	}

	for _, line := range lines {
		kind := ClassifyLine(line)

		if kind == LineUnknown {
			if !isNameLine(line) {
				continue
			}
			flush()
			current = &SchoolRecord{
				Name:        line,
				CharterType: DefaultCharterType,
			}
			continue
		}

		// Fields before the first name can never be part of a complete record.
		if current == nil {
			continue
		}

		switch kind {
		case LineAddress:
			current.Address = line
		case LinePhone:
			current.Phone = line
		case LineCharterType:
			current.CharterType = line
		case LineGradeLevels:
			current.GradeLevels = line
		case LineSQRPRating:
			current.SQRPRating = line
		case LineSQRPRatingPrefixed:
			current.SQRPRating = PrefixedValue(line, SQRPRatingPrefix)
		case LineURL:
			current.ProfileURL = line
		case LineProfileURLPrefixed:
			current.ProfileURL = PrefixedValue(line, ProfilePrefix)
		}
	}
	flush()

	return records
}

func isNameLine(line string) bool {
	return utf8.RuneCountInString(line) > minNameLength && !isUpper(line)
}

// isUpper reports whether s has at least one cased rune and no lower-case
// or title-case runes.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		switch {
		case unicode.IsLower(r), unicode.IsTitle(r):
			return false
		case unicode.IsUpper(r):
			cased = true
		}
	}
	return cased
}
