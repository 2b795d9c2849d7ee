package schooldir

import "sort"

// maxGradeLevelCounts caps the grade level distribution in a Summary.
const maxGradeLevelCounts = 10

// ValueCount is the number of records sharing a field value.
type ValueCount struct {
	Value string
	Count int
}

// Summary describes an extraction run.
type Summary struct {
	Total       int
	WithPhone   int
	WithRating  int
	GradeLevels []ValueCount // most frequent first, at most 10
	Ratings     []ValueCount // most frequent first
}

// Summarize counts field coverage and value frequencies over records.
// Empty values are counted like any other value.
func Summarize(records []*SchoolRecord) Summary {
	s := Summary{Total: len(records)}

	var grades, ratings []string
	for _, r := range records {
		if r.Phone != "" {
			s.WithPhone++
		}
		if r.SQRPRating != "" {
			s.WithRating++
		}
		grades = append(grades, r.GradeLevels)
		ratings = append(ratings, r.SQRPRating)
	}

	s.GradeLevels = countValues(grades)
	if len(s.GradeLevels) > maxGradeLevelCounts {
		s.GradeLevels = s.GradeLevels[:maxGradeLevelCounts]
	}
	s.Ratings = countValues(ratings)

	return s
}

// countValues returns value frequencies sorted by count descending.
// Ties keep the order in which values were first seen.
func countValues(values []string) []ValueCount {
	index := make(map[string]int)
	var counts []ValueCount
	for _, v := range values {
		if i, ok := index[v]; ok {
			counts[i].Count++
			continue
		}
		index[v] = len(counts)
		counts = append(counts, ValueCount{Value: v, Count: 1})
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}
