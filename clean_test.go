package schooldir_test

import (
	"testing"

	"github.com/fwojciec/schooldir"
	"github.com/stretchr/testify/assert"
)

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("trims lines and drops empty ones", func(t *testing.T) {
		t.Parallel()

		got := schooldir.NewCleaner().Clean("  Acme Charter School  \n\n   \n\tK-8\r\n")

		assert.Equal(t, []string{"Acme Charter School", "K-8"}, got)
	})

	t.Run("removes network name and nothing else", func(t *testing.T) {
		t.Parallel()

		text := "Acme Charter School\nIllinois Network of Charter Schools\n123 Main St, Chicago, IL 60601"

		got := schooldir.NewCleaner().Clean(text)

		assert.Equal(t, []string{"Acme Charter School", "123 Main St, Chicago, IL 60601"}, got)
	})

	t.Run("removes boilerplate", func(t *testing.T) {
		t.Parallel()

		tests := []string{
			"Privacy - Terms",
			"Home | Find a Charter School | About",
			"3/20",
			"https://www.incschools.org/find-a-charter-school/?grade=k",
			"7/4/25, 10:15 AM Find schools",
			"145 Results",
			"Results",
		}
		for _, line := range tests {
			assert.Empty(t, schooldir.NewCleaner().Clean(line), "line %q should be removed", line)
		}
	})

	t.Run("keeps long results sentences", func(t *testing.T) {
		t.Parallel()

		line := "Results of the school quality review"

		assert.Equal(t, []string{line}, schooldir.NewCleaner().Clean(line))
	})

	t.Run("keeps duplicates in order", func(t *testing.T) {
		t.Parallel()

		got := schooldir.NewCleaner().Clean("Charter\nK-8\nCharter")

		assert.Equal(t, []string{"Charter", "K-8", "Charter"}, got)
	})

	t.Run("uses configured date stamp", func(t *testing.T) {
		t.Parallel()

		cleaner := &schooldir.Cleaner{DateStamp: "1/2/26"}

		got := cleaner.Clean("1/2/26, 9:00 AM\n7/4/25, 10:15 AM")

		assert.Equal(t, []string{"7/4/25, 10:15 AM"}, got)
	})

	t.Run("empty date stamp keeps all dated lines", func(t *testing.T) {
		t.Parallel()

		cleaner := &schooldir.Cleaner{}

		got := cleaner.Clean("7/4/25, 10:15 AM")

		assert.Equal(t, []string{"7/4/25, 10:15 AM"}, got)
	})
}
