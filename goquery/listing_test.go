package goquery_test

import (
	"testing"

	"github.com/fwojciec/schooldir"
	"github.com/fwojciec/schooldir/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const directoryHTML = `<!DOCTYPE html>
<html>
<body>
<ul class="schools-list">
  <li>
    <a href="https://www.incschools.org/school/acme/"> Acme Charter School </a>
    <div class="address">123 Main St, Chicago, IL 60601</div>
    <div class="phone">(773) 555-0100</div>
    <div class="grades"><strong>Grades Served:</strong> K-8</div>
    <div class="charter"><strong>Charter Type:</strong> Charter</div>
    <div class="network"><strong>Network:</strong> Acme Schools</div>
  </li>
  <li>
    <a href="https://www.incschools.org/school/zenith/">Zenith Academy</a>
    <div class="phone">(773) 555-0199</div>
    <div class="grades">Grades Served: 9-12</div>
    <div class="charter">Charter Type: Contract</div>
    <div class="network">Network: Zenith Network</div>
  </li>
  <li>
    <div class="address">1 Nowhere Ave, Chicago, IL 60609</div>
  </li>
</ul>
<ul class="other-list"><li><a href="/ignored">Ignored</a></li></ul>
</body>
</html>`

func TestListingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts every field of every item in order", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewListingExtractor().Extract(directoryHTML)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, &schooldir.SchoolListing{
			Name:        "Acme Charter School",
			Link:        "https://www.incschools.org/school/acme/",
			Address:     "123 Main St, Chicago, IL 60601",
			Phone:       "(773) 555-0100",
			Grades:      "K-8",
			CharterType: "Charter",
			Network:     "Acme Schools",
		}, got[0])
	})

	t.Run("missing address leaves other fields unaffected", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewListingExtractor().Extract(directoryHTML)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, &schooldir.SchoolListing{
			Name:        "Zenith Academy",
			Link:        "https://www.incschools.org/school/zenith/",
			Address:     "",
			Phone:       "(773) 555-0199",
			Grades:      "9-12",
			CharterType: "Contract",
			Network:     "Zenith Network",
		}, got[1])
	})

	t.Run("missing anchor yields empty name and link", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewListingExtractor().Extract(directoryHTML)

		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Empty(t, got[2].Name)
		assert.Empty(t, got[2].Link)
		assert.Equal(t, "1 Nowhere Ave, Chicago, IL 60609", got[2].Address)
	})

	t.Run("anchor without href yields empty link", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewListingExtractor().Extract(`<ul class="schools-list"><li><a>Acme</a></li></ul>`)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Acme", got[0].Name)
		assert.Empty(t, got[0].Link)
	})

	t.Run("joins stripped text nodes without separator", func(t *testing.T) {
		t.Parallel()

		html := `<ul class="schools-list"><li><a href="/a"> Acme <span> Charter </span></a>` +
			`<div class="address"> 1 Main St <br> Chicago </div></li></ul>`

		got, err := goquery.NewListingExtractor().Extract(html)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "AcmeCharter", got[0].Name)
		assert.Equal(t, "1 Main StChicago", got[0].Address)
	})

	t.Run("no items yields no listings", func(t *testing.T) {
		t.Parallel()

		got, err := goquery.NewListingExtractor().Extract(`<html><body><p>Loading</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("custom item selector", func(t *testing.T) {
		t.Parallel()

		extractor := goquery.NewListingExtractor()
		extractor.ItemSelector = ".other-list li"

		got, err := extractor.Extract(directoryHTML)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Ignored", got[0].Name)
		assert.Equal(t, "/ignored", got[0].Link)
	})
}
