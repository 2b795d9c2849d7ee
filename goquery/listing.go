// Package goquery extracts school listings from rendered HTML using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/schooldir"
	"golang.org/x/net/html"
)

// Ensure ListingExtractor implements schooldir.ListingExtractor at compile time.
var _ schooldir.ListingExtractor = (*ListingExtractor)(nil)

// FieldConfig describes where one listing field is found inside an item.
type FieldConfig struct {
	Selector string
	// Label is removed from the element text when present.
	Label string
}

// ListingExtractor reads school listings from the rendered directory page.
type ListingExtractor struct {
	ItemSelector string
	Address      FieldConfig
	Phone        FieldConfig
	Grades       FieldConfig
	CharterType  FieldConfig
	Network      FieldConfig
}

// NewListingExtractor returns an extractor for the find-a-charter-school page.
func NewListingExtractor() *ListingExtractor {
	return &ListingExtractor{
		ItemSelector: schooldir.DefaultListingSelector,
		Address:      FieldConfig{Selector: "div.address"},
		Phone:        FieldConfig{Selector: "div.phone"},
		Grades:       FieldConfig{Selector: "div.grades", Label: "Grades Served:"},
		CharterType:  FieldConfig{Selector: "div.charter", Label: "Charter Type:"},
		Network:      FieldConfig{Selector: "div.network", Label: "Network:"},
	}
}

// Extract returns one listing per item matching ItemSelector, in document order.
// Missing elements yield empty fields; items are neither validated nor
// deduplicated.
func (e *ListingExtractor) Extract(htmlContent string) ([]*schooldir.SchoolListing, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return nil, schooldir.Errorf(schooldir.EINVALID, "failed to parse HTML: %v", err)
	}

	var listings []*schooldir.SchoolListing
	doc.Find(e.ItemSelector).Each(func(_ int, item *goquery.Selection) {
		anchor := item.Find("a").First()
		link, _ := anchor.Attr("href")

		listings = append(listings, &schooldir.SchoolListing{
			Name:        strippedText(anchor),
			Link:        link,
			Address:     e.field(item, e.Address),
			Phone:       e.field(item, e.Phone),
			Grades:      e.field(item, e.Grades),
			CharterType: e.field(item, e.CharterType),
			Network:     e.field(item, e.Network),
		})
	})

	return listings, nil
}

func (e *ListingExtractor) field(item *goquery.Selection, cfg FieldConfig) string {
	sel := item.Find(cfg.Selector).First()
	if sel.Length() == 0 {
		return ""
	}
	text := strippedText(sel)
	if cfg.Label != "" {
		text = strings.TrimSpace(strings.ReplaceAll(text, cfg.Label, ""))
	}
	return text
}

// strippedText returns the text of the first node in sel with every text node
// trimmed, empty ones skipped, and the rest joined without a separator.
// Markup such as "<b>Network:</b> Acme" therefore reads "Network:Acme".
func strippedText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}

	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(strings.TrimSpace(n.Data))
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(sel.Get(0))

	return b.String()
}
