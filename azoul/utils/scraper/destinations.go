package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"azoul/azoul/sources/psql/models"
	httputils "azoul/azoul/utils/http"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// Markup read by ParseDestinations:
//
//	<article class="destination-card" data-slug="merzouga">
//	  <h3 class="destination-name">Merzouga</h3>
//	  <span class="destination-region">Drâa-Tafilalet</span>
//	  <p class="destination-summary">Dunes of Erg Chebbi …</p>
//	  <img src="/img/merzouga.jpg">
//	</article>
const (
	cardSelector    = ".destination-card"
	nameSelector    = ".destination-name, h2, h3"
	regionSelector  = ".destination-region"
	summarySelector = ".destination-summary, p"
)

// ParseDestinations decodes r using the charset announced by contentType
// (or sniffed from the page) and returns one destination per card. Cards
// without a name are skipped.
func ParseDestinations(r io.Reader, contentType string) ([]models.Destination, error) {
	utf8, err := charset.NewReader(r, contentType)
	if err != nil {
		return nil, fmt.Errorf("decode page: %w", err)
	}
	root, err := html.Parse(utf8)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	destinations := []models.Destination{}
	seen := map[string]bool{}
	doc.Find(cardSelector).Each(func(_ int, card *goquery.Selection) {
		name := collapse(card.Find(nameSelector).First().Text())
		if name == "" {
			return
		}
		slug, _ := card.Attr("data-slug")
		slug = models.Slugify(slug)
		if slug == "" {
			slug = models.Slugify(name)
		}
		if slug == "" || seen[slug] {
			return
		}
		seen[slug] = true

		d := models.Destination{
			Name:    name,
			Slug:    slug,
			Region:  collapse(card.Find(regionSelector).First().Text()),
			Summary: summaryText(card.Find(summarySelector).First()),
		}
		if src, ok := card.Find("img").First().Attr("src"); ok {
			d.ImageURL = strings.TrimSpace(src)
		}
		destinations = append(destinations, d)
	})
	return destinations, nil
}

// FetchDestinations downloads pageURL and parses it. Relative image
// paths are resolved against the page.
func FetchDestinations(ctx context.Context, client *http.Client, pageURL string) ([]models.Destination, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, err
	}
	body, contentType, err := httputils.GetBody(ctx, client, pageURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	destinations, err := ParseDestinations(body, contentType)
	if err != nil {
		return nil, err
	}
	for i := range destinations {
		if destinations[i].ImageURL == "" {
			continue
		}
		if ref, err := url.Parse(destinations[i].ImageURL); err == nil {
			destinations[i].ImageURL = base.ResolveReference(ref).String()
		}
	}
	return destinations, nil
}

// summaryText joins the text nodes under sel, skipping scripts and styles.
func summaryText(sel *goquery.Selection) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			sb.WriteString(n.Data + " ")
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return collapse(sb.String())
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
