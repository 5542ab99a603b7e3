package catalog

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Importer parses meal entries out of an HTML catalog export. The expected
// markup is one element per meal carrying a `data-meal` attribute:
//
//	<article data-meal data-diet="veg" data-plans="weight-loss,fat-loss"
//	         data-allergens="dairy" data-calories="320">
//	  <h3>Paneer Tikka</h3>
//	  <span class="emoji">🍢</span>
//	  <p class="description">Marinated cottage cheese cubes...</p>
//	</article>
type Importer struct {
	client *http.Client
}

// NewImporter creates an Importer with a sane request timeout.
func NewImporter() *Importer {
	return &Importer{
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// ImportURL fetches the URL and parses the meal entries found in the page.
func (im *Importer) ImportURL(url string) ([]Meal, error) {
	resp, err := im.client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catalog page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch catalog page: status %d", resp.StatusCode)
	}

	return im.Parse(resp.Body)
}

// Parse extracts meal entries from HTML. Entries missing a name or with an
// unparsable calorie count are skipped rather than failing the whole import.
func (im *Importer) Parse(r io.Reader) ([]Meal, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var meals []Meal
	doc.Find("[data-meal]").Each(func(_ int, s *goquery.Selection) {
		name := strings.TrimSpace(s.Find("h3").First().Text())
		if name == "" {
			return
		}

		calories, err := strconv.Atoi(strings.TrimSpace(s.AttrOr("data-calories", "")))
		if err != nil || calories < 0 {
			return
		}

		meals = append(meals, Meal{
			Name:        name,
			Description: strings.TrimSpace(s.Find(".description").First().Text()),
			Emoji:       strings.TrimSpace(s.Find(".emoji").First().Text()),
			Diet:        Diet(s.AttrOr("data-diet", "")),
			Calories:    calories,
			Plans:       splitTags(s.AttrOr("data-plans", "")),
			Allergens:   splitList(s.AttrOr("data-allergens", "")),
		})
	})

	return meals, nil
}

func splitTags(raw string) []PlanTag {
	var tags []PlanTag
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, PlanTag(part))
		}
	}
	return tags
}

func splitList(raw string) []string {
	var items []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
