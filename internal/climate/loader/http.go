package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gabriel-vasile/mimetype"

	"github.com/i474232898/temperature-heatmap/internal/climate"
)

// DefaultURL is the public monthly-variance dataset.
const DefaultURL = "https://raw.githubusercontent.com/freeCodeCamp/ProjectReferenceData/master/global-temperature.json"

// HTTPLoader implements climate.Loader with a single GET of a fixed URL.
type HTTPLoader struct {
	name  string
	url   string
	fetch *fetcher
}

// NewHTTPLoader builds a loader for url. retries of zero keeps it to one attempt.
func NewHTTPLoader(client *http.Client, url string, retries int) *HTTPLoader {
	return &HTTPLoader{
		name:  "http",
		url:   url,
		fetch: newFetcher(client, retries),
	}
}

func (l *HTTPLoader) Name() string {
	return l.name
}

// URL returns the dataset location.
func (l *HTTPLoader) URL() string {
	return l.url
}

// Load fetches and decodes the dataset. Failures are *FetchError or *ParseError.
func (l *HTTPLoader) Load(ctx context.Context) (*climate.Dataset, error) {
	body, err := l.fetch.get(ctx, l.url)
	if err != nil {
		return nil, &FetchError{URL: l.url, Err: err}
	}

	return decode(l.url, body)
}

func decode(url string, body []byte) (*climate.Dataset, error) {
	if !isText(mimetype.Detect(body)) {
		return nil, &ParseError{URL: url, Err: errNotText}
	}

	var doc climate.Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{URL: url, Err: err}
	}

	ds, err := doc.Dataset()
	if err != nil {
		return nil, &ParseError{URL: url, Err: fmt.Errorf("invalid dataset: %w", err)}
	}
	return ds, nil
}

// isText walks up the mimetype tree; every textual format descends from text/plain.
func isText(m *mimetype.MIME) bool {
	for ; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
