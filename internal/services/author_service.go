package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"library-catalog/internal/metrics"
	"library-catalog/internal/models"
)

const (
	// DefaultBaseURL is the public Open Library endpoint
	DefaultBaseURL = "https://openlibrary.org"
	// DefaultConcurrency limits in-flight author searches
	DefaultConcurrency = 10
	// DefaultTimeout for a single search request
	DefaultTimeout = 10 * time.Second
)

var yearPattern = regexp.MustCompile(`\b(1[0-9]{3}|2[0-9]{3})\b`)

// Surname particles kept with the family name ("Le Guin", "van Vogt").
var nameParticles = map[string]struct{}{
	"da": {}, "de": {}, "del": {}, "der": {}, "di": {}, "du": {},
	"la": {}, "le": {}, "van": {}, "von": {},
}

// AuthorImporter resolves free-text author names against the Open Library
// author search and turns the best match into a catalog Author.
type AuthorImporter struct {
	httpClient  *http.Client
	baseURL     string
	limiter     *rate.Limiter
	concurrency int
	validate    *validator.Validate
}

// ImporterOption configures an AuthorImporter.
type ImporterOption func(*AuthorImporter)

func WithHTTPClient(client *http.Client) ImporterOption {
	return func(i *AuthorImporter) {
		i.httpClient = client
	}
}

// WithRateLimit sets the request budget in requests per second.
func WithRateLimit(rps float64) ImporterOption {
	return func(i *AuthorImporter) {
		i.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

func WithConcurrency(n int) ImporterOption {
	return func(i *AuthorImporter) {
		if n > 0 {
			i.concurrency = n
		}
	}
}

func NewAuthorImporter(baseURL string, opts ...ImporterOption) *AuthorImporter {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	importer := &AuthorImporter{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		baseURL:     strings.TrimRight(baseURL, "/"),
		limiter:     rate.NewLimiter(rate.Limit(1), 1),
		concurrency: DefaultConcurrency,
		validate:    models.NewValidator(),
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

type searchResponse struct {
	Docs []searchDoc `json:"docs"`
}

type searchDoc struct {
	Name      string `json:"name"`
	Key       string `json:"key"`
	BirthDate string `json:"birth_date"`
	DeathDate string `json:"death_date"`
	WorkCount int    `json:"work_count"`
}

// Resolve looks up every name concurrently and returns the authors found, in
// the order of names. Names without a usable match are logged and skipped;
// transport failures abort the whole call.
func (i *AuthorImporter) Resolve(ctx context.Context, names []string) ([]models.Author, error) {
	logger := zerolog.Ctx(ctx)
	results := make([]*models.Author, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(i.concurrency)

	for idx, name := range names {
		g.Go(func() error {
			doc, err := i.search(gctx, name)
			if err != nil {
				return fmt.Errorf("author %q: %w", name, err)
			}
			if doc == nil {
				logger.Warn().Str("author", name).Msg("no authors found")
				return nil
			}

			author, ok := toAuthor(*doc)
			if !ok {
				logger.Warn().Str("author", name).Str("match", doc.Name).Msg("match has no birth year")
				return nil
			}
			if err := i.validate.Struct(author); err != nil {
				logger.Warn().Err(err).Str("author", name).Msg("match failed validation")
				return nil
			}

			logger.Info().Str("author", author.Name).Int("work_count", doc.WorkCount).Msg("author resolved")
			results[idx] = &author
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	authors := make([]models.Author, 0, len(results))
	for _, author := range results {
		if author != nil {
			authors = append(authors, *author)
		}
	}
	metrics.AuthorsImported.Add(float64(len(authors)))
	return authors, nil
}

// search returns the doc with the highest work count, or nil when there are
// no hits.
func (i *AuthorImporter) search(ctx context.Context, name string) (*searchDoc, error) {
	if err := i.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	searchURL := fmt.Sprintf("%s/search/authors.json?q=%s", i.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := i.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var result searchResponse
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(result.Docs) == 0 {
		return nil, nil
	}

	best := result.Docs[0]
	for _, doc := range result.Docs[1:] {
		if doc.WorkCount > best.WorkCount {
			best = doc
		}
	}
	return &best, nil
}

func toAuthor(doc searchDoc) (models.Author, bool) {
	born := parseYear(doc.BirthDate)
	if born == "" {
		return models.Author{}, false
	}
	return models.Author{
		Name:     catalogName(doc.Name),
		Lifespan: born + "-" + parseYear(doc.DeathDate),
	}, true
}

// parseYear pulls the first four-digit year out of a free-form date such as
// "15 April 1452". It returns "" when there is none.
func parseYear(date string) string {
	return yearPattern.FindString(date)
}

// catalogName rewrites "Given Family" as "Family, Given". Names that already
// contain a comma are returned trimmed.
func catalogName(name string) string {
	name = strings.TrimSpace(name)
	if strings.Contains(name, ",") {
		return name
	}
	parts := strings.Fields(name)
	if len(parts) < 2 {
		return name
	}

	split := len(parts) - 1
	for split > 1 {
		if _, ok := nameParticles[strings.ToLower(parts[split-1])]; !ok {
			break
		}
		split--
	}
	return strings.Join(parts[split:], " ") + ", " + strings.Join(parts[:split], " ")
}
