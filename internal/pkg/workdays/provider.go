package workdays

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/emre/trainhub/internal/pkg/logger"
)

// Holiday is a single public holiday as returned by the holiday API.
type Holiday struct {
	Date      string   `json:"date"` // YYYY-MM-DD
	LocalName string   `json:"localName"`
	Name      string   `json:"name"`
	Types     []string `json:"types,omitempty"`
}

// HolidayProvider supplies the public holidays for a given year.
type HolidayProvider interface {
	HolidaysForYear(ctx context.Context, year int) ([]Holiday, error)
}

// NagerClient fetches public holidays from the Nager.Date API
// (https://date.nager.at/api/v3/PublicHolidays/{year}/{countryCode}).
type NagerClient struct {
	baseURL     string
	countryCode string
	httpClient  *http.Client
}

// DefaultBaseURL is the public Nager.Date endpoint.
const DefaultBaseURL = "https://date.nager.at/api/v3"

// NewNagerClient creates a holiday API client for the given country code.
func NewNagerClient(baseURL, countryCode string) *NagerClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &NagerClient{
		baseURL:     baseURL,
		countryCode: countryCode,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
	}
}

// HolidaysForYear fetches the public holidays for a year.
func (c *NagerClient) HolidaysForYear(ctx context.Context, year int) ([]Holiday, error) {
	url := fmt.Sprintf("%s/PublicHolidays/%d/%s", c.baseURL, year, c.countryCode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build holiday request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("holiday API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("holiday API returned status %d: %s", resp.StatusCode, string(body))
	}

	var holidays []Holiday
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("failed to decode holiday response: %w", err)
	}

	return holidays, nil
}

// CachedProvider wraps a HolidayProvider with a per-year in-memory cache.
// Public holidays for a fetched year do not change, so entries never expire.
type CachedProvider struct {
	provider HolidayProvider
	cache    *gocache.Cache
}

// NewCachedProvider creates a caching wrapper around the given provider.
func NewCachedProvider(provider HolidayProvider) *CachedProvider {
	return &CachedProvider{
		provider: provider,
		cache:    gocache.New(gocache.NoExpiration, 0),
	}
}

// HolidaysForYear returns the cached holidays for a year, fetching on first miss.
// Fetch failures are not cached, so a later call can retry.
func (p *CachedProvider) HolidaysForYear(ctx context.Context, year int) ([]Holiday, error) {
	key := strconv.Itoa(year)
	if cached, found := p.cache.Get(key); found {
		return cached.([]Holiday), nil
	}

	holidays, err := p.provider.HolidaysForYear(ctx, year)
	if err != nil {
		return nil, err
	}

	p.cache.Set(key, holidays, gocache.NoExpiration)
	logger.Debug().Int("year", year).Int("count", len(holidays)).Msg("Cached public holidays")
	return holidays, nil
}
