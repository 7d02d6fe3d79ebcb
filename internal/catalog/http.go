package catalog

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m3rciful/barbot/core/logger"
	"github.com/m3rciful/barbot/core/telegram/netutil"
	"github.com/m3rciful/barbot/internal/errs"
)

// DefaultBaseURL is the public v1 endpoint of TheCocktailDB.
const DefaultBaseURL = "https://www.thecocktaildb.com/api/json/v1/1/"

const maxBodyBytes = 4 << 20

// Config configures the HTTP catalog.
type Config struct {
	BaseURL string
	// Timeout bounds one catalog call including retries.
	Timeout time.Duration
	// Retries is the number of extra attempts on transient network errors.
	Retries    int
	HTTPClient *http.Client
}

// Client implements Catalog over TheCocktailDB JSON API.
type Client struct {
	base    *url.URL
	http    *http.Client
	timeout time.Duration
}

var _ Catalog = (*Client)(nil)

// NewClient validates cfg and builds a Client.
func NewClient(cfg Config) (*Client, error) {
	raw := strings.TrimSpace(cfg.BaseURL)
	if raw == "" {
		raw = DefaultBaseURL
	}
	if !strings.HasSuffix(raw, "/") {
		raw += "/"
	}
	base, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("catalog: invalid base url %q: %w", raw, err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	hc := cfg.HTTPClient
	if hc == nil {
		hc = netutil.NewHTTPClient(netutil.ClientOptions{
			Timeout:         cfg.Timeout,
			ResponseTimeout: cfg.Timeout,
			Retries:         cfg.Retries,
			Backoff:         300 * time.Millisecond,
		})
	}
	return &Client{base: base, http: hc, timeout: cfg.Timeout}, nil
}

// FindDrinksByName searches full drink records by name.
func (c *Client) FindDrinksByName(ctx context.Context, name string) ([]Drink, error) {
	return fetch(ctx, c, "drinks_by_name", "search.php", url.Values{"s": {name}}, decodeDrink)
}

// FindIngredientByName searches ingredient records by name.
func (c *Client) FindIngredientByName(ctx context.Context, name string) ([]Ingredient, error) {
	return fetch(ctx, c, "ingredient_by_name", "search.php", url.Values{"i": {name}}, decodeIngredient)
}

// FindDrinksByIngredient lists drinks that use ingredient.
func (c *Client) FindDrinksByIngredient(ctx context.Context, ingredient string) ([]LazyDrink, error) {
	return fetch(ctx, c, "drinks_by_ingredient", "filter.php", url.Values{"i": {ingredient}}, decodeLazyDrink)
}

// FindDrinksByCategory lists drinks of a category.
func (c *Client) FindDrinksByCategory(ctx context.Context, category string) ([]LazyDrink, error) {
	return fetch(ctx, c, "drinks_by_category", "filter.php", url.Values{"c": {category}}, decodeLazyDrink)
}

// FindDrinksByFirstLetter lists full drink records starting with letter.
func (c *Client) FindDrinksByFirstLetter(ctx context.Context, letter rune) ([]Drink, error) {
	return fetch(ctx, c, "drinks_by_letter", "search.php", url.Values{"f": {string(letter)}}, decodeDrink)
}

// ListIngredientNames lists every ingredient name known upstream.
func (c *Client) ListIngredientNames(ctx context.Context) ([]string, error) {
	return fetch(ctx, c, "ingredient_names", "list.php", url.Values{"i": {"list"}}, decodeName("strIngredient1"))
}

// ListCategoryNames lists every drink category.
func (c *Client) ListCategoryNames(ctx context.Context) ([]string, error) {
	return fetch(ctx, c, "category_names", "list.php", url.Values{"c": {"list"}}, decodeName("strCategory"))
}

// fetch runs one GET and decodes every item with decode. Items that fail to
// decode are skipped; the call fails with a parse error only when every
// returned item was rejected.
func fetch[T any](ctx context.Context, c *Client, op, path string, query url.Values, decode func(record) (T, error)) ([]T, error) {
	start := time.Now()
	body, err := c.get(ctx, op, path, query)
	if err != nil {
		logger.Warn(ctx, logger.CompCatalog, "fetch",
			slog.String("status", "fail"),
			slog.String("op", op),
			slog.Duration("duration", logger.Took(start)),
			logger.Err(err),
		)
		return nil, err
	}

	items, err := decodeItems(body)
	if err != nil {
		return nil, errs.E(errs.Parse, "catalog."+op, err)
	}
	out := make([]T, 0, len(items))
	var firstErr error
	for _, item := range items {
		v, err := decode(item)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 && firstErr != nil {
		return nil, errs.E(errs.Parse, "catalog."+op, firstErr)
	}
	if skipped := len(items) - len(out); skipped > 0 {
		logger.Debug(ctx, logger.CompCatalog, "fetch.skipped",
			slog.String("op", op),
			slog.Int("skipped", skipped),
			logger.Err(firstErr),
		)
	}

	logger.Debug(ctx, logger.CompCatalog, "fetch",
		slog.String("status", "ok"),
		slog.String("op", op),
		slog.Int("count", len(out)),
		slog.Duration("duration", logger.Took(start)),
	)
	return out, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := c.base.ResolveReference(&url.URL{Path: path, RawQuery: query.Encode()})
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errs.E(errs.Internal, "catalog."+op, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.E(errs.Transport, "catalog."+op, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errs.E(errs.Transport, "catalog."+op, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errs.Ef(errs.Transport, "catalog."+op, "unexpected status %s", resp.Status)
	}
	return body, nil
}
