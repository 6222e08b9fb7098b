package usajobs

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"jobsweep/config"
	"jobsweep/errors"
	"jobsweep/logger"
)

// SearchEndpoint is the job-search endpoint under the API base URL
const SearchEndpoint = "Search"

const defaultTimeout = 30 * time.Second

// Client issues authenticated requests against the USAJobs API.
// Requests are throttled by a rate limiter so paged fetches stay polite.
type Client struct {
	baseURL   string
	userAgent string
	apiKey    string
	pageLimit int
	sortField string
	sortOrder string
	httpc     *http.Client
	limiter   *rate.Limiter
	logger    *zap.SugaredLogger
}

// NewClient creates a client from API configuration
func NewClient(cfg config.APIConfig) *Client {
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestDelayMS > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Duration(cfg.RequestDelayMS)*time.Millisecond), 1)
	}

	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		apiKey:    cfg.Key,
		pageLimit: cfg.PageLimit,
		sortField: cfg.SortField,
		sortOrder: cfg.SortOrder,
		httpc:     &http.Client{Timeout: defaultTimeout},
		limiter:   limiter,
		logger:    logger.ComponentLogger("usajobs"),
	}
}

// Search fetches the full result set for the given endpoint and query
// parameters, following pagination until the reported total is reached or a
// page comes back short. The merged response carries every item across pages.
func (c *Client) Search(ctx context.Context, endpoint string, params url.Values) (*SearchResponse, error) {
	merged := &SearchResponse{}

	for page := 1; ; page++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, errors.WrapTransport(err, "rate limit wait")
		}

		resp, err := c.fetchPage(ctx, endpoint, params, page)
		if err != nil {
			return nil, err
		}

		items := resp.SearchResult.SearchResultItems
		merged.SearchResult.SearchResultItems = append(merged.SearchResult.SearchResultItems, items...)
		merged.SearchResult.SearchResultCountAll = resp.SearchResult.SearchResultCountAll

		c.logger.Debugw("Fetched result page",
			"endpoint", endpoint,
			"page", page,
			"page_count", len(items),
			"total_count", resp.SearchResult.SearchResultCountAll,
		)

		total := resp.SearchResult.SearchResultCountAll
		accumulated := len(merged.SearchResult.SearchResultItems)
		if len(items) == 0 || len(items) < c.pageLimit || (total > 0 && accumulated >= total) {
			break
		}
	}

	merged.SearchResult.SearchResultCount = len(merged.SearchResult.SearchResultItems)
	return merged, nil
}

// SearchTitles fetches positions matching any of the given position titles
func (c *Client) SearchTitles(ctx context.Context, titles []string) (*SearchResponse, error) {
	params := url.Values{}
	for _, title := range titles {
		params.Add("PositionTitle", title)
	}
	return c.Search(ctx, SearchEndpoint, params)
}

// SearchKeywords fetches positions matching any of the given keywords
func (c *Client) SearchKeywords(ctx context.Context, keywords []string) (*SearchResponse, error) {
	params := url.Values{}
	for _, keyword := range keywords {
		params.Add("Keyword", keyword)
	}
	return c.Search(ctx, SearchEndpoint, params)
}

func (c *Client) fetchPage(ctx context.Context, endpoint string, params url.Values, page int) (*SearchResponse, error) {
	query := url.Values{}
	for key, values := range params {
		query[key] = values
	}
	query.Set("ResultsPerPage", strconv.Itoa(c.pageLimit))
	query.Set("SortField", c.sortField)
	query.Set("SortOrder", c.sortOrder)
	query.Set("Page", strconv.Itoa(page))

	requestURL := strings.TrimSuffix(c.baseURL, "/") + "/" + endpoint + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.WrapTransport(err, "build request")
	}
	req.Host = req.URL.Host
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Authorization-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, errors.WrapTransport(err, "fetch "+endpoint)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewTransportf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}

	var doc SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.WrapMalformedRecord(err, "decode "+endpoint+" response")
	}
	return &doc, nil
}
