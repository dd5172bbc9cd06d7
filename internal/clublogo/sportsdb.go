package clublogo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// SportsDB is a rate-limited client for TheSportsDB team search.
type SportsDB struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewSportsDB creates a TheSportsDB client allowing requestsPerMinute calls.
func NewSportsDB(baseURL, apiKey string, requestsPerMinute int, logger *slog.Logger) *SportsDB {
	if logger == nil {
		logger = slog.Default()
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	rps := float64(requestsPerMinute) / 60.0
	return &SportsDB{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

type searchTeamsResponse struct {
	Teams []struct {
		Name  string `json:"strTeam"`
		Badge string `json:"strBadge"`
	} `json:"teams"`
}

// Badge returns the badge URL of the first team matching name, or "" when
// the search has no hits.
func (c *SportsDB) Badge(ctx context.Context, name string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	u := fmt.Sprintf("%s/%s/searchteams.php?%s", c.baseURL, url.PathEscape(c.apiKey), url.Values{"t": {name}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("search teams: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("searchteams returned %d: %s", resp.StatusCode, truncate(body, 200))
	}

	var result searchTeamsResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(result.Teams) == 0 {
		return "", nil
	}
	c.logger.Debug("TheSportsDB hit", "query", name, "team", result.Teams[0].Name)
	return result.Teams[0].Badge, nil
}

func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
