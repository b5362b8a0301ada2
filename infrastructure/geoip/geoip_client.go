package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"search-funnel/domain/models"
	"search-funnel/domain/services"
	"search-funnel/pkg/config"
	"search-funnel/pkg/logger"
)

// Cache is the subset of the redis client used for lookups.
type Cache interface {
	GetString(ctx context.Context, key string) (string, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
}

// GeoClient resolves visitor countries through an ip-api compatible endpoint.
type GeoClient struct {
	endpoint   string
	httpClient *http.Client
	cache      Cache
	cacheTTL   time.Duration
}

var _ services.CountryResolver = (*GeoClient)(nil)

type lookupResponse struct {
	Status      string `json:"status"`
	CountryCode string `json:"countryCode"`
	Message     string `json:"message,omitempty"`
}

func NewGeoClient(cfg config.GeoIPConfig, cache Cache) *GeoClient {
	return &GeoClient{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/") + "/",
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache,
		cacheTTL:   cfg.CacheTTL,
	}
}

// Country never fails: anything it cannot resolve is models.Unknown.
func (g *GeoClient) Country(ctx context.Context, ip string) string {
	parsed := net.ParseIP(ip)
	if parsed == nil || parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified() || parsed.IsLinkLocalUnicast() {
		return models.Unknown
	}

	key := "geoip:" + ip
	if g.cache != nil {
		if code, err := g.cache.GetString(ctx, key); err == nil && code != "" {
			return code
		}
	}

	code, err := g.lookup(ctx, ip)
	if err != nil {
		logger.Debug(logger.CategoryTracking, "geoip_lookup", "Country lookup failed", map[string]interface{}{
			"ip":    ip,
			"error": err.Error(),
		})
		return models.Unknown
	}

	if g.cache != nil {
		_ = g.cache.SetString(ctx, key, code, g.cacheTTL)
	}
	return code
}

func (g *GeoClient) lookup(ctx context.Context, ip string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+ip+"?fields=status,message,countryCode", nil)
	if err != nil {
		return "", err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo endpoint returned %d", resp.StatusCode)
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode geo response: %w", err)
	}
	if body.Status != "success" || body.CountryCode == "" {
		return "", fmt.Errorf("lookup failed: %s", body.Message)
	}
	return strings.ToUpper(body.CountryCode), nil
}

// NoopResolver is used when lookups are disabled.
type NoopResolver struct{}

func (NoopResolver) Country(context.Context, string) string {
	return models.Unknown
}
