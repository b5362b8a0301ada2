package geoip

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"search-funnel/domain/models"
	"search-funnel/pkg/config"
)

type memoryCache struct {
	values map[string]string
}

func (m *memoryCache) GetString(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", errors.New("miss")
	}
	return v, nil
}

func (m *memoryCache) SetString(_ context.Context, key, value string, _ time.Duration) error {
	m.values[key] = value
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc) (*GeoClient, *memoryCache) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cache := &memoryCache{values: map[string]string{}}
	return NewGeoClient(config.GeoIPConfig{Endpoint: srv.URL, Timeout: time.Second, CacheTTL: time.Hour}, cache), cache
}

func TestCountry_LooksUpAndCaches(t *testing.T) {
	var calls int32
	client, cache := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/8.8.8.8", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"success","countryCode":"us"}`))
	})

	assert.Equal(t, "US", client.Country(context.Background(), "8.8.8.8"))
	assert.Equal(t, "US", client.Country(context.Background(), "8.8.8.8"))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "US", cache.values["geoip:8.8.8.8"])
}

func TestCountry_PrivateAddressesAreUnknown(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected lookup for %s", r.URL.Path)
	})

	for _, ip := range []string{"127.0.0.1", "10.0.0.4", "192.168.1.1", "not-an-ip", ""} {
		assert.Equal(t, models.Unknown, client.Country(context.Background(), ip), ip)
	}
}

func TestCountry_FailureFallsBackToUnknown(t *testing.T) {
	client, cache := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"fail","message":"reserved range"}`))
	})

	assert.Equal(t, models.Unknown, client.Country(context.Background(), "8.8.4.4"))
	assert.Empty(t, cache.values)
}
