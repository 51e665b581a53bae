package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
	"github.com/zatekoja/symptomchecker/backend/pkg/retry"
)

const (
	nominatimReverseURL = "https://nominatim.openstreetmap.org/reverse"
	nominatimUserAgent  = "Disease Information System"
)

// NominatimProvider resolves coordinates through the OpenStreetMap Nominatim
// reverse endpoint.
type NominatimProvider struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	cache       providers.CacheProvider
	retryConfig retry.Config
}

// NewNominatimProvider creates a provider against the public Nominatim
// instance. cache may be nil.
func NewNominatimProvider(cache providers.CacheProvider) *NominatimProvider {
	return NewNominatimProviderWithOptions(cache, nominatimReverseURL, nominatimUserAgent, nil)
}

// NewNominatimProviderWithOptions allows overriding base URL, user agent and
// HTTP client (used for tests and self-hosted instances).
func NewNominatimProviderWithOptions(cache providers.CacheProvider, baseURL, userAgent string, httpClient *http.Client) *NominatimProvider {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = nominatimReverseURL
	}
	if strings.TrimSpace(userAgent) == "" {
		userAgent = nominatimUserAgent
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &NominatimProvider{
		baseURL:     baseURL,
		userAgent:   userAgent,
		httpClient:  httpClient,
		cache:       cache,
		retryConfig: retry.RequestConfig(),
	}
}

func (n *NominatimProvider) Name() string {
	return "nominatim"
}

// ReverseGeocode converts coordinates to an address
func (n *NominatimProvider) ReverseGeocode(ctx context.Context, lat, lon float64) (*providers.GeocodedAddress, error) {
	cacheKey := reverseCacheKey(n.Name(), lat, lon)
	if addr := readCachedAddress(ctx, n.cache, cacheKey); addr != nil {
		return addr, nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("zoom", "18")
	params.Set("addressdetails", "1")

	var payload nominatimReverseResponse
	err := retry.Do(ctx, n.retryConfig, func() error {
		return n.doRequest(ctx, params, &payload)
	})
	if err != nil {
		return nil, err
	}

	if payload.Error != "" {
		return nil, fmt.Errorf("reverse geocode failed: %s", payload.Error)
	}
	if strings.TrimSpace(payload.DisplayName) == "" {
		return nil, fmt.Errorf("no results for coordinates")
	}

	address := providers.GeocodedAddress{
		DisplayName: payload.DisplayName,
		City:        firstNonEmpty(payload.Address.City, payload.Address.Town, payload.Address.Village),
		State:       payload.Address.State,
		Country:     payload.Address.Country,
		Latitude:    lat,
		Longitude:   lon,
	}
	if v, err := strconv.ParseFloat(payload.Lat, 64); err == nil {
		address.Latitude = v
	}
	if v, err := strconv.ParseFloat(payload.Lon, 64); err == nil {
		address.Longitude = v
	}

	writeCachedAddress(ctx, n.cache, cacheKey, &address)
	return &address, nil
}

func (n *NominatimProvider) doRequest(ctx context.Context, params url.Values, out *nominatimReverseResponse) error {
	reqURL := fmt.Sprintf("%s?%s", n.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to build reverse geocode request: %w", err))
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return retry.Permanent(fmt.Errorf("reverse geocode request failed: %w", err))
		}
		return fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := statusError(resp.StatusCode); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return retry.Permanent(fmt.Errorf("failed to decode reverse geocode response: %w", err))
	}
	return nil
}

type nominatimReverseResponse struct {
	DisplayName string           `json:"display_name"`
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	Error       string           `json:"error,omitempty"`
	Address     nominatimAddress `json:"address"`
}

type nominatimAddress struct {
	City    string `json:"city"`
	Town    string `json:"town"`
	Village string `json:"village"`
	State   string `json:"state"`
	Country string `json:"country"`
}
