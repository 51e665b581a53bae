package position

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/zatekoja/symptomchecker/backend/internal/domain/providers"
)

const (
	defaultIPLookupURL = "http://ip-api.com/json"

	// ipAccuracyMeters is a typical city-level error for IP geolocation
	ipAccuracyMeters = 5000
)

// IPSource estimates the host's position from its public IP address. The
// last fix is reused while it is younger than the requested MaximumAge.
type IPSource struct {
	lookupURL  string
	httpClient *http.Client
	now        func() time.Time

	mu   sync.Mutex
	last *providers.Position
}

// NewIPSource creates a source querying lookupURL, an ip-api compatible
// endpoint. httpClient may be nil.
func NewIPSource(lookupURL string, httpClient *http.Client) *IPSource {
	if strings.TrimSpace(lookupURL) == "" {
		lookupURL = defaultIPLookupURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &IPSource{
		lookupURL:  lookupURL,
		httpClient: httpClient,
		now:        time.Now,
	}
}

// CurrentPosition implements providers.PositionSource
func (s *IPSource) CurrentPosition(ctx context.Context, opts providers.PositionOptions) (*providers.Position, error) {
	if cached := s.cachedFix(opts.MaximumAge); cached != nil {
		return cached, nil
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.lookupURL, nil)
	if err != nil {
		return nil, &providers.PositionError{Code: providers.PositionErrorUnavailable, Message: err.Error()}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, &providers.PositionError{Code: providers.PositionErrorTimeout, Message: "ip lookup timed out"}
		}
		return nil, &providers.PositionError{Code: providers.PositionErrorUnavailable, Message: fmt.Sprintf("ip lookup failed: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &providers.PositionError{
			Code:    providers.PositionErrorUnavailable,
			Message: fmt.Sprintf("ip lookup returned status %d", resp.StatusCode),
		}
	}

	var payload ipLookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.PositionError{Code: providers.PositionErrorUnavailable, Message: "failed to decode ip lookup response"}
	}
	if payload.Status != "" && payload.Status != "success" {
		msg := payload.Message
		if msg == "" {
			msg = payload.Status
		}
		return nil, &providers.PositionError{Code: providers.PositionErrorUnavailable, Message: msg}
	}

	fix := &providers.Position{
		Latitude:       payload.Lat,
		Longitude:      payload.Lon,
		AccuracyMeters: ipAccuracyMeters,
		Timestamp:      s.now().UTC(),
	}

	s.mu.Lock()
	s.last = fix
	s.mu.Unlock()

	out := *fix
	return &out, nil
}

func (s *IPSource) cachedFix(maxAge time.Duration) *providers.Position {
	if maxAge <= 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.last == nil || s.now().Sub(s.last.Timestamp) > maxAge {
		return nil
	}
	out := *s.last
	return &out
}

type ipLookupResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message,omitempty"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}
