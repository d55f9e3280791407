package qonqr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultBaseURL is the public zones API root
const DefaultBaseURL = "https://api.qonqr.com/pub/zones/"

// APISecretLength is the required length of an application secret
const APISecretLength = 32

// Client represents a Qonqr zones API client
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	httpClient *http.Client
	logger     zerolog.Logger
	closed     atomic.Bool
}

// NewClient creates a new zones API client. The key and secret are issued
// per application and sent as headers on every request. Credentials are
// checked before any transport is constructed; no network I/O happens here.
func NewClient(apiKey, apiSecret string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if len(apiSecret) != APISecretLength {
		return nil, ErrInvalidAPISecret
	}

	options := clientOptions{
		baseURL: DefaultBaseURL,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&options)
	}

	// Ensure baseURL ends with a slash so paths append cleanly
	if options.baseURL[len(options.baseURL)-1] != '/' {
		options.baseURL += "/"
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    options.baseURL,
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Close releases the client's transport. It is safe to call more than once;
// operations invoked after Close return ErrClientClosed.
func (c *Client) Close() error {
	if c.closed.CompareAndSwap(false, true) {
		c.httpClient.CloseIdleConnections()
	}
	return nil
}

// doRequest performs an authenticated GET and returns the raw body
func (c *Client) doRequest(ctx context.Context, path string) ([]byte, error) {
	url := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("ApiKey", c.apiKey)
	req.Header.Set("ApiSecret", c.apiSecret)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", url).Msg("Making zones API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return body, nil
}

// get runs the shared pipeline: request, then decode into out. Failures are
// returned raw; callers wrap them with operation context.
func (c *Client) get(ctx context.Context, path string, out any) error {
	body, err := c.doRequest(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// ZoneStatus retrieves the current status of a single zone
func (c *Client) ZoneStatus(ctx context.Context, zoneID uint32) (*Zone, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	var zone Zone
	if err := c.get(ctx, statusPath(zoneID), &zone); err != nil {
		return nil, &RequestError{
			Op:      "zone status",
			Context: fmt.Sprintf("zone id %d", zoneID),
			Err:     err,
		}
	}

	return &zone, nil
}

// ZonesByBoundingBox retrieves up to MaxZonesPerResponse zones inside the
// given bounding box, most recently updated first. Coordinates go into the
// request path unrounded; only the error context rounds them.
func (c *Client) ZonesByBoundingBox(ctx context.Context, topLat, leftLon, bottomLat, rightLon float64) (*ZoneList, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	var list ZoneList
	if err := c.get(ctx, boundingBoxStatusPath(topLat, leftLon, bottomLat, rightLon), &list); err != nil {
		return nil, &RequestError{
			Op:      "bounding box status",
			Context: fmt.Sprintf("box %.3f,%.3f to %.3f,%.3f", topLat, leftLon, bottomLat, rightLon),
			Err:     err,
		}
	}

	c.logger.Debug().Int("count", list.Len()).Msg("Retrieved zones by bounding box")

	return &list, nil
}

// ZonesByGridReference retrieves zones inside a grid cell that changed
// since the given instant. The since value is rendered in UTC.
func (c *Client) ZonesByGridReference(ctx context.Context, gridRef string, since time.Time) (*ZoneList, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	var list ZoneList
	if err := c.get(ctx, gridReferenceStatusPath(gridRef, since), &list); err != nil {
		return nil, &RequestError{
			Op:      "grid reference status",
			Context: fmt.Sprintf("grid %s since %s", gridRef, since.UTC().Format(time.RFC3339)),
			Err:     err,
		}
	}

	c.logger.Debug().
		Str("grid", gridRef).
		Int("count", list.Len()).
		Msg("Retrieved zones by grid reference")

	return &list, nil
}

// LocateGridReference resolves a coordinate to its grid reference
func (c *Client) LocateGridReference(ctx context.Context, lat, lon float64) (*GridLocation, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	var loc GridLocation
	if err := c.get(ctx, gridReferencePath(lat, lon), &loc); err != nil {
		return nil, &RequestError{
			Op:      "grid reference lookup",
			Context: fmt.Sprintf("coordinate %.3f,%.3f", lat, lon),
			Err:     err,
		}
	}

	return &loc, nil
}

// GridBreakdown lists the sub-quadrants of a top-level grid cell. The input
// must be a bare top-level reference such as "16S"; anything else fails with
// ErrInvalidGridReference before any network call. A breakdown the service
// reports as empty or omits entirely yields an empty, non-nil slice.
func (c *Client) GridBreakdown(ctx context.Context, topLevel string) ([]GridArea, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}
	if !ValidTopLevelGrid(topLevel) {
		return nil, ErrInvalidGridReference
	}

	var resp GridBreakdownResponse
	if err := c.get(ctx, gridBreakdownPath(topLevel), &resp); err != nil {
		return nil, &RequestError{
			Op:      "grid breakdown",
			Context: fmt.Sprintf("grid %s", topLevel),
			Err:     err,
		}
	}

	if resp.GridDetails == nil {
		return []GridArea{}, nil
	}
	return resp.GridDetails, nil
}
