// Package musixmatch is a typed client for the Musixmatch REST API.
//
// Every endpoint method builds a parameter set, issues one authenticated GET and unwraps the
// response envelope:
//
//	client, err := musixmatch.New(musixmatch.Config{
//	    APIKey:  os.Getenv("MUSIXMATCH_API_KEY"),
//	    OnError: func(e *musixmatch.APIError) { log.Printf("musixmatch: %v", e) },
//	})
//
//	tracks, err := client.SearchTracks(ctx, musixmatch.NewTrackSearchQuery().
//	    SongArtist(musixmatch.Ptr("Queen")).
//	    PageSize(musixmatch.Ptr[uint](10)))
//
// A status code reported inside the envelope goes to Config.OnError and the method returns a nil
// result with a nil error. Transport failures wrap ErrTransport and malformed success payloads wrap
// ErrSchema; neither reaches OnError.
package musixmatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public Musixmatch REST root.
const DefaultBaseURL = "https://api.musixmatch.com/ws/1.1"

const apiKeyParam = "apikey"

var (
	// ErrMissingAPIKey is returned by New when Config.APIKey is blank.
	ErrMissingAPIKey = errors.New("musixmatch: API key is required")
	// ErrTransport marks failures to obtain or parse a response.
	ErrTransport = errors.New("musixmatch: transport failure")
	// ErrSchema marks a success envelope whose payload does not have the expected shape.
	ErrSchema = errors.New("musixmatch: unexpected response schema")
)

// ErrorHandler receives the application errors reported by the response envelope.
// It is called synchronously, once per failed call, before the method returns.
type ErrorHandler func(*APIError)

// Config is read once by New.
type Config struct {
	APIKey     string       // Required.
	BaseURL    string       // Optional: defaults to DefaultBaseURL.
	HTTPClient *http.Client // Optional: defaults to http.DefaultClient.
	OnError    ErrorHandler // Optional: defaults to a warning on Logger.
	Logger     *slog.Logger // Optional: defaults to discarding.
}

// Client wraps calls to the Musixmatch API. It is immutable and safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	onError    ErrorHandler
	logger     *slog.Logger
}

// New creates an API client.
func New(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("musixmatch: parse base URL: %w", err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	onError := cfg.OnError
	if onError == nil {
		onError = func(e *APIError) {
			logger.Warn("musixmatch request failed", "endpoint", e.Endpoint, "status", e.StatusCode, "reason", StatusText(e.StatusCode))
		}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		onError:    onError,
		logger:     logger,
	}, nil
}

// Header is the envelope header present on every response.
type Header struct {
	StatusCode  int     `json:"status_code"`
	ExecuteTime float64 `json:"execute_time"`
	Available   int     `json:"available"`
	Hint        string  `json:"hint"`
}

type envelope struct {
	Message struct {
		Header *Header         `json:"header"`
		Body   json.RawMessage `json:"body"`
	} `json:"message"`
}

// Fetch calls endpoint with params and decodes body[field] into T, or the whole body when
// field is empty.
//
// It returns (nil, nil) after handing an *APIError to the client's ErrorHandler when the envelope
// reports a non-200 status. Endpoint methods are thin wrappers around it; it is exported for
// endpoints this package does not wrap.
func Fetch[T any](ctx context.Context, c *Client, endpoint string, params Params, field string) (*T, error) {
	reqURL := c.endpointURL(endpoint, params)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w: %w", endpoint, ErrTransport, c.redact(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w: %w", endpoint, ErrTransport, err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Message.Header == nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("request %s: %w: unexpected status %d", endpoint, ErrTransport, resp.StatusCode)
		}
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w: %w", endpoint, ErrTransport, err)
		}
		return nil, fmt.Errorf("decode %s: %w: envelope has no message header", endpoint, ErrSchema)
	}

	header := env.Message.Header
	c.logger.Debug("musixmatch request",
		"endpoint", endpoint,
		"http_status", resp.StatusCode,
		"status", header.StatusCode,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)

	if header.StatusCode != http.StatusOK {
		c.onError(&APIError{
			Endpoint:   endpoint,
			StatusCode: header.StatusCode,
			Header:     *header,
			Body:       env.Message.Body,
		})
		return nil, nil
	}

	out, err := extract[T](env.Message.Body, field)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w: %w", endpoint, ErrSchema, err)
	}
	return out, nil
}

func (c *Client) endpointURL(endpoint string, params Params) string {
	var q Params
	q.Merge(params)
	q.Set(apiKeyParam, c.apiKey)
	return c.baseURL + "/" + strings.TrimLeft(endpoint, "/") + "?" + q.Encode()
}

// redact hides the API key that *url.Error carries in its URL.
func (c *Client) redact(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}
	cp := *ue
	cp.URL = strings.ReplaceAll(cp.URL, url.QueryEscape(c.apiKey), "REDACTED")
	return &cp
}

func extract[T any](body json.RawMessage, field string) (*T, error) {
	if field == "" {
		if len(body) == 0 || string(body) == "null" {
			return nil, errors.New("body is empty")
		}
		var out T
		if err := json.Unmarshal(body, &out); err != nil {
			return nil, fmt.Errorf("body: %w", err)
		}
		return &out, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, fmt.Errorf("body: %w", err)
	}
	raw, ok := fields[field]
	if !ok {
		return nil, fmt.Errorf("body has no %q field", field)
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("body field %q is null", field)
	}
	var out T
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("field %q: %w", field, err)
	}
	return &out, nil
}
