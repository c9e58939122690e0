package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sourceplane/wheelmatrix/internal/model"
)

const (
	// DefaultEndpoint is the public package index JSON API
	DefaultEndpoint = "https://pypi.org/pypi"

	sdistPackageType = "sdist"
)

// ResolutionError reports a package/version that could not be resolved to a
// source distribution via the package index
type ResolutionError struct {
	Package  string
	Selector string
	Reason   string
	Err      error
}

func (e *ResolutionError) Error() string {
	msg := fmt.Sprintf("failed to resolve %s %s: %s", e.Package, e.Selector, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolved is the outcome of a version lookup: the canonical version string
// reported by the index and the source-archive download URL
type Resolved struct {
	Version  string
	SdistURL string
}

// releaseDoc is the subset of the index JSON response this tool consumes
type releaseDoc struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
	URLs []releaseFile `json:"urls"`
}

type releaseFile struct {
	PackageType string `json:"packagetype"`
	URL         string `json:"url"`
}

// Client talks to a package index JSON API
type Client struct {
	endpoint   *url.URL
	httpClient *http.Client

	// resolutions memoizes lookups for one matrix-build pass, keyed by
	// name@selector, so each requested version hits the index once no
	// matter how many platform/python combinations reference it
	resolutions map[string]Resolved
}

// NewClient creates a package index client for the given endpoint
func NewClient(endpoint string) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse index endpoint: %w", err)
	}
	return &Client{
		endpoint:    u,
		httpClient:  http.DefaultClient,
		resolutions: make(map[string]Resolved),
	}, nil
}

// Resolve looks up a package version in the index. The selector is an exact
// version string or model.VersionSelectorLatest. The returned version is the
// canonical form reported by the index, which may differ from the selector.
func (c *Client) Resolve(ctx context.Context, name, selector string) (Resolved, error) {
	cacheKey := name + "@" + selector
	if resolved, ok := c.resolutions[cacheKey]; ok {
		return resolved, nil
	}

	requestURL := c.endpoint.JoinPath(name, "json")
	if selector != model.VersionSelectorLatest {
		requestURL = c.endpoint.JoinPath(name, selector, "json")
	}

	doc, err := c.fetchRelease(ctx, requestURL.String(), name, selector)
	if err != nil {
		return Resolved{}, err
	}

	resolved := Resolved{Version: doc.Info.Version}
	for _, file := range doc.URLs {
		if file.PackageType == sdistPackageType {
			resolved.SdistURL = file.URL
			break
		}
	}
	if resolved.SdistURL == "" {
		// A wheel URL is not a substitute: the build job needs sources
		return Resolved{}, &ResolutionError{Package: name, Selector: selector, Reason: "release has no sdist"}
	}

	c.resolutions[cacheKey] = resolved
	return resolved, nil
}

func (c *Client) fetchRelease(ctx context.Context, requestURL, name, selector string) (*releaseDoc, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &ResolutionError{Package: name, Selector: selector, Reason: "building index request", Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ResolutionError{Package: name, Selector: selector, Reason: "index request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, &ResolutionError{Package: name, Selector: selector, Reason: "not found in index"}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ResolutionError{Package: name, Selector: selector, Reason: fmt.Sprintf("index returned status %d", resp.StatusCode)}
	}

	var doc releaseDoc
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, &ResolutionError{Package: name, Selector: selector, Reason: "decoding index response", Err: err}
	}
	return &doc, nil
}
