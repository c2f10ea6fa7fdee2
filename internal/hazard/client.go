package hazard

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"time"
)

const httpTimeout = 15 * time.Second

// newHTTPClient returns an http.Client with the shared provider timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doGetJSON performs a GET request and decodes the JSON response into dst.
// Every failure mode wraps ErrUnavailable.
func doGetJSON(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	resp, err := doGet(ctx, client, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %v", ErrUnavailable, rawURL, err)
	}
	return nil
}

// doGetXML performs a GET request and decodes the XML response into dst.
func doGetXML(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	resp, err := doGet(ctx, client, rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := xml.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: decoding response from %s: %v", ErrUnavailable, rawURL, err)
	}
	return nil
}

func doGet(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrUnavailable, rawURL, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: GET %s returned status %d", ErrUnavailable, rawURL, resp.StatusCode)
	}
	return resp, nil
}
