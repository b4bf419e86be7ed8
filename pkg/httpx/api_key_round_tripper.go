package httpx

import (
	"fmt"
	"net/http"
)

// APIKeyRoundTripper adds a static API key to the query string of every
// outgoing request.
type APIKeyRoundTripper struct {
	next      http.RoundTripper
	paramName string
	apiKey    string
}

func NewAPIKeyRoundTripper(
	next http.RoundTripper,
	paramName string,
	apiKey string,
) APIKeyRoundTripper {
	return APIKeyRoundTripper{
		next:      next,
		paramName: paramName,
		apiKey:    apiKey,
	}
}

func (rt APIKeyRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	// RoundTripper must not modify the caller's request.
	req = req.Clone(req.Context())

	query := req.URL.Query()
	query.Set(rt.paramName, rt.apiKey)
	req.URL.RawQuery = query.Encode()

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	return resp, nil
}
