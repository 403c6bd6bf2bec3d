//go:build staging

package staging

import (
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

const defaultBaseURL = "http://localhost:8080"

// site talks to one deployment. Redirects are returned to the test rather
// than followed, since the Alexa flow is asserted on its Location headers.
type site struct {
	baseURL string
	http    *http.Client
}

var deployment site

func TestMain(m *testing.M) {
	base := os.Getenv("STAGING_URL")
	if base == "" {
		base = os.Getenv("API_URL")
	}
	if base == "" {
		base = defaultBaseURL
	}

	deployment = site{
		baseURL: strings.TrimRight(base, "/"),
		http: &http.Client{
			Timeout: 10 * time.Second,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}

	os.Exit(m.Run())
}

// makeRequest returns the response with its body already drained
func makeRequest(t *testing.T, method, path string, headers map[string]string) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, deployment.baseURL+path, nil)
	if err != nil {
		t.Fatalf("building %s %s: %v", method, path, err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := deployment.http.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading %s body: %v", path, err)
	}
	return resp, body
}
