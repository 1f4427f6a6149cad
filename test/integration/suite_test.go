//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/cucumber/godog"
)

const requestTimeout = 10 * time.Second

// scenario is the per-scenario state shared by the step definitions.
type scenario struct {
	baseURL string
	client  *http.Client

	status int
	header http.Header
	body   []byte
}

func (s *scenario) reset() {
	s.status = 0
	s.header = nil
	s.body = nil
}

func initializeScenario(baseURL string) func(*godog.ScenarioContext) {
	return func(ctx *godog.ScenarioContext) {
		s := &scenario{baseURL: baseURL, client: &http.Client{Timeout: requestTimeout}}

		ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
			s.reset()
			return ctx, nil
		})

		ctx.Step(`^the service is running$`, s.serviceIsRunning)
		ctx.Step(`^I request GET "([^"]*)"$`, func(path string) error {
			return s.send(http.MethodGet, path, "")
		})
		ctx.Step(`^I POST "([^"]*)" with body:$`, func(path string, doc *godog.DocString) error {
			return s.send(http.MethodPost, path, doc.Content)
		})
		ctx.Step(`^the response status should be (\d+)$`, s.statusIs)
		ctx.Step(`^the response should contain "([^"]*)"$`, s.bodyContains)
		ctx.Step(`^the response header "([^"]*)" should not be empty$`, s.headerPresent)
		ctx.Step(`^the JSON field "([^"]*)" should be "([^"]*)"$`, s.fieldIs)
		ctx.Step(`^the JSON field "([^"]*)" should be null$`, s.fieldIsNull)
		ctx.Step(`^the response should have (\d+) quiz items$`, s.quizItems)
	}
}

func (s *scenario) serviceIsRunning() error {
	if err := s.send(http.MethodGet, "/-/live", ""); err != nil {
		return fmt.Errorf("service at %s is not reachable: %w", s.baseURL, err)
	}

	if s.status != http.StatusOK {
		return fmt.Errorf("liveness probe returned %d", s.status)
	}

	s.reset()

	return nil
}

func (s *scenario) send(method, path, payload string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	var body io.Reader
	if payload != "" {
		body = strings.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s: %w", method, path, err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	s.status, s.header = resp.StatusCode, resp.Header

	if s.body, err = io.ReadAll(resp.Body); err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	return nil
}

func (s *scenario) statusIs(want int) error {
	if s.status != want {
		return fmt.Errorf("expected status %d, got %d\nbody: %s", want, s.status, s.body)
	}

	return nil
}

func (s *scenario) bodyContains(text string) error {
	if !strings.Contains(string(s.body), text) {
		return fmt.Errorf("body does not contain %q\nbody: %s", text, s.body)
	}

	return nil
}

func (s *scenario) headerPresent(name string) error {
	if s.header.Get(name) == "" {
		return fmt.Errorf("response header %q is empty", name)
	}

	return nil
}

var errFieldMissing = errors.New("field missing")

// lookup resolves a dotted path such as "error.code" in the JSON body.
func (s *scenario) lookup(path string) (any, error) {
	var v any
	if err := json.Unmarshal(s.body, &v); err != nil {
		return nil, fmt.Errorf("body is not JSON: %w", err)
	}

	for _, key := range strings.Split(path, ".") {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, errFieldMissing)
		}

		if v, ok = obj[key]; !ok {
			return nil, fmt.Errorf("%s: %w\nbody: %s", path, errFieldMissing, s.body)
		}
	}

	return v, nil
}

func (s *scenario) fieldIs(path, want string) error {
	v, err := s.lookup(path)
	if err != nil {
		return err
	}

	if got := fmt.Sprint(v); got != want {
		return fmt.Errorf("field %q: expected %q, got %q", path, want, got)
	}

	return nil
}

func (s *scenario) fieldIsNull(path string) error {
	v, err := s.lookup(path)
	if err != nil {
		return err
	}

	if v != nil {
		return fmt.Errorf("field %q: expected null, got %v", path, v)
	}

	return nil
}

func (s *scenario) quizItems(want int) error {
	var resp struct {
		Items []json.RawMessage `json:"items"`
	}

	if err := json.Unmarshal(s.body, &resp); err != nil {
		return fmt.Errorf("decoding quiz response: %w", err)
	}

	if len(resp.Items) != want {
		return fmt.Errorf("expected %d quiz items, got %d", want, len(resp.Items))
	}

	return nil
}

// TestFeatures runs the godog suite against BASE_URL when set, otherwise
// against an in-process server.
func TestFeatures(t *testing.T) {
	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		handler, _ := newService(t, loadConfig(t))
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)

		baseURL = srv.URL
	}

	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario(baseURL),
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			TestingT: t,
			Tags:     os.Getenv("GODOG_TAGS"),
		},
	}

	if suite.Run() != 0 {
		t.Fatal("feature suite failed")
	}
}
