package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"

	"github.com/goal-tracker/backend/internal/integration/adapters"
	"github.com/goal-tracker/backend/test/integration/mock"
)

func theAPIServerIsRunning(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func authenticationIsEnabled(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.cfg.Auth.Enabled = true
	tc.start()
	return nil
}

func iAmAuthenticated(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	token, _, err := tc.tokens.GenerateToken(ctx, "owner")
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}
	tc.accessToken = token
	return nil
}

func iAmAuthenticatedWithAnExpiredToken(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	issued := time.Now().Add(-2 * time.Hour)
	claims := adapters.CustomClaims{
		TokenType: "owner",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
			Issuer:    "goal-tracker",
			Subject:   "owner",
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to sign expired token: %w", err)
	}
	tc.accessToken = token
	return nil
}

func iSetHeaderTo(ctx context.Context, header, value string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	tc.requestHeaders[header] = value
	return nil
}

func theProgressCacheIsFlushed(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	mock.ClearRedis(tc.redis)
	return nil
}

// expand replaces {name} placeholders with values saved earlier in the scenario.
func (tc *TestContext) expand(s string) string {
	for name, value := range tc.saved {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func (tc *TestContext) send(method, endpoint string, body io.Reader) error {
	req, err := http.NewRequest(method, tc.server.URL+tc.expand(endpoint), body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return tc.send(method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	return tc.send(method, endpoint, bytes.NewBufferString(tc.expand(body.Content)))
}

// field resolves a dotted path such as "confident.0.goal_id" in the response.
func (tc *TestContext) field(path string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, part := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[part]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, tc.responseBody)
			}
			current = value
		case []any:
			i, err := strconv.Atoi(part)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'. Body: %s", part, path, tc.responseBody)
			}
			current = node[i]
		default:
			return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, tc.responseBody)
		}
	}
	return current, nil
}

func iSaveTheResponseFieldAs(ctx context.Context, path, name string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.field(path)
	if err != nil {
		return err
	}
	tc.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if !strings.Contains(string(tc.responseBody), tc.expand(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, path, expected string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.field(path)
	if err != nil {
		return err
	}
	expected = tc.expand(expected)
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", path, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, path string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	_, err = tc.field(path)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, path string, count int) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	value, err := tc.field(path)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok && value != nil {
		return fmt.Errorf("field '%s' is not a list", path)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", path, count, len(items))
	}
	return nil
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, count int, table string) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	n, err := tc.db.Count(table)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if int(n) != count {
		return fmt.Errorf("expected %d objects in %s, got %d", count, table, n)
	}
	return nil
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, count int, table string, values *godog.Table) error {
	tc, err := testContext(ctx)
	if err != nil {
		return err
	}
	if len(values.Rows) < 2 {
		return fmt.Errorf("values table needs a header row and a value row")
	}

	where := make(map[string]any)
	header := values.Rows[0].Cells
	for i, cell := range values.Rows[1].Cells {
		where[header[i].Value] = tc.expand(cell.Value)
	}

	n, err := tc.db.CountWhere(table, where)
	if err != nil {
		return fmt.Errorf("failed to count %s: %w", table, err)
	}
	if int(n) != count {
		return fmt.Errorf("expected %d objects in %s matching %v, got %d", count, table, where, n)
	}
	return nil
}
