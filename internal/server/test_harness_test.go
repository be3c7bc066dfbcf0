package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"moodsync/apps/backend/internal/companion"
	"moodsync/apps/backend/internal/config"
	"moodsync/apps/backend/internal/logger"
	"moodsync/apps/backend/internal/users"
)

var errBackendDown = errors.New("backend unavailable")

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestConfig() config.Config {
	return config.Config{
		AppEnv:           "test",
		AppName:          "moodsync-api-test",
		AppVersion:       "2.0",
		AppPort:          "0",
		CORSAllowOrigins: []string{"http://localhost:3000"},
		GeminiAPIKey:     "test-key",
		GeminiModel:      "gemini-2.0-flash",
		AIProvider:       config.ProviderGemini,
		AITimeoutSeconds: 5,
	}
}

// stubGenerator returns a fixed reply or error and counts calls.
type stubGenerator struct {
	reply   string
	err     error
	calls   int
	prompts []string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.calls++
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

type pinnedRandom int

func (p pinnedRandom) Intn(n int) int { return int(p) % n }

type testApp struct {
	router    *gin.Engine
	generator *stubGenerator
	directory *users.Directory
}

func newTestApp(t *testing.T, cfg config.Config, gen *stubGenerator) testApp {
	t.Helper()
	if gen == nil {
		gen = &stubGenerator{reply: "hello"}
	}
	gateway := companion.NewGateway(gen, pinnedRandom(0), logger.NewNop(), 0)
	directory := users.NewDirectory(users.NewMemoryStore())
	app := New(cfg, logger.NewNop(), gateway, directory)
	return testApp{router: app.Router(), generator: gen, directory: directory}
}

func performRequest(
	t *testing.T,
	router http.Handler,
	method, targetPath string,
	body any,
	headers map[string]string,
) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch v := body.(type) {
	case nil:
	case string:
		payload = []byte(v)
	default:
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err, "marshal request body")
	}

	req := httptest.NewRequest(method, targetPath, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeJSONMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload), "body=%s", rec.Body.String())
	return payload
}

func responseMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	message, _ := decodeJSONMap(t, rec)["message"].(string)
	return message
}
