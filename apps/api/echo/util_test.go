package echoapi_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	echoapi "github.com/trezcool/masomo-calendar/apps/api/echo"
	"github.com/trezcool/masomo-calendar/core"
	"github.com/trezcool/masomo-calendar/core/calendar"
	"github.com/trezcool/masomo-calendar/tests"
)

var errMissingToken = httpErr{Message: "missing or malformed jwt"}

type httpErr struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

type httpData struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	token    string
	wantCode int
	wantData []byte
}

// spyLogger records what would be reported as system faults.
type spyLogger struct {
	mu     sync.Mutex
	errors []logEntry
}

type logEntry struct {
	msg  string
	args []interface{}
}

var _ core.Logger = (*spyLogger)(nil)

func (l *spyLogger) Debug(string, ...interface{}) {}
func (l *spyLogger) Info(string, ...interface{})  {}
func (l *spyLogger) Warn(string, ...interface{})  {}
func (l *spyLogger) Fatal(string, ...interface{}) {}

func (l *spyLogger) Error(msg string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, logEntry{msg: msg, args: args})
}

func (l *spyLogger) reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = nil
}

func newConfig() *core.Config {
	conf := testutil.NewConfig()
	conf.Server.DisableReqLogs = true
	conf.Server.JWTExpirationDelta = time.Hour
	return conf
}

func newServer(conf *core.Config, logger core.Logger, repo calendar.Repository) *echoapi.Server {
	return echoapi.NewServer(echoapi.ServerDeps{
		Conf:        conf,
		Logger:      logger,
		CalendarSvc: testutil.NewService(conf, repo, nil),
	})
}

func newAuthRequest(method, path, token string) (*http.Request, *httptest.ResponseRecorder) {
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, path, &bytes.Buffer{})
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func getToken(t *testing.T, conf *core.Config, subject string, roles ...string) string {
	token, err := echoapi.GenerateToken(conf, echoapi.NewClaims(conf, subject, roles))
	if err != nil {
		t.Fatalf("getToken() failed: %v", err)
	}
	return token
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	assert.JSONEq(t, string(tt.wantData), rec.Body.String())
}
