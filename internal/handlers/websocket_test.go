package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"aqualog/internal/service"
	"aqualog/internal/waterquality"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// --- parseInterval unit tests ---

func TestParseInterval(t *testing.T) {
	h := NewHandler(&service.Service{}, nil)

	cases := []struct {
		name string
		u    string
		want time.Duration
	}{
		{"default_when_missing", "/ws", 5 * time.Second},
		{"interval_string_valid", "/ws?interval=200ms", 200 * time.Millisecond},
		{"interval_ms_valid", "/ws?interval_ms=150", 150 * time.Millisecond},
		{"interval_too_large", "/ws?interval=90s", 5 * time.Second},
		{"interval_ms_too_large", "/ws?interval_ms=90000", 5 * time.Second},
		{"interval_invalid_string", "/ws?interval=bogus", 5 * time.Second},
		{"both_present_interval_wins", "/ws?interval=2s&interval_ms=150", 2 * time.Second},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.u, nil)
			c, _ := gin.CreateTestContext(w)
			c.Request = req
			got := h.parseInterval(c)
			if got != tc.want {
				t.Fatalf("got %v, want %v for %s", got, tc.want, tc.u)
			}
		})
	}
}

// --- websocket integration tests ---

func newWsServer(t *testing.T, s *service.Service) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(s, nil)
	r.GET("/ws", h.wsConnect)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server, rawQuery string) string {
	u, _ := url.Parse(srv.URL)
	u.Scheme = "ws"
	u.Path = "/ws"
	u.RawQuery = rawQuery
	return u.String()
}

func TestWebSocket_EvaluationStream_InitialAndPeriodic(t *testing.T) {
	nitrate := 60.0
	eval := &mockEvaluation{latestResp: service.EvaluationReport{
		TankID: 1,
		TestID: "abc",
		Verdicts: []waterquality.Verdict{
			{Parameter: waterquality.Nitrate, Status: waterquality.StatusTooHigh, MeasuredValue: &nitrate},
		},
	}}
	s := &service.Service{Evaluation: eval}
	srv := newWsServer(t, s)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "tank_id=1&interval_ms=20"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// Read initial report
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "evaluation" || len(env.Data) == 0 {
		t.Fatalf("bad envelope: %+v", env)
	}
	var report service.EvaluationReport
	if err := json.Unmarshal(env.Data, &report); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if report.TestID != "abc" || len(report.Verdicts) != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	// Read a subsequent tick
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	env = envelope{}
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read second: %v", err)
	}
	if env.Type != "evaluation" {
		t.Fatalf("expected type=evaluation, got %+v", env)
	}
	if eval.latestCalls < 2 {
		t.Fatalf("expected at least 2 evaluations, got %d", eval.latestCalls)
	}
}

func TestWebSocket_MissingTankID_Rejected(t *testing.T) {
	s := &service.Service{Evaluation: &mockEvaluation{}}
	srv := newWsServer(t, s)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	_, resp, err := dialer.Dial(wsURL(srv, ""), nil)
	if err == nil {
		t.Fatal("expected handshake failure without tank_id")
	}
	if resp == nil || resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 response, got %+v", resp)
	}
}

func TestWebSocket_NoReadings_SendsErrorEnvelope(t *testing.T) {
	eval := &mockEvaluation{latestErr: service.ErrNoReadings}
	s := &service.Service{Evaluation: eval}
	srv := newWsServer(t, s)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "tank_id=1"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	type envelope struct {
		Type  string          `json:"type"`
		Data  json.RawMessage `json:"data"`
		Error string          `json:"error"`
	}

	// A tank without history keeps the stream open and reports the condition.
	_ = conn.SetReadDeadline(time.Now().Add(1 * time.Second))
	var env envelope
	if err := conn.ReadJSON(&env); err != nil {
		t.Fatalf("read initial: %v", err)
	}
	if env.Type != "evaluation" || env.Error == "" {
		t.Fatalf("expected error envelope, got %+v", env)
	}
}

func TestWebSocket_StoreError_Closes(t *testing.T) {
	eval := &mockEvaluation{latestErr: errors.New("boom")}
	s := &service.Service{Evaluation: eval}
	srv := newWsServer(t, s)

	dialer := websocket.Dialer{HandshakeTimeout: 2 * time.Second}
	conn, _, err := dialer.Dial(wsURL(srv, "tank_id=1"), nil)
	if err != nil {
		t.Fatalf("dial error: %v", err)
	}
	defer conn.Close()

	// The server should close immediately after the initial evaluation fails hard.
	_ = conn.SetReadDeadline(time.Now().Add(500 * time.Millisecond))
	var raw json.RawMessage
	if err := conn.ReadJSON(&raw); err == nil {
		t.Fatalf("expected read error (closed), got message: %s", string(raw))
	}
}
