package httpserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/internal/core/service"
	"github.com/yndnr/mergington-go/internal/server/httpserver/handler"
	"github.com/yndnr/mergington-go/internal/storage/credential"
	"github.com/yndnr/mergington-go/internal/storage/memory"
	"github.com/yndnr/mergington-go/internal/telemetry/metric"
)

type testEnv struct {
	server     *httptest.Server
	activities *memory.ActivityStore
	metrics    *metric.Registry
}

func newTestEnv(t *testing.T, scope service.LogoutScope) *testEnv {
	t.Helper()
	creds := credential.NewStaticStore(
		domain.Teacher{Username: "mrodriguez", Password: "art123", Name: "Ms. Rodriguez"},
		domain.Teacher{Username: "mchen", Password: "chess456", Name: "Mr. Chen"},
	)
	activities := memory.NewSeededActivityStore()
	reg := metric.NewRegistry()

	auth := service.NewAuthService(creds, memory.NewSessionStore(), &service.AuthServiceConfig{
		LogoutScope: scope,
		Recorder:    reg,
	})
	enroll := service.NewEnrollmentService(activities, &service.EnrollmentServiceConfig{Recorder: reg})

	router := NewRouter(&RouterConfig{
		AuthService:        auth,
		EnrollmentService:  enroll,
		Metrics:            reg,
		Logger:             slog.New(slog.NewTextHandler(io.Discard, nil)),
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		EnableAudit:        true,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return &testEnv{server: srv, activities: activities, metrics: reg}
}

func (e *testEnv) call(t *testing.T, method, path, token string) (*http.Response, []byte) {
	t.Helper()
	req, err := http.NewRequest(method, e.server.URL+path, nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.server.Client().Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

func (e *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()
	q := url.Values{"username": {username}, "password": {password}}
	resp, body := e.call(t, http.MethodPost, "/auth/login?"+q.Encode(), "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login status = %d, body = %s", resp.StatusCode, body)
	}
	var lr handler.LoginResponse
	if err := json.Unmarshal(body, &lr); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	return lr.Token
}

func (e *testEnv) participants(t *testing.T, name string) []string {
	t.Helper()
	_, body := e.call(t, http.MethodGet, "/activities", "")
	var list map[string]handler.ActivityResponse
	if err := json.Unmarshal(body, &list); err != nil {
		t.Fatalf("decode activities: %v", err)
	}
	return list[name].Participants
}

func TestRouter_ChessClubScenario(t *testing.T) {
	env := newTestEnv(t, service.LogoutScopeSession)
	const email = "new@mergington.edu"
	signup := "/activities/Chess%20Club/signup?email=" + url.QueryEscape(email)
	unregister := "/activities/Chess%20Club/unregister?email=" + url.QueryEscape(email)

	if resp, body := env.call(t, http.MethodPost, signup, ""); resp.StatusCode != http.StatusOK {
		t.Fatalf("signup status = %d, body = %s", resp.StatusCode, body)
	}
	if got := env.participants(t, "Chess Club"); len(got) != 3 || got[2] != email {
		t.Fatalf("participants = %v", got)
	}

	if resp, _ := env.call(t, http.MethodPost, signup, ""); resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate signup status = %d, want 400", resp.StatusCode)
	}

	if resp, _ := env.call(t, http.MethodDelete, unregister, ""); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("anonymous unregister status = %d, want 401", resp.StatusCode)
	}

	token := env.login(t, "mchen", "chess456")
	resp, body := env.call(t, http.MethodDelete, unregister, token)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unregister status = %d, body = %s", resp.StatusCode, body)
	}
	if !strings.Contains(string(body), "Teacher Mr. Chen unregistered new@mergington.edu from Chess Club") {
		t.Errorf("body = %s", body)
	}
	if got := env.participants(t, "Chess Club"); slices.Contains(got, email) || len(got) != 2 {
		t.Fatalf("participants after unregister = %v", got)
	}

	if resp, _ := env.call(t, http.MethodPost, "/auth/logout", token); resp.StatusCode != http.StatusOK {
		t.Fatalf("logout status = %d", resp.StatusCode)
	}
	if resp, _ := env.call(t, http.MethodDelete, unregister, token); resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("unregister after logout status = %d, want 401", resp.StatusCode)
	}
}

func TestRouter_LogoutScope(t *testing.T) {
	tests := []struct {
		scope        service.LogoutScope
		otherSurvive bool
	}{
		{service.LogoutScopeSession, true},
		{service.LogoutScopeUser, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.scope), func(t *testing.T) {
			env := newTestEnv(t, tt.scope)
			first := env.login(t, "mchen", "chess456")
			second := env.login(t, "mchen", "chess456")
			if first == second {
				t.Fatal("two logins returned the same token")
			}

			env.call(t, http.MethodPost, "/auth/logout", first)

			_, body := env.call(t, http.MethodGet, "/auth/me", second)
			var me handler.WhoAmIResponse
			if err := json.Unmarshal(body, &me); err != nil {
				t.Fatalf("decode me: %v", err)
			}
			if me.Authenticated != tt.otherSurvive {
				t.Errorf("second session authenticated = %v, want %v", me.Authenticated, tt.otherSurvive)
			}
		})
	}
}

func TestRouter_ConcurrentSignups(t *testing.T) {
	env := newTestEnv(t, service.LogoutScopeSession)
	const n = 20

	var wg sync.WaitGroup
	codes := make(chan int, n)
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := env.server.Client().Post(env.server.URL+"/activities/Gym%20Class/signup?email=same@mergington.edu", "", nil)
			if err != nil {
				t.Errorf("POST: %v", err)
				return
			}
			resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}
	wg.Wait()
	close(codes)

	ok := 0
	for c := range codes {
		if c == http.StatusOK {
			ok++
		} else if c != http.StatusBadRequest {
			t.Errorf("unexpected status %d", c)
		}
	}
	if ok != 1 {
		t.Errorf("successful signups = %d, want 1", ok)
	}
	got := env.participants(t, "Gym Class")
	count := 0
	for _, p := range got {
		if p == "same@mergington.edu" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("email appears %d times in %v", count, got)
	}
}

func TestRouter_RequestIDAndErrorBody(t *testing.T) {
	env := newTestEnv(t, service.LogoutScopeSession)

	req, _ := http.NewRequest(http.MethodPost, env.server.URL+"/activities/Nope/signup?email=a@b.c", nil)
	req.Header.Set("X-Request-ID", "req-fixed")
	resp, err := env.server.Client().Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got := resp.Header.Get("X-Request-ID"); got != "req-fixed" {
		t.Errorf("X-Request-ID = %q", got)
	}
	var body handler.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "MH-ACT-4040" || body.Detail != "Activity not found" || body.RequestID != "req-fixed" {
		t.Errorf("body = %+v", body)
	}

	resp2, _ := env.call(t, http.MethodGet, "/health", "")
	if id := resp2.Header.Get("X-Request-ID"); !strings.HasPrefix(id, "req-") {
		t.Errorf("generated X-Request-ID = %q", id)
	}
}

func TestRouter_CORSPreflight(t *testing.T) {
	env := newTestEnv(t, service.LogoutScopeSession)

	req, _ := http.NewRequest(http.MethodOptions, env.server.URL+"/activities/Chess%20Club/unregister", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "DELETE")
	resp, err := env.server.Client().Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}
	if !strings.Contains(resp.Header.Get("Access-Control-Allow-Methods"), "DELETE") {
		t.Errorf("Allow-Methods = %q", resp.Header.Get("Access-Control-Allow-Methods"))
	}

	req.Header.Set("Origin", "http://evil.example")
	resp, err = env.server.Client().Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("Access-Control-Allow-Origin") != "" {
		t.Error("disallowed origin received CORS headers")
	}
}

func TestRouter_Metrics(t *testing.T) {
	env := newTestEnv(t, service.LogoutScopeSession)

	env.call(t, http.MethodPost, "/activities/Chess%20Club/signup?email=m@mergington.edu", "")
	env.call(t, http.MethodPost, "/auth/login?username=mchen&password=bad", "")

	resp, body := env.call(t, http.MethodGet, "/metrics", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	text := string(body)
	for _, want := range []string{
		`mergington_http_requests_total{method="POST",route="POST /activities/{name}/signup",status="200"} 1`,
		`mergington_signups_total{result="success"} 1`,
		`mergington_logins_total{result="MH-AUTH-4010"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("metrics output missing %q", want)
		}
	}
}

func TestRecover(t *testing.T) {
	panicky := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})
	h := Chain(panicky, RequestID(), Recover(slog.New(slog.NewTextHandler(io.Discard, nil))))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("X-Error-Code") != "MH-SYS-5000" {
		t.Errorf("X-Error-Code = %q", rec.Header().Get("X-Error-Code"))
	}
	var body handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Code != "MH-SYS-5000" || body.RequestID == "" {
		t.Errorf("body = %+v", body)
	}
	if got := rec.Header().Get("X-Request-ID"); got != body.RequestID {
		t.Errorf("X-Request-ID = %q, body request_id = %q", got, body.RequestID)
	}
}

func TestNewRouter_PanicCarriesRequestID(t *testing.T) {
	auth := service.NewAuthService(credential.NewStaticStore(), memory.NewSessionStore(), nil)
	// No enrollment service: GET /activities dereferences nil and panics.
	router := NewRouter(&RouterConfig{
		AuthService: auth,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	req.Header.Set("X-Request-ID", "req-panic-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.RequestID != "req-panic-1" {
		t.Errorf("request_id = %q, want req-panic-1", body.RequestID)
	}
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Chain(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}), mark("a"), mark("b"))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if !slices.Equal(order, []string{"a", "b", "handler"}) {
		t.Errorf("order = %v", order)
	}
}

func TestGetClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.5:1234"
	if got := getClientIP(req); got != "10.0.0.5" {
		t.Errorf("getClientIP = %q", got)
	}
	req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
	if got := getClientIP(req); got != "203.0.113.9" {
		t.Errorf("getClientIP with XFF = %q", got)
	}
}
