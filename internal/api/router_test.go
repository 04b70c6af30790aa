package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/api/handler"
	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
	"github.com/ghiblihub/catalog-api/internal/infrastructure/token"
)

type stubAuth struct{}

func (stubAuth) Login(_ context.Context, username, password string) (*ports.TokenResult, error) {
	if username == "admin" && password == "P@ssw0rd" {
		return &ports.TokenResult{AccessToken: "tok", TokenType: "bearer", ExpiresAt: time.Now().Add(time.Minute)}, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// memUsers is a tiny in-memory user service.
type memUsers struct {
	next  int64
	users map[int64]*domain.User
}

func newMemUsers() *memUsers {
	return &memUsers{next: 1, users: map[int64]*domain.User{}}
}

func (m *memUsers) List(_ context.Context, _ ports.UserFilter, _ ports.Page) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(m.users))
	for id := int64(1); id < m.next; id++ {
		if u, ok := m.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memUsers) Get(_ context.Context, id int64) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *memUsers) Create(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
	for _, u := range m.users {
		if u.Username == in.Username || u.Email == in.Email {
			return nil, domain.ErrConflict
		}
	}
	u := &domain.User{ID: m.next, Username: in.Username, Email: in.Email, RoleID: 1, Role: &domain.Role{ID: 1, Name: in.RoleName}}
	m.users[u.ID] = u
	m.next++
	return u, nil
}

func (m *memUsers) Update(_ context.Context, id int64, in ports.UpdateUserInput) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	return u, nil
}

func (m *memUsers) Delete(_ context.Context, id int64) error {
	if _, ok := m.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(m.users, id)
	return nil
}

type stubCatalog struct {
	err error
}

func (s stubCatalog) Films(context.Context, ports.CatalogQuery) ([]domain.Film, error) {
	return []domain.Film{{ID: "58611129", Title: "My Neighbor Totoro"}}, s.err
}

func (s stubCatalog) People(context.Context, ports.CatalogQuery) ([]domain.Person, error) {
	return []domain.Person{}, s.err
}

func (s stubCatalog) Locations(context.Context, ports.CatalogQuery) ([]domain.Location, error) {
	return []domain.Location{}, s.err
}

func (s stubCatalog) Species(context.Context, ports.CatalogQuery) ([]domain.Species, error) {
	return []domain.Species{}, s.err
}

func (s stubCatalog) Vehicles(context.Context, ports.CatalogQuery) ([]domain.Vehicle, error) {
	return []domain.Vehicle{}, s.err
}

type fixedLimiter struct {
	allowed bool
	resets  int
}

func (f *fixedLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return f.allowed, 30 * time.Second, nil
}

func (f *fixedLimiter) Reset(context.Context, string) error {
	f.resets++
	return nil
}

type testServer struct {
	e      *echo.Echo
	tokens *token.Service
}

func newTestServer(t *testing.T, catalog ports.CatalogService, limiter LoginLimiter) *testServer {
	t.Helper()
	tokens, err := token.NewService("test-secret", "HS256", time.Minute)
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	if catalog == nil {
		catalog = stubCatalog{}
	}
	reg := prometheus.NewRegistry()
	e := NewRouter(Dependencies{
		Log:          zerolog.Nop(),
		Tokens:       tokens,
		Auth:         stubAuth{},
		Users:        newMemUsers(),
		Catalog:      catalog,
		LoginLimiter: limiter,
		HealthChecks: map[string]handler.HealthCheck{"store": func(context.Context) error { return nil }},
		Registerer:   reg,
		Gatherer:     reg,
	})
	return &testServer{e: e, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, target, role, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if role != "" {
		raw, _, err := s.tokens.Issue(role+"-user", role)
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+raw)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) handler.ErrorResponse {
	t.Helper()
	var resp handler.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid error envelope %q: %v", rec.Body.String(), err)
	}
	if resp.StatusCode != rec.Code {
		t.Fatalf("envelope status %d does not match response %d", resp.StatusCode, rec.Code)
	}
	return resp
}

func TestRouter_GateStatuses(t *testing.T) {
	s := newTestServer(t, nil, nil)

	rec := s.do(t, http.MethodGet, "/api/v1/ghibli/films", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if rec.Header().Get(echo.HeaderWWWAuthenticate) != "Bearer" {
		t.Fatalf("expected WWW-Authenticate: Bearer")
	}
	decodeError(t, rec)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/ghibli/films", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
	rec = httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for a bad token, got %d", rec.Code)
	}

	rec = s.do(t, http.MethodGet, "/api/v1/ghibli/films", domain.RoleAdmin, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("admin must not reach films, got %d", rec.Code)
	}
	decodeError(t, rec)

	rec = s.do(t, http.MethodGet, "/api/v1/ghibli/films", domain.RoleFilms, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "Totoro") {
		t.Fatalf("films role should reach films, got %d %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodGet, "/api/v1/users", domain.RoleFilms, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("films role must not reach users, got %d", rec.Code)
	}
}

func TestRouter_EachCatalogRouteHasItsRole(t *testing.T) {
	s := newTestServer(t, nil, nil)
	routes := map[string]string{
		"/api/v1/ghibli/films":     domain.RoleFilms,
		"/api/v1/ghibli/people":    domain.RolePeople,
		"/api/v1/ghibli/locations": domain.RoleLocations,
		"/api/v1/ghibli/species":   domain.RoleSpecies,
		"/api/v1/ghibli/vehicles":  domain.RoleVehicles,
	}
	for path, role := range routes {
		if rec := s.do(t, http.MethodGet, path, role, ""); rec.Code != http.StatusOK {
			t.Fatalf("%s as %s: expected 200, got %d", path, role, rec.Code)
		}
		other := domain.RoleFilms
		if role == domain.RoleFilms {
			other = domain.RoleVehicles
		}
		if rec := s.do(t, http.MethodGet, path, other, ""); rec.Code != http.StatusForbidden {
			t.Fatalf("%s as %s: expected 403, got %d", path, other, rec.Code)
		}
	}
}

func TestRouter_Login(t *testing.T) {
	limiter := &fixedLimiter{allowed: true}
	s := newTestServer(t, nil, limiter)

	form := url.Values{"username": {"admin"}, "password": {"P@ssw0rd"}}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"token_type":"bearer"`) {
		t.Fatalf("unexpected login response %d %s", rec.Code, rec.Body.String())
	}
	if limiter.resets != 1 {
		t.Fatalf("expected attempts reset after success")
	}

	rec = s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"nope"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Detail != "Incorrect username or password" {
		t.Fatalf("unexpected detail %q", resp.Detail)
	}

	rec = s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for missing password, got %d", rec.Code)
	}
}

func TestRouter_LoginRateLimited(t *testing.T) {
	s := newTestServer(t, nil, &fixedLimiter{allowed: false})

	rec := s.do(t, http.MethodPost, "/api/v1/auth/login", "", `{"username":"admin","password":"P@ssw0rd"}`)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "30" {
		t.Fatalf("expected Retry-After 30, got %q", rec.Header().Get("Retry-After"))
	}
	decodeError(t, rec)
}

func TestRouter_UsersCRUD(t *testing.T) {
	s := newTestServer(t, nil, nil)
	admin := domain.RoleAdmin

	body := `{"username":"kiki","email":"kiki@example.com","password":"broom","role_name":"films"}`
	rec := s.do(t, http.MethodPost, "/api/v1/users", admin, body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d %s", rec.Code, rec.Body.String())
	}
	var created map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &created)
	if created["id"] != float64(1) {
		t.Fatalf("unexpected created user: %v", created)
	}

	if rec = s.do(t, http.MethodPost, "/api/v1/users", admin, body); rec.Code != http.StatusConflict {
		t.Fatalf("duplicate: expected 409, got %d", rec.Code)
	}
	if rec = s.do(t, http.MethodPost, "/api/v1/users", admin, `{"username":"x"}`); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("invalid: expected 422, got %d", rec.Code)
	}

	if rec = s.do(t, http.MethodGet, "/api/v1/users", admin, ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "kiki") {
		t.Fatalf("list: %d %s", rec.Code, rec.Body.String())
	}
	if rec = s.do(t, http.MethodGet, "/api/v1/users/1", admin, ""); rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	if rec = s.do(t, http.MethodPatch, "/api/v1/users/1", admin, `{"email":"kiki@delivery.example.com"}`); rec.Code != http.StatusOK ||
		!strings.Contains(rec.Body.String(), "kiki@delivery.example.com") {
		t.Fatalf("patch: %d %s", rec.Code, rec.Body.String())
	}
	if rec = s.do(t, http.MethodDelete, "/api/v1/users/1", admin, ""); rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "kiki") {
		t.Fatalf("delete: %d %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodGet, "/api/v1/users/1", admin, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete: expected 404, got %d", rec.Code)
	}
	if resp := decodeError(t, rec); resp.Detail != "User not found" {
		t.Fatalf("unexpected detail %q", resp.Detail)
	}
	if rec = s.do(t, http.MethodGet, "/api/v1/users/zero", admin, ""); rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("bad id: expected 422, got %d", rec.Code)
	}
}

func TestRouter_UpstreamErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{&domain.UpstreamStatusError{Status: http.StatusNotFound}, http.StatusNotFound},
		{&domain.UpstreamStatusError{Status: http.StatusBadRequest}, http.StatusBadRequest},
		{&domain.UpstreamStatusError{Status: http.StatusInternalServerError}, http.StatusBadGateway},
		{&domain.UpstreamUnavailableError{Message: "dial tcp: connection refused"}, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		s := newTestServer(t, stubCatalog{err: tc.err}, nil)
		rec := s.do(t, http.MethodGet, "/api/v1/ghibli/films?film_id=x", domain.RoleFilms, "")
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		decodeError(t, rec)
	}
}

func TestRouter_OperationalRoutes(t *testing.T) {
	s := newTestServer(t, nil, nil)

	if rec := s.do(t, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: %d", rec.Code)
	}
	if rec := s.do(t, http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("ready: %d", rec.Code)
	}

	s.do(t, http.MethodGet, "/health", "", "")
	rec := s.do(t, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "catalog_api_requests_total") {
		t.Fatalf("metrics: %d %s", rec.Code, rec.Body.String())
	}

	rec = s.do(t, http.MethodGet, "/nope", "", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown route: expected 404, got %d", rec.Code)
	}
	decodeError(t, rec)
}
