package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MotoAgenda/internal/domain"
	"github.com/m04kA/SMC-MotoAgenda/pkg/metrics"
)

const testSecret = "test-secret"

func echoUser(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUser(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(user.ID + ":" + string(user.Role)))
}

func doRequest(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuth_ValidToken(t *testing.T) {
	auth := NewAuthenticator(testSecret, "motoagenda")
	token, err := auth.IssueToken(domain.User{ID: "u-1", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)

	rec := doRequest(auth.Auth(http.HandlerFunc(echoUser)), token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1:admin", rec.Body.String())
}

func TestAuth_MissingHeader(t *testing.T) {
	auth := NewAuthenticator(testSecret, "")

	rec := doRequest(auth.Auth(http.HandlerFunc(echoUser)), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgMissingToken)
}

func TestAuth_RejectsBadTokens(t *testing.T) {
	auth := NewAuthenticator(testSecret, "motoagenda")
	user := domain.User{ID: "u-1", Role: domain.RoleUser}

	expired, err := auth.IssueToken(user, -time.Minute)
	require.NoError(t, err)

	otherSecret, err := NewAuthenticator("other", "motoagenda").IssueToken(user, time.Hour)
	require.NoError(t, err)

	otherIssuer, err := NewAuthenticator(testSecret, "someone-else").IssueToken(user, time.Hour)
	require.NoError(t, err)

	badRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: "root",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u-1",
			Issuer:    "motoagenda",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
		Role:             domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1", Issuer: "motoagenda"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"other secret": otherSecret,
		"other issuer": otherIssuer,
		"unknown role": badRole,
		"none alg":     noneAlg,
		"garbage":      "not-a-token",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			rec := doRequest(auth.Auth(http.HandlerFunc(echoUser)), token)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), msgInvalidToken)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	auth := NewAuthenticator(testSecret, "")
	h := auth.Auth(RequireAdmin(http.HandlerFunc(echoUser)))

	adminToken, err := auth.IssueToken(domain.User{ID: "a", Role: domain.RoleAdmin}, time.Hour)
	require.NoError(t, err)
	userToken, err := auth.IssueToken(domain.User{ID: "b", Role: domain.RoleUser}, time.Hour)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, doRequest(h, adminToken).Code)

	rec := doRequest(h, userToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), msgForbidden)
}

func TestRequireAdmin_WithoutAuth(t *testing.T) {
	rec := doRequest(RequireAdmin(http.HandlerFunc(echoUser)), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegisterer("test", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/appointments/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/appointments/"+id, nil)
		r.ServeHTTP(httptest.NewRecorder(), req)
	}

	counter := m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/appointments/{id}", "404")
	assert.Equal(t, float64(3), testutil.ToFloat64(counter))
}

func TestMetricsMiddleware_NilMetrics(t *testing.T) {
	h := MetricsMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
