package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func adminProbe(token string) (http.Handler, *bool) {
	called := new(bool)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
	return RequireAdmin(token)(next), called
}

func TestRequireAdminMissingToken(t *testing.T) {
	h, called := adminProbe("secret")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called, "handler must not run without a credential")
	assert.JSONEq(t, `{"error":"missing admin token"}`, rec.Body.String())
}

func TestRequireAdminWrongToken(t *testing.T) {
	h, called := adminProbe("secret")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AdminKeyHeader, "not-the-secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
	assert.JSONEq(t, `{"error":"invalid admin token"}`, rec.Body.String())
}

func TestRequireAdminAcceptsAPIKeyHeader(t *testing.T) {
	h, called := adminProbe("secret")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AdminKeyHeader, "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireAdminFallsBackToAuthorizationHeader(t *testing.T) {
	h, called := adminProbe("secret")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "secret")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireAdminTrimsWhitespace(t *testing.T) {
	h, called := adminProbe("  secret\n")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AdminKeyHeader, " secret ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestRequireAdminEmptyConfiguredTokenRejectsAll(t *testing.T) {
	h, called := adminProbe("")

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(AdminKeyHeader, "anything")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}
