package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureCSRF_SetsCookieOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/lojas", nil)

	token := ensureCSRF(rec, req)

	require.NotEmpty(t, token)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, csrfCookieName, cookies[0].Name)
	assert.Equal(t, token, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// A request already carrying the cookie gets the same token back and
	// no new Set-Cookie.
	rec2 := httptest.NewRecorder()
	req2 := httptest.NewRequest(http.MethodGet, "/lojas", nil)
	req2.AddCookie(cookies[0])

	assert.Equal(t, token, ensureCSRF(rec2, req2))
	assert.Empty(t, rec2.Result().Cookies())
}

func postWithCSRF(cookieValue, fieldValue string) *http.Request {
	form := url.Values{}
	if fieldValue != "" {
		form.Set(csrfFormField, fieldValue)
	}
	req := httptest.NewRequest(http.MethodPost, "/lojas", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if cookieValue != "" {
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: cookieValue})
	}
	return req
}

func TestValidateCSRF(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		field  string
		want   bool
	}{
		{"matching tokens", "tok123", "tok123", true},
		{"mismatched tokens", "tok123", "other", false},
		{"missing cookie", "", "tok123", false},
		{"missing field", "tok123", "", false},
		{"both missing", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateCSRF(postWithCSRF(tt.cookie, tt.field)))
		})
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	a := generateToken()
	b := generateToken()

	assert.Len(t, a, csrfTokenBytes*2)
	assert.NotEqual(t, a, b)
}
