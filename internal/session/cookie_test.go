package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"middle of list", "foo=bar; session_id=abc123; baz=qux", "abc123", true},
		{"only cookie", "session_id=abc123", "abc123", true},
		{"no spaces", "foo=bar;session_id=abc123", "abc123", true},
		{"extra whitespace", "  foo=bar ;   session_id=abc123   ", "abc123", true},
		{"value with equals", "session_id=abc=def", "abc=def", true},
		{"first one wins", "session_id=first; session_id=second", "first", true},
		{"missing", "foo=bar; baz=qux", "", false},
		{"empty header", "", "", false},
		{"empty value", "session_id=", "", false},
		{"pair without equals", "session_id; foo=bar", "", false},
		{"prefix name", "my_session_id=abc", "", false},
		{"case sensitive", "Session_Id=abc", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := TokenFromHeader(tt.header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := TokenFromRequest(r)
	assert.False(t, ok)

	r.Header.Add("Cookie", "foo=bar")
	r.Header.Add("Cookie", "session_id=xyz")
	got, ok := TokenFromRequest(r)
	require.True(t, ok)
	assert.Equal(t, "xyz", got)

	_, ok = TokenFromRequest(nil)
	assert.False(t, ok)
}

func TestSetCookie(t *testing.T) {
	w := httptest.NewRecorder()

	SetCookie(w, "abc123", 1800, CookieOptions{SameSite: http.SameSiteLaxMode})

	headers := w.Header().Values("Set-Cookie")
	require.Len(t, headers, 1)
	h := headers[0]
	assert.Contains(t, h, "session_id=abc123")
	assert.Contains(t, h, "Max-Age=1800")
	assert.Contains(t, h, "HttpOnly")
	assert.Contains(t, h, "Path=/")
	assert.Contains(t, h, "SameSite=Lax")
	assert.NotContains(t, h, "Secure")
}

func TestSetCookie_Secure(t *testing.T) {
	w := httptest.NewRecorder()

	SetCookie(w, "abc123", 1800, CookieOptions{Secure: true})

	assert.Contains(t, w.Header().Get("Set-Cookie"), "Secure")
}

func TestClearCookie(t *testing.T) {
	w := httptest.NewRecorder()

	ClearCookie(w, CookieOptions{})

	headers := w.Header().Values("Set-Cookie")
	require.Len(t, headers, 1)
	assert.Contains(t, headers[0], "session_id=;")
	assert.Contains(t, headers[0], "Max-Age=0")
}
