package session

import (
	"net/http"
	"strings"
)

const (
	CookieName = "session_id"
)

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
	Domain   string
}

// normalize applies safe defaults without breaking callers
func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	return o
}

// SetCookie issues the session cookie. The cookie is always HttpOnly and
// lives for maxAge seconds.
func SetCookie(
	w http.ResponseWriter,
	token string,
	maxAge int,
	opts CookieOptions,
) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ClearCookie tells the client to drop the session cookie immediately
// (empty value, Max-Age=0).
func ClearCookie(
	w http.ResponseWriter,
	opts CookieOptions,
) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     opts.Path,
		Domain:   opts.Domain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// TokenFromHeader extracts the session token from a raw Cookie header of
// the form "a=1; session_id=abc; b=2". Pairs without "=" or with another
// name are skipped. Only the first session_id pair is considered, and an
// empty value counts as no token.
func TokenFromHeader(header string) (string, bool) {
	for _, pair := range strings.Split(header, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok || name != CookieName {
			continue
		}
		return value, value != ""
	}
	return "", false
}

// TokenFromRequest reads the session token from every Cookie header on r.
func TokenFromRequest(r *http.Request) (string, bool) {
	if r == nil || r.Header == nil {
		return "", false
	}

	headers := r.Header.Values("Cookie")
	if len(headers) == 0 {
		return "", false
	}

	return TokenFromHeader(strings.Join(headers, ";"))
}
