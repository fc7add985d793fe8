package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"strings"
	"time"
)

const CookieName = "agrosmart_session"

// CookieOptions defines how session cookies are issued.
type CookieOptions struct {
	Path     string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

func (o CookieOptions) normalize() CookieOptions {
	if o.Path == "" {
		o.Path = "/"
	}
	if o.SameSite == 0 {
		o.SameSite = http.SameSiteLaxMode
	}
	return o
}

// Signer binds session ids to the server secret so a client cannot pick
// another visitor's id.
type Signer struct {
	secret []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

func (s *Signer) mac(id string) string {
	h := hmac.New(sha256.New, s.secret)
	h.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// Sign returns "<id>.<mac>".
func (s *Signer) Sign(id string) string {
	return id + "." + s.mac(id)
}

// Verify returns the id inside value when its signature is valid.
func (s *Signer) Verify(value string) (string, bool) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(sig), []byte(s.mac(id))) {
		return "", false
	}
	return id, true
}

// SetCookie issues the signed session cookie.
func SetCookie(w http.ResponseWriter, signer *Signer, sessionID string, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signer.Sign(sessionID),
		Path:     opts.Path,
		MaxAge:   int(opts.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}

// ReadCookie returns the verified session id carried by r, if any.
func ReadCookie(r *http.Request, signer *Signer) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}
	return signer.Verify(c.Value)
}

// ClearCookie removes the session cookie from the client.
func ClearCookie(w http.ResponseWriter, opts CookieOptions) {
	opts = opts.normalize()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     opts.Path,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: opts.SameSite,
	})
}
