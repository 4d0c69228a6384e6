package session

import (
	"fmt"
	"net/http"
	"time"
	"wadboard/internal/providers"
	"wadboard/internal/structures"

	"github.com/gorilla/securecookie"
)

// CookieCodec signs session tokens into the admin cookie and reads them back.
type CookieCodec struct {
	name   string
	ttl    time.Duration
	secure bool
	codec  *securecookie.SecureCookie
}

func NewCookieCodec(conf *structures.Config, logger providers.Logger) (*CookieCodec, error) {
	key := []byte(conf.Auth.HashKey)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("generate cookie hash key")
		}
		logger.Infof(providers.TypeAuth, "No cookie hash key configured, using a per-process key")
	}

	codec := securecookie.New(key, nil)
	codec.MaxAge(int(conf.Auth.SessionTTL.Seconds()))

	return &CookieCodec{
		name:   conf.Auth.CookieName,
		ttl:    conf.Auth.SessionTTL,
		secure: conf.Auth.SecureCookie,
		codec:  codec,
	}, nil
}

func (c *CookieCodec) Set(w http.ResponseWriter, token string) error {
	value, err := c.codec.Encode(c.name, token)
	if err != nil {
		return fmt.Errorf("encode session cookie: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
	return nil
}

func (c *CookieCodec) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Token returns the session token carried by r, or "" when the cookie is
// missing or its signature does not verify.
func (c *CookieCodec) Token(r *http.Request) string {
	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return ""
	}
	var token string
	if err = c.codec.Decode(c.name, cookie.Value, &token); err != nil {
		return ""
	}
	return token
}
