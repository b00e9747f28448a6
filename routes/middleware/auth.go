package middleware

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"

	"photofeed/routes/common"
)

// CookieName is the session cookie. Its value is a signed token carrying the
// authenticated email address; there is no server-side session table.
const CookieName = "email_address"

const emailClaim = "email_address"

// SessionIssuer mints and validates the signed session cookie.
//
// Validation treats "the cookie carries a well-formed email address" as
// authenticated, which accepts a signed cookie for an email that never
// registered. Strict mode closes that gap by also requiring the Exists hook
// to confirm the account.
type SessionIssuer struct {
	Secret []byte
	MaxAge time.Duration
	Strict bool
	Exists func(email string) bool
}

// Issue returns a session cookie for the given email address.
func (s *SessionIssuer) Issue(email string) (*http.Cookie, error) {
	expiry := time.Now().Add(s.MaxAge)

	claims := jwt.MapClaims{
		emailClaim: email,
		"exp":      expiry.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.Secret)
	if err != nil {
		return nil, err
	}

	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiry,
		MaxAge:   int(s.MaxAge / time.Second),
		HttpOnly: true,
	}, nil
}

// Email returns the email address carried by the request's session cookie,
// or false when there is no valid session.
func (s *SessionIssuer) Email(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return "", false
	}

	token, err := jwt.Parse(cookie.Value, func(*jwt.Token) (interface{}, error) {
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	email, _ := claims[emailClaim].(string)
	if !common.ValidEmail(email) {
		return "", false
	}

	if s.Strict && s.Exists != nil && !s.Exists(email) {
		return "", false
	}

	return email, true
}

// Revoke returns a cookie that clears the session client-side.
func (s *SessionIssuer) Revoke() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
}
