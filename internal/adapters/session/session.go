// Package session brokers admin sessions. Credential checks are
// delegated to the hosted identity endpoint; this adapter only
// exchanges credentials for a token, verifies tokens locally, and
// keeps a revocation list for logout.
package session

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cairo_tours/internal/domain"
)

type Service struct {
	base    string
	key     string
	secret  []byte
	hc      *http.Client
	revoked domain.Cache
}

func New(base, key string, secret []byte, revoked domain.Cache) *Service {
	return &Service{
		base:    strings.TrimRight(base, "/"),
		key:     key,
		secret:  secret,
		hc:      &http.Client{Timeout: 10 * time.Second},
		revoked: revoked,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

func (s *Service) SignIn(ctx context.Context, email, password string) (domain.Session, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	u := s.base + "/auth/v1/token?grant_type=password"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(string(body)))
	if err != nil {
		return domain.Session{}, err
	}
	req.Header.Set("apikey", s.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.hc.Do(req)
	if err != nil {
		return domain.Session{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return domain.Session{}, domain.ErrUnauthorized
	default:
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return domain.Session{}, fmt.Errorf("identity endpoint %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return domain.Session{}, err
	}
	if tr.AccessToken == "" {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return domain.Session{
		Token:     tr.AccessToken,
		ExpiresAt: time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second),
		User:      domain.User{ID: tr.User.ID, Email: tr.User.Email},
	}, nil
}

// parse validates the token signature and expiry and returns its
// claims. Any failure collapses to ErrUnauthorized.
func (s *Service) parse(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	return claims, nil
}

func (s *Service) isRevoked(ctx context.Context, token string) bool {
	if s.revoked == nil {
		return false
	}
	var gone bool
	ok, _ := s.revoked.Get(ctx, revocationKey(token), &gone)
	return ok && gone
}

// Verify validates the token locally, then checks the revocation list.
func (s *Service) Verify(ctx context.Context, token string) (domain.User, error) {
	claims, err := s.parse(token)
	if err != nil {
		return domain.User{}, err
	}
	if s.isRevoked(ctx, token) {
		return domain.User{}, domain.ErrUnauthorized
	}

	u := domain.User{}
	if sub, err := claims.GetSubject(); err == nil {
		u.ID = sub
	}
	if email, ok := claims["email"].(string); ok {
		u.Email = email
	}
	if u.ID == "" {
		return domain.User{}, domain.ErrUnauthorized
	}
	return u, nil
}

// SignOut revokes the token for its remaining lifetime. The claims
// from the single parse supply the revocation TTL.
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}
	if s.isRevoked(ctx, token) {
		return domain.ErrUnauthorized
	}
	if s.revoked == nil {
		return nil
	}
	ttl := defaultRevocationTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		if d := time.Until(exp.Time); d > 0 {
			ttl = d
		}
	}
	return s.revoked.Set(ctx, revocationKey(token), true, int(ttl.Seconds())+1)
}

const defaultRevocationTTL = time.Hour

func revocationKey(token string) string {
	sum := sha1.Sum([]byte(token))
	return "session:revoked:" + hex.EncodeToString(sum[:])
}
