package httpx_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims jwtx.Claims
	err    error
}

func (s stubVerifier) Verify(string) (jwtx.Claims, error) { return s.claims, s.err }

func TestAuthnMiddleware(t *testing.T) {
	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = httpx.SubjectFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	claims := jwtx.NewClaims("alice", "iss", []string{"ROLE_USER"}, time.Minute, time.Now())

	t.Run("valid token", func(t *testing.T) {
		h := httpx.AuthnMiddleware(stubVerifier{claims: claims})(next)

		req := newRequest("192.168.1.1:12345", "")
		req.Header.Set("Authorization", "Bearer abc.def.ghi")

		rec := serve(h, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "alice", gotSubject)
	})

	t.Run("missing header", func(t *testing.T) {
		h := httpx.AuthnMiddleware(stubVerifier{claims: claims})(next)

		rec := serve(h, newRequest("192.168.1.1:12345", ""))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), `error="invalid_token"`)
		require.Contains(t, rec.Body.String(), "missing bearer token")
	})

	t.Run("rejected token", func(t *testing.T) {
		h := httpx.AuthnMiddleware(stubVerifier{err: errors.New("bad")})(next)

		req := newRequest("192.168.1.1:12345", "")
		req.Header.Set("Authorization", "Bearer abc.def.ghi")

		require.Equal(t, http.StatusUnauthorized, serve(h, req).Code)
	})
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) httpx.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	serve(httpx.Chain(okHandler, mw("outer"), mw("inner")), newRequest("192.168.1.1:12345", ""))
	require.Equal(t, []string{"outer", "inner"}, order)
}
