package rostersdk_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/stretchr/testify/require"
)

func TestLoginAndAssign(t *testing.T) {
	var assigned string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var creds rostersdk.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		require.Equal(t, "alice", creds.Username)
		_ = json.NewEncoder(w).Encode(rostersdk.LoginResponse{Token: "tok"})
	})
	mux.HandleFunc("PATCH /api/v1/employees/{id}/assignOffices", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.Equal(t, "7", r.PathValue("id"))
		body, _ := io.ReadAll(r.Body)
		assigned = string(body)
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	s, err := rostersdk.NewClient(srv.URL).Login(ctx, "alice", "secret123")
	require.NoError(t, err)
	require.Equal(t, "tok", s.Token())

	require.NoError(t, s.AssignOffices(ctx, 7, nil))
	require.Equal(t, "[]", assigned)
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(rostersdk.ErrorResponse{
			Error:            rostersdk.CodeUnknownReference,
			ErrorDescription: "offices not found: [999]",
			IDs:              []int64{999},
		})
	}))
	defer srv.Close()

	err := rostersdk.NewClient(srv.URL).NewSession("tok").AssignOffices(context.Background(), 1, []int64{10, 999})
	require.True(t, rostersdk.IsCode(err, rostersdk.CodeUnknownReference))

	var apiErr *rostersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, []int64{999}, apiErr.IDs)
}

func TestAPIError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := rostersdk.NewClient(srv.URL).GetLiveness(context.Background())

	var apiErr *rostersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, rostersdk.CodeInternal, apiErr.Code)
}
