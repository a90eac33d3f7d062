package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_AddRoles(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody addRolesRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	g := NewHTTPGateway(server.URL, time.Second)
	err := g.AddRoles(context.Background(), 1, 42, []uint64{101, 102})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/guilds/1/members/42/roles", gotPath)
	assert.Equal(t, []uint64{101, 102}, gotBody.RoleIDs)
}

func TestHTTPGateway_AddRoles_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"forbidden maps to permission denied", http.StatusForbidden, ErrPermissionDenied},
		{"not found maps to member not found", http.StatusNotFound, ErrMemberNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			g := NewHTTPGateway(server.URL, time.Second)
			err := g.AddRoles(context.Background(), 1, 42, []uint64{101})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHTTPGateway_AddRoles_UnexpectedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	g := NewHTTPGateway(server.URL, time.Second)
	err := g.AddRoles(context.Background(), 1, 42, []uint64{101})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
	assert.NotErrorIs(t, err, ErrMemberNotFound)
}

func TestHTTPGateway_MemberRoles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/guilds/1/members/42/roles", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode(rolesResponse{RoleIDs: []uint64{101, 102}})
	}))
	defer server.Close()

	g := NewHTTPGateway(server.URL, time.Second)
	roles, err := g.MemberRoles(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, []uint64{101, 102}, roles)
}

func TestHTTPGateway_GuildRoles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/guilds/1/roles", r.URL.Path)
		json.NewEncoder(w).Encode(rolesResponse{RoleIDs: []uint64{101}})
	}))
	defer server.Close()

	g := NewHTTPGateway(server.URL, time.Second)
	roles, err := g.GuildRoles(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []uint64{101}, roles)
}

func TestHTTPGateway_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	g := NewHTTPGateway(server.URL, 20*time.Millisecond)
	_, err := g.GuildRoles(context.Background(), 1)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
