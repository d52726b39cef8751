package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus_portal/internal/platform/cache"
	"campus_portal/internal/platform/campus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newScopedCampus serves a staff listing (drafts included) to tokened calls
// and a published-only listing to anonymous ones, counting each.
func newScopedCampus(t *testing.T) (*campus.Client, *int, *int) {
	t.Helper()
	staffCalls := new(int)
	anonCalls := new(int)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		programs := []map[string]interface{}{
			{"id": "p1", "name": "Physics", "isPublished": true},
		}
		if r.Header.Get("Authorization") != "" {
			*staffCalls++
			programs = append(programs, map[string]interface{}{
				"id": "p2", "name": "Draft Program", "isPublished": false,
			})
		} else {
			*anonCalls++
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"programs":   programs,
				"pagination": map[string]int{"page": 1, "limit": 10, "total": len(programs), "totalPages": 1},
			},
		})
	}))
	t.Cleanup(srv.Close)

	return campus.NewClient(srv.URL, 5*time.Second, 0), staffCalls, anonCalls
}

// A staff listing must never be served from cache to an anonymous caller, or
// the public surface would expose unpublished drafts.
func TestStaffAndAnonymousListsDoNotShareCache(t *testing.T) {
	client, staffCalls, anonCalls := newScopedCampus(t)
	svc := NewProgramsService(client.Programs, cache.New(time.Minute))
	q := campus.ListProgramsQuery{Page: 1, Limit: 10}

	staffList, err := svc.List(context.Background(), "staff-token", q)
	require.NoError(t, err)
	require.Len(t, staffList.Programs, 2)

	anonList, err := svc.List(context.Background(), "", q)
	require.NoError(t, err)
	assert.Len(t, anonList.Programs, 1, "anonymous caller must get the published-only listing")
	for _, p := range anonList.Programs {
		assert.True(t, p.IsPublished)
	}

	assert.Equal(t, 1, *staffCalls)
	assert.Equal(t, 1, *anonCalls, "anonymous list must reach the upstream, not the staff cache entry")

	// Each scope still caches within itself.
	_, err = svc.List(context.Background(), "staff-token", q)
	require.NoError(t, err)
	_, err = svc.List(context.Background(), "", q)
	require.NoError(t, err)
	assert.Equal(t, 1, *staffCalls)
	assert.Equal(t, 1, *anonCalls)
}
