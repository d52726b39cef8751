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

// fakeCampus is a minimal stand-in for the remote API that counts list
// fetches, so tests can observe refetch-after-invalidation.
type fakeCampus struct {
	mux       *http.ServeMux
	listCalls int
}

func newFakeCampus(t *testing.T) (*fakeCampus, *campus.Client) {
	t.Helper()
	f := &fakeCampus{mux: http.NewServeMux()}

	f.mux.HandleFunc("GET /users", func(w http.ResponseWriter, r *http.Request) {
		f.listCalls++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"users":      []map[string]string{{"id": "u1", "firstName": "Jo"}},
				"pagination": map[string]int{"page": 1, "limit": 10, "total": 1, "totalPages": 1},
			},
		})
	})
	f.mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"id": "u2", "firstName": "New"},
		})
	})
	f.mux.HandleFunc("PUT /users/u1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]string{"id": "u1", "firstName": "Renamed"},
		})
	})
	f.mux.HandleFunc("DELETE /users/u1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
	})

	srv := httptest.NewServer(f.mux)
	t.Cleanup(srv.Close)
	return f, campus.NewClient(srv.URL, 5*time.Second, 0)
}

func TestListIsCached(t *testing.T) {
	fake, client := newFakeCampus(t)
	svc := NewUsersService(client.Users, cache.New(time.Minute))
	q := campus.ListUsersQuery{Page: 1, Limit: 10}

	for i := 0; i < 3; i++ {
		list, err := svc.List(context.Background(), "tok", q)
		require.NoError(t, err)
		assert.Len(t, list.Users, 1)
	}
	assert.Equal(t, 1, fake.listCalls)
}

// After any successful mutation, previously cached list queries must be
// refetched on next read.
func TestCreateInvalidatesListCache(t *testing.T) {
	fake, client := newFakeCampus(t)
	svc := NewUsersService(client.Users, cache.New(time.Minute))
	q := campus.ListUsersQuery{Page: 1, Limit: 10}

	_, err := svc.List(context.Background(), "tok", q)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.listCalls)

	_, err = svc.Create(context.Background(), "tok", campus.CreateUserRequest{
		FirstName: "Jo", LastName: "Lee", Email: "jo@x.com", Password: "Passw0rd!", Role: "student",
	})
	require.NoError(t, err)

	_, err = svc.List(context.Background(), "tok", q)
	require.NoError(t, err)
	assert.Equal(t, 2, fake.listCalls, "list must be refetched after a create")
}

func TestFailedMutationLeavesCacheIntact(t *testing.T) {
	fake, client := newFakeCampus(t)
	svc := NewUsersService(client.Users, cache.New(time.Minute))
	q := campus.ListUsersQuery{Page: 1, Limit: 10}

	_, err := svc.List(context.Background(), "tok", q)
	require.NoError(t, err)

	err = svc.Delete(context.Background(), "tok", "u1")
	require.Error(t, err, "upstream 500 must surface")

	_, err = svc.List(context.Background(), "tok", q)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.listCalls, "a failed mutation must not invalidate anything")
}

// Update writes the confirmed record through to the detail key, so the next
// detail read costs no round trip.
func TestUpdateWritesThroughDetail(t *testing.T) {
	_, client := newFakeCampus(t)
	qc := cache.New(time.Minute)
	svc := NewUsersService(client.Users, qc)

	updated, err := svc.Update(context.Background(), "tok", "u1", campus.UpdateUserRequest{FirstName: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)

	// No GET /users/u1 route exists on the fake; a cache miss would error.
	got, err := svc.Get(context.Background(), "tok", "u1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.FirstName)
}

func TestDistinctPagesDistinctEntries(t *testing.T) {
	fake, client := newFakeCampus(t)
	svc := NewUsersService(client.Users, cache.New(time.Minute))

	_, err := svc.List(context.Background(), "tok", campus.ListUsersQuery{Page: 1, Limit: 10})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), "tok", campus.ListUsersQuery{Page: 2, Limit: 10})
	require.NoError(t, err)
	_, err = svc.List(context.Background(), "tok", campus.ListUsersQuery{Page: 1, Limit: 10, Search: "jo"})
	require.NoError(t, err)

	assert.Equal(t, 3, fake.listCalls, "pages and filters must not share entries")
}
