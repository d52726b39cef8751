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

// A draft fetched by its author must not be handed to an anonymous reader of
// the same slug from cache; the anonymous lookup goes upstream and gets the
// upstream's answer.
func TestDraftBySlugNotSharedWithAnonymous(t *testing.T) {
	anonCalls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/blogs/campus-week", r.URL.Path)
		if r.Header.Get("Authorization") == "" {
			anonCalls++
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "not found"})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": "b1", "slug": "campus-week", "isPublished": false},
		})
	}))
	t.Cleanup(srv.Close)

	svc := NewBlogsService(campus.NewClient(srv.URL, 5*time.Second, 0).Blogs, cache.New(time.Minute))

	draft, err := svc.GetBySlug(context.Background(), "staff-token", "campus-week")
	require.NoError(t, err)
	assert.False(t, draft.IsPublished)

	_, err = svc.GetBySlug(context.Background(), "", "campus-week")
	require.Error(t, err, "anonymous lookup of an unpublished draft must not hit the staff cache entry")
	assert.Equal(t, 1, anonCalls)
}
