package app

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func skipperContext(path string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", path, nil)

	return c
}

func TestCacheSkipper(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"/api/v1/health", true},
		{"/api/v1/scheduler/jobs", true},
		// batch listings change on every organize or delete, so they
		// are never served from cache
		{"/api/v1/organize", true},
		{"/api/v1/organize/batches", true},
		{"/api/v1/organize/batches/01ARZ3NDEKTSV4RRFFQ69G5FAV", true},
		{"/api/v1/organize/batches/01ARZ3NDEKTSV4RRFFQ69G5FAV/download", true},
		// rules have sibling PUT/DELETE mutations, so they are skipped too
		{"/api/v1/rules", true},
		{"/api/v1/classify/test", false},
		{"/api/v1/stats", false},
	}

	for _, tc := range cases {
		if got := cacheSkipper(skipperContext(tc.path)); got != tc.want {
			t.Errorf("cacheSkipper(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}
