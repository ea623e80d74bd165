package feed

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SlpAus/turntable-backend/pkg/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/feed", GetFeedHandler)
	return router
}

func postFeed(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/feed", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestFeedHandlerRequiresUserID(t *testing.T) {
	newFeedTestDB(t)
	router := newFeedTestRouter()

	for _, body := range []string{`{}`, `{"userId": 0}`, `{"page": 1}`} {
		recorder := postFeed(t, router, body)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"error": "userId is required"}`, recorder.Body.String())
	}
}

func TestFeedHandlerRejectsInvalidPagination(t *testing.T) {
	newFeedTestDB(t)
	router := newFeedTestRouter()

	recorder := postFeed(t, router, `{"userId": 1, "limit": 0}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postFeed(t, router, `{"userId": 1, "limit": -5}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = postFeed(t, router, `{"userId": 1, "page": -1}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestFeedHandlerDefaultsAndResponseShape(t *testing.T) {
	db := newFeedTestDB(t)
	router := newFeedTestRouter()

	requester := seedUser(t, db, "requester")
	author := seedUser(t, db, "author")
	for i := 0; i < 12; i++ {
		a := seedAlbum(t, db, fmt.Sprintf("shape-%d", i))
		seedRating(t, db, author.ID, a.ID, 6.5)
	}

	recorder := postFeed(t, router, fmt.Sprintf(`{"userId": %d}`, requester.ID))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response struct {
		Posts      []map[string]interface{} `json:"posts"`
		HasMore    bool                     `json:"hasMore"`
		Page       int                      `json:"page"`
		TotalPosts int                      `json:"totalPosts"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))

	// 未指定page/limit时应用缺省值 0/10
	assert.Len(t, response.Posts, 10)
	assert.True(t, response.HasMore)
	assert.Equal(t, 0, response.Page)
	assert.Equal(t, 12, response.TotalPosts)

	for _, key := range []string{
		"id", "user_id", "username", "album_id", "album_name", "artist_name",
		"release_year", "record_type", "record_image", "rating", "created_at", "is_following",
	} {
		assert.Contains(t, response.Posts[0], key)
	}
	assert.Equal(t, false, response.Posts[0]["is_following"])
	assert.Equal(t, "author", response.Posts[0]["username"])
}

func TestFeedHandlerDatabaseError(t *testing.T) {
	// 不迁移任何表结构，两个选择器的查询都会因缺表而失败，
	// 接口必须整体报错，而不是返回缺了一半内容的页面
	testutil.NewTestDB(t)
	router := newFeedTestRouter()

	recorder := postFeed(t, router, `{"userId": 1}`)
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	var response map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Database error", response["error"])
	assert.NotEmpty(t, response["details"])
}

func TestFeedHandlerEmptyFeed(t *testing.T) {
	db := newFeedTestDB(t)
	router := newFeedTestRouter()
	requester := seedUser(t, db, "loner")

	recorder := postFeed(t, router, fmt.Sprintf(`{"userId": %d}`, requester.ID))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"posts": [], "hasMore": false, "page": 0, "totalPosts": 0}`, recorder.Body.String())
}
