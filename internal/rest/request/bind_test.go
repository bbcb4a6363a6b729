package request_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
)

func newContext(body string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/threads", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindThread(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req, err := request.BindThread(newContext(`{"title":"sebuah thread","body":"sebuah body"}`))

		require.NoError(t, err)
		assert.Equal(t, domain.AddThreadPayload{Title: "sebuah thread", Body: "sebuah body", Owner: "user-123"}, req.ToDomain("user-123"))
	})

	t.Run("empty body", func(t *testing.T) {
		req, err := request.BindThread(newContext(""))

		require.NoError(t, err)
		assert.Empty(t, req.Title)
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := request.BindThread(newContext(`{"title":123,"body":"sebuah body"}`))

		assert.ErrorIs(t, err, domain.ErrAddThreadDataType)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := request.BindThread(newContext(`{"title":`))

		assert.ErrorIs(t, err, domain.ErrBadParamInput)
	})
}

func TestBindComment(t *testing.T) {
	_, err := request.BindComment(newContext(`{"content":["a"]}`))
	assert.ErrorIs(t, err, domain.ErrAddCommentDataType)

	req, err := request.BindComment(newContext(`{"content":"sebuah komentar"}`))
	require.NoError(t, err)
	assert.Equal(t, "thread-123", req.ToDomain("thread-123", "user-123").ThreadID)
}

func TestBindReply(t *testing.T) {
	_, err := request.BindReply(newContext(`{"content":true}`))
	assert.ErrorIs(t, err, domain.ErrAddReplyDataType)

	req, err := request.BindReply(newContext(`{"content":"sebuah balasan"}`))
	require.NoError(t, err)
	assert.Equal(t, domain.AddReplyPayload{
		Content: "sebuah balasan", ThreadID: "thread-123", CommentID: "comment-123", Owner: "user-123",
	}, req.ToDomain("thread-123", "comment-123", "user-123"))
}
