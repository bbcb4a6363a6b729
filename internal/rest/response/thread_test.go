package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

func TestNewThreadDetailFromDomain(t *testing.T) {
	jakarta := time.FixedZone("WIB", 7*60*60)
	th := domain.Thread{
		ID:       "thread-123",
		Title:    "sebuah thread",
		Body:     "sebuah body",
		Date:     time.Date(2021, 8, 8, 14, 19, 9, 775_000_000, jakarta),
		Username: "dicoding",
		Comments: []domain.Comment{
			{ID: "comment-1", Username: "johndoe", Content: "komentar", LikeCount: 2, Date: time.Date(2021, 8, 8, 7, 22, 33, 555_000_000, time.UTC)},
		},
	}

	body, err := json.Marshal(response.Success(response.NewThreadDetailFromDomain(th)))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"status": "success",
		"data": {"thread": {
			"id": "thread-123",
			"title": "sebuah thread",
			"body": "sebuah body",
			"date": "2021-08-08T07:19:09.775Z",
			"username": "dicoding",
			"comments": [{
				"id": "comment-1",
				"username": "johndoe",
				"date": "2021-08-08T07:22:33.555Z",
				"content": "komentar",
				"likeCount": 2,
				"replies": []
			}]
		}}
	}`, string(body))
}

func TestNewThreadDetailFromDomainEmptyComments(t *testing.T) {
	body, err := json.Marshal(response.NewThreadDetailFromDomain(domain.Thread{ID: "thread-123"}))
	require.NoError(t, err)

	assert.Contains(t, string(body), `"comments":[]`)
}

func TestFailEnvelope(t *testing.T) {
	body, err := json.Marshal(response.Fail("Thread tidak ditemukan"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"fail","message":"Thread tidak ditemukan"}`, string(body))

	body, err = json.Marshal(response.ServerError())
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"error","message":"terjadi kegagalan pada server kami"}`, string(body))
}
