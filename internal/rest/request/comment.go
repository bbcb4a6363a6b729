package request

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
)

type Comment struct {
	Content string `json:"content"`
}

func BindComment(c *gin.Context) (Comment, error) {
	var req Comment
	err := bindJSON(c, &req, domain.ErrAddCommentDataType)
	return req, err
}

// ToDomain: Request -> Domain
func (r Comment) ToDomain(threadID, owner string) domain.AddCommentPayload {
	return domain.AddCommentPayload{
		Content:  r.Content,
		ThreadID: threadID,
		Owner:    owner,
	}
}

type Reply struct {
	Content string `json:"content"`
}

func BindReply(c *gin.Context) (Reply, error) {
	var req Reply
	err := bindJSON(c, &req, domain.ErrAddReplyDataType)
	return req, err
}

// ToDomain: Request -> Domain
func (r Reply) ToDomain(threadID, commentID, owner string) domain.AddReplyPayload {
	return domain.AddReplyPayload{
		Content:   r.Content,
		ThreadID:  threadID,
		CommentID: commentID,
		Owner:     owner,
	}
}
