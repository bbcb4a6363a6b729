package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type ReplyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *ReplyHandler {
	return &ReplyHandler{
		Service: svc,
	}
}

func (h *ReplyHandler) CreateReply(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	req, err := request.BindReply(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	payload := req.ToDomain(c.Param("threadId"), c.Param("commentId"), uid)
	added, err := h.Service.AddReply(c.Request.Context(), payload)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAddedReplyFromDomain(added)))
}

func (h *ReplyHandler) DeleteReply(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	err := h.Service.DeleteReply(c.Request.Context(), c.Param("commentId"), c.Param("replyId"), c.Param("threadId"), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
