package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type CommentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *CommentHandler {
	return &CommentHandler{
		Service: svc,
	}
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	req, err := request.BindComment(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), req.ToDomain(c.Param("threadId"), uid))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAddedCommentFromDomain(added)))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	err := h.Service.DeleteComment(c.Request.Context(), c.Param("commentId"), c.Param("threadId"), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.SuccessMessage("Komentar berhasil dihapus"))
}
