package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type LikeHandler struct {
	Service domain.LikeUsecase
}

func NewLikeHandler(svc domain.LikeUsecase) *LikeHandler {
	return &LikeHandler{
		Service: svc,
	}
}

// Toggle likes the comment, or unlikes it when the user already did
func (h *LikeHandler) Toggle(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	_, err := h.Service.ToggleLike(c.Request.Context(), c.Param("commentId"), c.Param("threadId"), uid)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(nil))
}
