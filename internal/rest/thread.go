package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store will store the thread by given request body
func (h *ThreadHandler) Store(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortWithError(c, domain.ErrUnauthorized)
		return
	}

	req, err := request.BindThread(c)
	if err != nil {
		abortWithError(c, err)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), req.ToDomain(uid))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(response.NewAddedThreadFromDomain(added)))
}

// GetByID will get the thread detail by given id
func (h *ThreadHandler) GetByID(c *gin.Context) {
	th, err := h.Service.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(response.NewThreadDetailFromDomain(th)))
}
