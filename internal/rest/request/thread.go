package request

import (
	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
)

type Thread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func BindThread(c *gin.Context) (Thread, error) {
	var req Thread
	err := bindJSON(c, &req, domain.ErrAddThreadDataType)
	return req, err
}

// ToDomain: Request -> Domain
func (r Thread) ToDomain(owner string) domain.AddThreadPayload {
	return domain.AddThreadPayload{
		Title: r.Title,
		Body:  r.Body,
		Owner: owner,
	}
}
