package request

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
)

// bindJSON decodes the body into obj. An empty body leaves obj untouched so the
// entity validator reports the missing fields. A field of the wrong JSON type
// yields dataType.
func bindJSON(c *gin.Context, obj any, dataType error) error {
	err := c.ShouldBindJSON(obj)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return dataType
	}
	return domain.ErrBadParamInput
}
