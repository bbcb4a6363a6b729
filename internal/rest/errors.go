package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// messages holds the user facing text of each domain error.
var messages = map[error]string{
	domain.ErrAddThreadMissingProperty:  "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada",
	domain.ErrAddThreadDataType:         "tidak dapat membuat thread baru karena tipe data tidak sesuai",
	domain.ErrAddCommentMissingProperty: "tidak dapat membuat komentar baru karena properti yang dibutuhkan tidak ada",
	domain.ErrAddCommentDataType:        "tidak dapat membuat komentar baru karena tipe data tidak sesuai",
	domain.ErrAddReplyMissingProperty:   "tidak dapat membuat balasan baru karena properti yang dibutuhkan tidak ada",
	domain.ErrAddReplyDataType:          "tidak dapat membuat balasan baru karena tipe data tidak sesuai",
	domain.ErrThreadNotFound:            "Thread tidak ditemukan",
	domain.ErrCommentNotFound:           "Komentar tidak ditemukan",
	domain.ErrReplyNotFound:             "Balasan tidak ditemukan",
	domain.ErrLikeNotFound:              "Gagal menghapus like. Id tidak ditemukan",
	domain.ErrNotResourceOwner:          "Anda tidak berhak mengakses resource ini",
	domain.ErrBadParamInput:             "payload tidak valid",
	domain.ErrUnauthorized:              "Missing authentication",
}

// translate returns the message of the first error in err's chain that has one.
func translate(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg, ok := messages[e]; ok {
			return msg
		}
	}
	return err.Error()
}

// getStatusCode will get the code of the error returned by the use cases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotContainNeededProperty),
		errors.Is(err, domain.ErrNotMeetDataTypeSpecification),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes the fail or error envelope for err.
func abortWithError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code >= http.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.AbortWithStatusJSON(code, response.ServerError())
		return
	}

	logrus.Debugf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.AbortWithStatusJSON(code, response.Fail(translate(err)))
}

// userID returns the id the auth middleware put into the context.
func userID(c *gin.Context) (string, bool) {
	id := c.GetString("user_id")
	return id, id != ""
}
