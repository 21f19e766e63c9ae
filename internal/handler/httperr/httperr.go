package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the wire shape of every error. Clients key off message only;
// Status stays server-side for the error middleware.
type Response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
	Detail  any    `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status, Message: msg, Detail: detail}

	if err != nil {
		_ = c.Error(gin.Error{
			Err:  err,
			Type: gin.ErrorTypePublic,
			Meta: resp,
		})
	}
	c.AbortWithStatusJSON(status, resp)
}
