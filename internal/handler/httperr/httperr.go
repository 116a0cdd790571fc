package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint shares:
// {"error":{"message":"..."},"detail":...}.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func NewResponse(status int, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Message = msg
	return resp
}

// FieldDetail points the client at the offending request field.
func FieldDetail(field string) gin.H {
	return gin.H{"field": field}
}

// AbortWithError writes the envelope and records err on the context so the
// error middleware can log it.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := NewResponse(status, msg, detail)

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
