package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with the given payload.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// OKMsg sends 200 with a success acknowledgement.
func OKMsg(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MsgResp{Success: true, Message: message})
}

// BadRequest sends 400 with the error message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrResp{Error: err.Error()})
}

// NotFound sends 404 with the error message.
func NotFound(c *gin.Context, err error) {
	c.JSON(http.StatusNotFound, ErrResp{Error: err.Error()})
}

// InternalError sends 500 with the error message.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, ErrResp{Error: err.Error()})
}

// TooManyRequests sends 429 with the error message.
func TooManyRequests(c *gin.Context, message string) {
	c.JSON(http.StatusTooManyRequests, ErrResp{Error: message})
}
