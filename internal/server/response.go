package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the error envelope. Successful calls return the result
// document itself.
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

const (
	CodeInvalidParam = 10001
	CodeScoreError   = 10002
	CodeServerError  = 10005
)

func NewResponse(code int, message string, data interface{}) *Response {
	return &Response{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

// BadRequest reports a body that could not be decoded.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, NewResponse(CodeInvalidParam, err.Error(), nil))
}

// Unprocessable reports input that decoded but could not be scored.
func Unprocessable(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, NewResponse(CodeScoreError, err.Error(), nil))
}
