package shared

import (
	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool           `json:"success"`
	Data    interface{}    `json:"data,omitempty"`
	Error   *ResponseError `json:"error,omitempty"`
}

type ResponseError struct {
	Message string `json:"message"`
}

var jsonAPI = sonic.Config{
	UseNumber:            true,
	EscapeHTML:           false,
	SortMapKeys:          false,
	CompactMarshaler:     true,
	NoQuoteTextMarshaler: true,
	NoNullSliceOrMap:     true,
}.Froze()

// JSONEncoder and JSONDecoder plug sonic into fiber's codec hooks.
func JSONEncoder(v interface{}) ([]byte, error) {
	return jsonAPI.Marshal(v)
}

func JSONDecoder(data []byte, v interface{}) error {
	return jsonAPI.Unmarshal(data, v)
}

func ResponseJSON(c *fiber.Ctx, httpCode int, data interface{}) error {
	return c.Status(httpCode).JSON(Response{Success: true, Data: data})
}

func ResponseErrorJSON(c *fiber.Ctx, httpCode int, message string) error {
	return c.Status(httpCode).JSON(Response{Success: false, Error: &ResponseError{Message: message}})
}
