package render

import (
	"github.com/labstack/echo/v4"
)

// Renderer is the boundary to the view layer. Handlers hand over a page name
// and plain data; what happens to it (HTML templates, JSON, anything) is not
// this backend's concern.
type Renderer interface {
	Render(c echo.Context, status int, page string, data map[string]interface{}) error
}

// JSONRenderer is the default implementation so the binary runs and the
// handlers are testable without a template pipeline.
type JSONRenderer struct{}

func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

func (r *JSONRenderer) Render(c echo.Context, status int, page string, data map[string]interface{}) error {
	payload := map[string]interface{}{"page": page}
	for key, value := range data {
		payload[key] = value
	}
	return c.JSON(status, payload)
}
