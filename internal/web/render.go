package web

import (
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// render writes a templ component to the response.
func render(c echo.Context, status int, component templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(status)

	if err := component.Render(c.Request().Context(), c.Response()); err != nil {
		return fmt.Errorf("failed to render component: %w", err)
	}

	return nil
}

func renderOK(c echo.Context, component templ.Component) error {
	return render(c, http.StatusOK, component)
}
