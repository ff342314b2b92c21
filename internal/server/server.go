package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Start はデプロイ先のliveness probe用のHTTPを立てる。
func Start(addr string) error {
	e := echo.New()
	e.HideBanner = true

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	return e.Start(addr)
}
