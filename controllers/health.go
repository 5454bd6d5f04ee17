package controllers

import (
	"net/http"

	"styleapi/models"

	"github.com/labstack/echo/v4"
)

type HealthController struct{}

func (controller *HealthController) HealthRoutes(e *echo.Echo) {
	e.GET("/", controller.Root)
	e.GET("/health", controller.Health)
}

func (controller *HealthController) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, models.StatusOut{Status: "healthy", Message: "AI Virtual Try-On API is running!"})
}

func (controller *HealthController) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, models.StatusOut{Status: "healthy", Message: "Server is running"})
}
