package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/domain/dto"
)

func (c *Controller) GetCategories(ctx echo.Context) error {
	categories, err := c.service.ListCategories(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.DataResponse[*domain.VehicleCategory]{Data: categories})
}

func (c *Controller) GetManufacturers(ctx echo.Context) error {
	manufacturers, err := c.service.ListManufacturers(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, dto.DataResponse[*domain.Manufacturer]{Data: manufacturers})
}

func (c *Controller) Health(ctx echo.Context) error {
	if err := c.service.Ping(ctx.Request().Context()); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
