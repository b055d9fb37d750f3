package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/domain/dto"
	"github.com/ougirez/regstat/internal/service/registrations"
)

func (c *Controller) AllCategoriesAllManufacturers(ctx echo.Context) error {
	return c.report(ctx, registrations.AllCategoriesAllManufacturers)
}

func (c *Controller) AllCategoriesSpecificManufacturer(ctx echo.Context) error {
	return c.report(ctx, registrations.AllCategoriesSpecificManufacturer)
}

func (c *Controller) SpecificCategoryAllManufacturers(ctx echo.Context) error {
	return c.report(ctx, registrations.SpecificCategoryAllManufacturers)
}

func (c *Controller) SpecificCategorySpecificManufacturer(ctx echo.Context) error {
	return c.report(ctx, registrations.SpecificCategorySpecificManufacturer)
}

func (c *Controller) report(ctx echo.Context, variant registrations.Variant) error {
	var req dto.QueryRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	series, err := c.service.Report(ctx.Request().Context(), variant, &req)

	// неизвестное измерение отдаётся как 200 с полем error
	var notFound *domain.DimensionNotFoundError
	if errors.As(err, &notFound) {
		return ctx.JSON(http.StatusOK, dto.NotFoundResponse{Error: notFound.Error()})
	}
	if err != nil {
		return err
	}

	if variant == registrations.AllCategoriesAllManufacturers {
		return ctx.JSON(http.StatusOK, dto.ToTotalRegistrations(series))
	}

	return ctx.JSON(http.StatusOK, dto.ToRegistrationCounts(series))
}
