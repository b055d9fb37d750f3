package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/ougirez/regstat/internal/api/controller"
	"github.com/ougirez/regstat/internal/pkg/store"
	"github.com/ougirez/regstat/internal/service/registrations"
)

type Options struct {
	CORSOrigins    []string
	RequestTimeout time.Duration
	Debug          bool
}

type APIService struct {
	router               *echo.Echo
	registrationsService *registrations.Service
}

// Serve блокируется до остановки сервера; штатный Shutdown не считается ошибкой.
func (svc *APIService) Serve(addr string) error {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

func NewAPIService(store store.Store, opts Options) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.HidePort = true
	svc.router.Debug = opts.Debug
	if opts.Debug {
		svc.router.Logger.SetLevel(log.DEBUG)
	} else {
		svc.router.Logger.SetLevel(log.WARN)
	}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler

	svc.router.Use(middleware.Recover())
	svc.router.Use(requestIDMiddleware())
	svc.router.Use(requestLoggerMiddleware())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.CORSOrigins,
		AllowMethods: []string{echo.GET, echo.POST},
		AllowHeaders: []string{echo.HeaderContentType},
	}))
	if opts.RequestTimeout > 0 {
		svc.router.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
			Timeout: opts.RequestTimeout,
		}))
	}

	svc.registrationsService = registrations.NewService(store)
	cntrl := controller.NewController(svc.registrationsService)

	svc.router.GET("/healthz", cntrl.Health)

	svc.router.POST("/all_categories_all_manufacturers", cntrl.AllCategoriesAllManufacturers)
	svc.router.POST("/all_categories_specific_manufacturer", cntrl.AllCategoriesSpecificManufacturer)
	svc.router.POST("/specific_category_all_manufacturers", cntrl.SpecificCategoryAllManufacturers)
	svc.router.POST("/specific_category_specific_manufacturer", cntrl.SpecificCategorySpecificManufacturer)

	api := svc.router.Group("/api/v1")
	api.GET("/categories", cntrl.GetCategories)
	api.GET("/manufacturers", cntrl.GetManufacturers)

	return svc, nil
}
