package controller

import (
	"github.com/ougirez/regstat/internal/service/registrations"
)

type Controller struct {
	service *registrations.Service
}

func NewController(service *registrations.Service) *Controller {
	return &Controller{service: service}
}
