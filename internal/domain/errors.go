package domain

import "fmt"

type Dimension string

const (
	DimensionCategory     Dimension = "Category"
	DimensionManufacturer Dimension = "Manufacturer"
)

// DimensionNotFoundError: ожидаемый исход (опечатка пользователя), а не сбой.
type DimensionNotFoundError struct {
	Dimension Dimension
	Value     string
}

func (e *DimensionNotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Dimension, e.Value)
}

type ErrorResponse struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}
