package currency

import (
	"github.com/amirasaad/fxquery/pkg/service/converter"
)

// ConversionQuery is the query string of GET /api/conversions.
type ConversionQuery struct {
	Q         string `query:"q" validate:"required,max=128"`
	Favorites string `query:"favorites" validate:"omitempty,max=128"`
}

// ConversionResponse is the data of a conversion response.
type ConversionResponse struct {
	Query   string             `json:"query"`
	Results []converter.Result `json:"results"`
}
