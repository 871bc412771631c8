package climate

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Document mirrors the wire shape. Pointer fields let a missing
// key be told apart from a zero value.
type Document struct {
	BaseTemperature *float64      `json:"baseTemperature" validate:"required"`
	MonthlyVariance []Observation `json:"monthlyVariance" validate:"required,dive"`
}

// Dataset validates the document and converts it.
func (doc Document) Dataset() (*Dataset, error) {
	if err := validate.Struct(doc); err != nil {
		return nil, err
	}
	return &Dataset{
		BaseTemperature: *doc.BaseTemperature,
		MonthlyVariance: doc.MonthlyVariance,
	}, nil
}
