package contract

// FarmRequest areas are pointers so an explicit 0 can be told apart from a missing value.
type FarmRequest struct {
	Name           string   `json:"name" validate:"required,notblank,max=100"`
	TotalArea      *float64 `json:"total_area" validate:"required,min=0"`
	CultivableArea *float64 `json:"cultivable_area" validate:"required,min=0"`
	VegetationArea *float64 `json:"vegetation_area" validate:"required,min=0"`
	ProducerID     int64    `json:"producer_id" validate:"required,gt=0"`
	CityID         int64    `json:"city_id" validate:"required,gt=0"`
}

type UpdateFarmRequest struct {
	Name           *string  `json:"name" validate:"omitnil,notblank,max=100"`
	TotalArea      *float64 `json:"total_area" validate:"omitnil,min=0"`
	CultivableArea *float64 `json:"cultivable_area" validate:"omitnil,min=0"`
	VegetationArea *float64 `json:"vegetation_area" validate:"omitnil,min=0"`
	ProducerID     *int64   `json:"producer_id" validate:"omitnil,gt=0"`
	CityID         *int64   `json:"city_id" validate:"omitnil,gt=0"`
}

type FarmResponse struct {
	ID             int64             `json:"id"`
	Name           string            `json:"name"`
	TotalArea      float64           `json:"total_area"`
	CultivableArea float64           `json:"cultivable_area"`
	VegetationArea float64           `json:"vegetation_area"`
	ProducerID     int64             `json:"producer_id"`
	CityID         int64             `json:"city_id"`
	Producer       *ProducerResponse `json:"producer,omitempty"`
	City           *CityResponse     `json:"city,omitempty"`
}
