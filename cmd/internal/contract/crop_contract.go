package contract

type CropRequest struct {
	Name string `json:"name" validate:"required,notblank,max=100"`
}

type UpdateCropRequest struct {
	Name *string `json:"name" validate:"omitnil,notblank,max=100"`
}

type CropResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SeasonRequest year is a free label, such as "2023" or "2022/2023".
type SeasonRequest struct {
	Year string `json:"year" validate:"required,notblank,max=20"`
}

type UpdateSeasonRequest struct {
	Year *string `json:"year" validate:"omitnil,notblank,max=20"`
}

type SeasonResponse struct {
	ID   int64  `json:"id"`
	Year string `json:"year"`
}

type PlantingRequest struct {
	FarmID   int64 `json:"farm_id" validate:"required,gt=0"`
	SeasonID int64 `json:"season_id" validate:"required,gt=0"`
	CropID   int64 `json:"crop_id" validate:"required,gt=0"`
}

type UpdatePlantingRequest struct {
	FarmID   *int64 `json:"farm_id" validate:"omitnil,gt=0"`
	SeasonID *int64 `json:"season_id" validate:"omitnil,gt=0"`
	CropID   *int64 `json:"crop_id" validate:"omitnil,gt=0"`
}

type PlantingResponse struct {
	ID       int64           `json:"id"`
	FarmID   int64           `json:"farm_id"`
	SeasonID int64           `json:"season_id"`
	CropID   int64           `json:"crop_id"`
	Farm     *FarmResponse   `json:"farm,omitempty"`
	Season   *SeasonResponse `json:"season,omitempty"`
	Crop     *CropResponse   `json:"crop,omitempty"`
}
