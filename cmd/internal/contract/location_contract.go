package contract

type StateRequest struct {
	Name         string `json:"name" validate:"required,notblank,max=255"`
	Abbreviation string `json:"abbreviation" validate:"required,len=2,alpha"`
}

type UpdateStateRequest struct {
	Name         *string `json:"name" validate:"omitnil,notblank,max=255"`
	Abbreviation *string `json:"abbreviation" validate:"omitnil,len=2,alpha"`
}

type StateResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type CityRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=100"`
	StateID int64  `json:"state_id" validate:"required,gt=0"`
}

type UpdateCityRequest struct {
	Name    *string `json:"name" validate:"omitnil,notblank,max=100"`
	StateID *int64  `json:"state_id" validate:"omitnil,gt=0"`
}

type CityResponse struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	StateID int64          `json:"state_id"`
	State   *StateResponse `json:"state,omitempty"`
}
