package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Routes groups every handler served under /api.
type Routes struct {
	States    *DefaultStateRoute
	Cities    *DefaultCityRoute
	Producers *DefaultProducerRoute
	Crops     *DefaultCropRoute
	Seasons   *DefaultSeasonRoute
	Farms     *DefaultFarmRoute
	Plantings *DefaultPlantingRoute
}

func (r *Routes) Register(e *echo.Echo) {
	api := e.Group("/api")

	// States
	api.GET("/states", r.States.GetStates)
	api.GET("/states/:id", r.States.GetState)
	api.POST("/states", r.States.CreateState)
	api.PATCH("/states/:id", r.States.UpdateState)
	api.DELETE("/states/:id", r.States.DeleteState)

	// Cities
	api.GET("/cities", r.Cities.GetCities)
	api.GET("/cities/:id", r.Cities.GetCity)
	api.POST("/cities", r.Cities.CreateCity)
	api.PATCH("/cities/:id", r.Cities.UpdateCity)
	api.DELETE("/cities/:id", r.Cities.DeleteCity)

	// Producers
	api.GET("/producers", r.Producers.GetProducers)
	api.GET("/producers/lookup", r.Producers.LookupProducer)
	api.GET("/producers/:id", r.Producers.GetProducer)
	api.GET("/producers/:id/farms", r.Farms.GetProducerFarms)
	api.POST("/producers", r.Producers.CreateProducer)
	api.PATCH("/producers/:id", r.Producers.UpdateProducer)
	api.DELETE("/producers/:id", r.Producers.DeleteProducer)

	// Crops
	api.GET("/crops", r.Crops.GetCrops)
	api.GET("/crops/:id", r.Crops.GetCrop)
	api.POST("/crops", r.Crops.CreateCrop)
	api.PATCH("/crops/:id", r.Crops.UpdateCrop)
	api.DELETE("/crops/:id", r.Crops.DeleteCrop)

	// Seasons
	api.GET("/seasons", r.Seasons.GetSeasons)
	api.GET("/seasons/:id", r.Seasons.GetSeason)
	api.POST("/seasons", r.Seasons.CreateSeason)
	api.PATCH("/seasons/:id", r.Seasons.UpdateSeason)
	api.DELETE("/seasons/:id", r.Seasons.DeleteSeason)

	// Farms
	api.GET("/farms", r.Farms.GetFarms)
	api.GET("/farms/:id", r.Farms.GetFarm)
	api.GET("/farms/:id/plantings", r.Plantings.GetFarmPlantings)
	api.POST("/farms", r.Farms.CreateFarm)
	api.PATCH("/farms/:id", r.Farms.UpdateFarm)
	api.DELETE("/farms/:id", r.Farms.DeleteFarm)

	// Plantings
	api.GET("/plantings", r.Plantings.GetPlantings)
	api.GET("/plantings/:id", r.Plantings.GetPlanting)
	api.POST("/plantings", r.Plantings.CreatePlanting)
	api.PATCH("/plantings/:id", r.Plantings.UpdatePlanting)
	api.DELETE("/plantings/:id", r.Plantings.DeletePlanting)

	// Docker Compose healthcheck
	e.GET("/health", HealthCheck)
}

func HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
