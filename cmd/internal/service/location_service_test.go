package service

import (
	"net/http"
	"testing"

	"brainagro/cmd/internal/contract"

	"github.com/stretchr/testify/suite"
)

type LocationServiceSuite struct {
	registrySuite
}

func TestLocationServiceSuite(t *testing.T) {
	suite.Run(t, new(LocationServiceSuite))
}

func (s *LocationServiceSuite) TestCreateStateNormalisesAbbreviation() {
	state, apierr := s.states.CreateState(s.ctx, &contract.StateRequest{Name: " São Paulo ", Abbreviation: "sp"})
	s.requireOK(apierr)

	s.Positive(state.ID)
	s.Equal("São Paulo", state.Name)
	s.Equal("SP", state.Abbreviation)
}

func (s *LocationServiceSuite) TestCreateStateValidation() {
	_, apierr := s.states.CreateState(s.ctx, &contract.StateRequest{Name: "   ", Abbreviation: "SPX"})

	s.requireFieldError(apierr, http.StatusBadRequest, "name")
	s.requireFieldError(apierr, http.StatusBadRequest, "abbreviation")
	s.Zero(s.countRows("states"))
}

func (s *LocationServiceSuite) TestCreateStateConflicts() {
	_, apierr := s.states.CreateState(s.ctx, &contract.StateRequest{Name: "Bahia", Abbreviation: "BA"})
	s.requireOK(apierr)

	_, apierr = s.states.CreateState(s.ctx, &contract.StateRequest{Name: "Bahia", Abbreviation: "BH"})
	s.requireMessage(apierr, http.StatusBadRequest, "A state with this name already exists")

	_, apierr = s.states.CreateState(s.ctx, &contract.StateRequest{Name: "Other", Abbreviation: "ba"})
	s.requireMessage(apierr, http.StatusBadRequest, "A state with this abbreviation already exists")
}

func (s *LocationServiceSuite) TestUpdateStateKeepsOwnKeys() {
	state, apierr := s.states.CreateState(s.ctx, &contract.StateRequest{Name: "Pará", Abbreviation: "PA"})
	s.requireOK(apierr)

	// Re-sending its own natural key is not a conflict
	updated, apierr := s.states.UpdateState(s.ctx, state.ID, &contract.UpdateStateRequest{Name: ptr("Pará"), Abbreviation: ptr("pa")})
	s.requireOK(apierr)
	s.Equal("PA", updated.Abbreviation)
}

func (s *LocationServiceSuite) TestDeleteStateReferencedByCity() {
	state, apierr := s.states.CreateState(s.ctx, &contract.StateRequest{Name: "Paraná", Abbreviation: "PR"})
	s.requireOK(apierr)

	city, apierr := s.cities.CreateCity(s.ctx, &contract.CityRequest{Name: "Londrina", StateID: state.ID})
	s.requireOK(apierr)

	apierr = s.states.DeleteState(s.ctx, state.ID)
	s.requireMessage(apierr, http.StatusConflict, "State is still referenced by at least one city")

	_, apierr = s.states.GetStateByID(s.ctx, state.ID)
	s.requireOK(apierr)

	// Once the city is gone the state can go too
	s.requireOK(s.cities.DeleteCity(s.ctx, city.ID))
	s.requireOK(s.states.DeleteState(s.ctx, state.ID))

	_, apierr = s.states.GetStateByID(s.ctx, state.ID)
	s.requireMessage(apierr, http.StatusNotFound, "State with ID "+itoa(state.ID)+" not found")
}

func (s *LocationServiceSuite) TestCityReferences() {
	_, apierr := s.cities.CreateCity(s.ctx, &contract.CityRequest{Name: "Ghost", StateID: 99})
	msgs := s.requireFieldError(apierr, http.StatusUnprocessableEntity, "state_id")
	s.Equal([]string{"Related state not found"}, msgs)
	s.Zero(s.countRows("cities"))

	state, apierr := s.states.CreateState(s.ctx, &contract.StateRequest{Name: "Goiás", Abbreviation: "GO"})
	s.requireOK(apierr)

	city, apierr := s.cities.CreateCity(s.ctx, &contract.CityRequest{Name: "Rio Verde", StateID: state.ID})
	s.requireOK(apierr)
	s.Require().NotNil(city.State)
	s.Equal("GO", city.State.Abbreviation)

	_, apierr = s.cities.UpdateCity(s.ctx, city.ID, &contract.UpdateCityRequest{StateID: ptr(int64(12345))})
	s.requireFieldError(apierr, http.StatusUnprocessableEntity, "state_id")

	cities, apierr := s.cities.GetAllCities(s.ctx)
	s.requireOK(apierr)
	s.Len(cities, 1)
}

func (s *LocationServiceSuite) TestNotFound() {
	_, apierr := s.cities.UpdateCity(s.ctx, 77, &contract.UpdateCityRequest{Name: ptr("x")})
	s.requireMessage(apierr, http.StatusNotFound, "City with ID 77 not found")

	apierr = s.states.DeleteState(s.ctx, 77)
	s.requireMessage(apierr, http.StatusNotFound, "State with ID 77 not found")
}
