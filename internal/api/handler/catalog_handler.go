package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// Query parameter carrying the resource id, per endpoint.
const (
	ParamFilmID     = "film_id"
	ParamPeopleID   = "people_id"
	ParamLocationID = "location_id"
	ParamSpeciesID  = "species_id"
	ParamVehiclesID = "vehicles_id"
)

type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// catalogQuery reads ?limit and the resource id parameter.
func catalogQuery(c echo.Context, idParam string) (ports.CatalogQuery, error) {
	q := ports.CatalogQuery{ID: c.QueryParam(idParam)}
	if err := echo.QueryParamsBinder(c).Int("limit", &q.Limit).BindError(); err != nil {
		return q, fmt.Errorf("%w: limit must be an integer", domain.ErrValidation)
	}
	return q, nil
}

// Films lists films, or returns the one selected by film_id.
//
// @Summary      Studio Ghibli films
// @Tags         ghibli
// @Produce      json
// @Security     BearerAuth
// @Param        limit    query     int     false  "Maximum number of films (default 50)"
// @Param        film_id  query     string  false  "Film id"
// @Success      200  {array}   domain.Film
// @Failure      401  {object}  ErrorResponse
// @Failure      403  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /ghibli/films [get]
func (h *CatalogHandler) Films(c echo.Context) error {
	q, err := catalogQuery(c, ParamFilmID)
	if err != nil {
		return err
	}
	films, err := h.catalog.Films(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, films)
}

// People lists characters, or returns the one selected by people_id.
//
// @Summary      Studio Ghibli people
// @Tags         ghibli
// @Produce      json
// @Security     BearerAuth
// @Param        limit      query     int     false  "Maximum number of people (default 50)"
// @Param        people_id  query     string  false  "Person id"
// @Success      200  {array}   domain.Person
// @Router       /ghibli/people [get]
func (h *CatalogHandler) People(c echo.Context) error {
	q, err := catalogQuery(c, ParamPeopleID)
	if err != nil {
		return err
	}
	people, err := h.catalog.People(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, people)
}

// Locations lists locations, or returns the one selected by location_id.
//
// @Summary      Studio Ghibli locations
// @Tags         ghibli
// @Produce      json
// @Security     BearerAuth
// @Param        limit        query     int     false  "Maximum number of locations (default 50)"
// @Param        location_id  query     string  false  "Location id"
// @Success      200  {array}   domain.Location
// @Router       /ghibli/locations [get]
func (h *CatalogHandler) Locations(c echo.Context) error {
	q, err := catalogQuery(c, ParamLocationID)
	if err != nil {
		return err
	}
	locations, err := h.catalog.Locations(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locations)
}

// Species lists species, or returns the one selected by species_id.
//
// @Summary      Studio Ghibli species
// @Tags         ghibli
// @Produce      json
// @Security     BearerAuth
// @Param        limit       query     int     false  "Maximum number of species (default 50)"
// @Param        species_id  query     string  false  "Species id"
// @Success      200  {array}   domain.Species
// @Router       /ghibli/species [get]
func (h *CatalogHandler) Species(c echo.Context) error {
	q, err := catalogQuery(c, ParamSpeciesID)
	if err != nil {
		return err
	}
	species, err := h.catalog.Species(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, species)
}

// Vehicles lists vehicles, or returns the one selected by vehicles_id.
//
// @Summary      Studio Ghibli vehicles
// @Tags         ghibli
// @Produce      json
// @Security     BearerAuth
// @Param        limit        query     int     false  "Maximum number of vehicles (default 50)"
// @Param        vehicles_id  query     string  false  "Vehicle id"
// @Success      200  {array}   domain.Vehicle
// @Router       /ghibli/vehicles [get]
func (h *CatalogHandler) Vehicles(c echo.Context) error {
	q, err := catalogQuery(c, ParamVehiclesID)
	if err != nil {
		return err
	}
	vehicles, err := h.catalog.Vehicles(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, vehicles)
}
