package ports

import (
	"context"
	"encoding/json"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
)

// Catalog endpoint names on the remote API.
const (
	EndpointFilms     = "films"
	EndpointPeople    = "people"
	EndpointLocations = "locations"
	EndpointSpecies   = "species"
	EndpointVehicles  = "vehicles"
)

// DefaultCatalogLimit is used when neither an id nor a limit is given.
const DefaultCatalogLimit = 50

// CatalogQuery selects what to fetch. A non-empty ID wins over Limit.
type CatalogQuery struct {
	Limit int
	ID    string
}

// CatalogSource performs one round trip to the remote catalog and returns
// one raw JSON document per record. A single-object answer comes back as a
// one-element slice.
//
// Errors are *domain.UpstreamStatusError or *domain.UpstreamUnavailableError.
type CatalogSource interface {
	Fetch(ctx context.Context, endpoint string, q CatalogQuery) ([]json.RawMessage, error)
}

type CatalogService interface {
	Films(ctx context.Context, q CatalogQuery) ([]domain.Film, error)
	People(ctx context.Context, q CatalogQuery) ([]domain.Person, error)
	Locations(ctx context.Context, q CatalogQuery) ([]domain.Location, error)
	Species(ctx context.Context, q CatalogQuery) ([]domain.Species, error)
	Vehicles(ctx context.Context, q CatalogQuery) ([]domain.Vehicle, error)
}
