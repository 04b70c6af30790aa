package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ghiblihub/catalog-api/internal/core/domain"
	"github.com/ghiblihub/catalog-api/internal/core/ports"
)

// CatalogService maps remote catalog documents into typed records.
// It performs exactly one upstream round trip per call: no cache, no retry.
type CatalogService struct {
	source ports.CatalogSource
	log    zerolog.Logger
}

func NewCatalogService(source ports.CatalogSource, log zerolog.Logger) *CatalogService {
	return &CatalogService{source: source, log: log}
}

func (s *CatalogService) Films(ctx context.Context, q ports.CatalogQuery) ([]domain.Film, error) {
	return fetchRecords[domain.Film](ctx, s, ports.EndpointFilms, q)
}

func (s *CatalogService) People(ctx context.Context, q ports.CatalogQuery) ([]domain.Person, error) {
	return fetchRecords[domain.Person](ctx, s, ports.EndpointPeople, q)
}

func (s *CatalogService) Locations(ctx context.Context, q ports.CatalogQuery) ([]domain.Location, error) {
	return fetchRecords[domain.Location](ctx, s, ports.EndpointLocations, q)
}

func (s *CatalogService) Species(ctx context.Context, q ports.CatalogQuery) ([]domain.Species, error) {
	return fetchRecords[domain.Species](ctx, s, ports.EndpointSpecies, q)
}

func (s *CatalogService) Vehicles(ctx context.Context, q ports.CatalogQuery) ([]domain.Vehicle, error) {
	return fetchRecords[domain.Vehicle](ctx, s, ports.EndpointVehicles, q)
}

// fetchRecords fetches endpoint and decodes every returned document into T.
func fetchRecords[T any](ctx context.Context, s *CatalogService, endpoint string, q ports.CatalogQuery) ([]T, error) {
	raw, err := s.source.Fetch(ctx, endpoint, q)
	if err != nil {
		s.log.Warn().Err(err).Str("endpoint", endpoint).Str("id", q.ID).Int("limit", q.Limit).Msg("catalog fetch failed")
		return nil, err
	}

	records := make([]T, 0, len(raw))
	for i, doc := range raw {
		var rec T
		if err := json.Unmarshal(doc, &rec); err != nil {
			return nil, &domain.UpstreamUnavailableError{
				Message: fmt.Sprintf("decode %s[%d]: %v", endpoint, i, err),
			}
		}
		records = append(records, rec)
	}
	return records, nil
}
