package usecase

import (
	"context"
	"errors"

	"finboard/internal/domain"
)

// ErrStateNotFound is returned by a StateRepository when nothing has
// been persisted under the storage key yet.
var ErrStateNotFound = errors.New("no persisted state")

// StateRepository persists the aggregate as one document under a fixed
// storage key. The usecase layer depends on this interface, not on a
// concrete store.
//
//go:generate mockgen -destination=mocks/mock_interface.go -source=interface.go
type StateRepository interface {
	Load(ctx context.Context) (domain.FinancialData, error)
	Save(ctx context.Context, data domain.FinancialData) error
}

// InsightService is the external generative-language collaborator.
// Both calls are best-effort network requests; failures come back as
// errors, never as error prose inside the returned text.
type InsightService interface {
	Insight(ctx context.Context, summary string) (string, error)
	Forecast(ctx context.Context, data domain.FinancialData, horizonMonths int) (string, error)
}
