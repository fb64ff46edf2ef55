package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fadedpez/blackjacksim/pkg/entities"
	"github.com/fadedpez/blackjacksim/pkg/repositories/values"
)

var _ values.Repository = (*Repository)(nil)

// Repository is a mock implementation of values.Repository
type Repository struct {
	mock.Mock
}

func New() *Repository {
	return &Repository{}
}

func (r *Repository) SaveTable(ctx context.Context, name string, entries []*entities.ValueEntry) error {
	args := r.Called(ctx, name, entries)
	return args.Error(0)
}

func (r *Repository) GetTable(ctx context.Context, name string) ([]*entities.ValueEntry, error) {
	args := r.Called(ctx, name)
	if entries, ok := args.Get(0).([]*entities.ValueEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

func (r *Repository) ListTables(ctx context.Context) ([]string, error) {
	args := r.Called(ctx)
	if names, ok := args.Get(0).([]string); ok {
		return names, args.Error(1)
	}
	return nil, args.Error(1)
}

func (r *Repository) Close() error {
	args := r.Called()
	return args.Error(0)
}
