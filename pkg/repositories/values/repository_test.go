package values

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/fadedpez/blackjacksim/internal/logging"
	"github.com/fadedpez/blackjacksim/internal/types"
	"github.com/fadedpez/blackjacksim/pkg/entities"
)

// RepositoryTestSuite runs the same behaviour checks against every backend
type RepositoryTestSuite struct {
	suite.Suite
	open func(t *testing.T) Repository
	repo Repository
	ctx  context.Context
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func(t *testing.T) Repository {
		return NewMemoryRepository()
	}})
}

func TestFileRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func(t *testing.T) Repository {
		repo, err := NewFileRepository(filepath.Join(t.TempDir(), "tables"))
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func TestSQLiteRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{open: func(t *testing.T) Repository {
		repo, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "values.db"), logging.Discard())
		if err != nil {
			t.Fatal(err)
		}
		return repo
	}})
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.open(s.T())
}

func (s *RepositoryTestSuite) TearDownTest() {
	s.NoError(s.repo.Close())
}

func entries() []*entities.ValueEntry {
	return []*entities.ValueEntry{
		{Total: 12, Dealer: 4, UsableAce: false, Action: "hit", Value: -0.25},
		{Total: 12, Dealer: 4, UsableAce: false, Action: "stand", Value: 0.1},
		{Total: 18, Dealer: 11, UsableAce: true, Action: "stand", Value: 0.5},
	}
}

func (s *RepositoryTestSuite) TestMissingTable() {
	table, err := s.repo.GetTable(s.ctx, "qlearning")
	s.NoError(err)
	s.Nil(table)
}

func (s *RepositoryTestSuite) TestSaveAndGet() {
	s.Require().NoError(s.repo.SaveTable(s.ctx, "qlearning", entries()))

	table, err := s.repo.GetTable(s.ctx, "qlearning")
	s.Require().NoError(err)
	s.ElementsMatch(entries(), table)
}

func (s *RepositoryTestSuite) TestSaveReplacesTable() {
	s.Require().NoError(s.repo.SaveTable(s.ctx, "qlearning", entries()))

	replacement := []*entities.ValueEntry{{Total: 20, Dealer: 10, Action: "stand", Value: 0.9}}
	s.Require().NoError(s.repo.SaveTable(s.ctx, "qlearning", replacement))

	table, err := s.repo.GetTable(s.ctx, "qlearning")
	s.Require().NoError(err)
	s.Equal(replacement, table)
}

func (s *RepositoryTestSuite) TestEmptyTableExists() {
	s.Require().NoError(s.repo.SaveTable(s.ctx, "fresh", nil))

	table, err := s.repo.GetTable(s.ctx, "fresh")
	s.Require().NoError(err)
	s.NotNil(table)
	s.Empty(table)
}

func (s *RepositoryTestSuite) TestListTables() {
	s.Require().NoError(s.repo.SaveTable(s.ctx, "b-table", entries()))
	s.Require().NoError(s.repo.SaveTable(s.ctx, "a_table", entries()))

	names, err := s.repo.ListTables(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"a_table", "b-table"}, names)
}

func (s *RepositoryTestSuite) TestInvalidNames() {
	for _, name := range []string{"", "../escape", "with space", "-leading"} {
		s.ErrorIs(s.repo.SaveTable(s.ctx, name, entries()), ErrInvalidTableName, name)
		_, err := s.repo.GetTable(s.ctx, name)
		s.ErrorIs(err, ErrInvalidTableName, name)
	}
}

func (s *RepositoryTestSuite) TestStoredEntriesAreCopies() {
	saved := entries()
	s.Require().NoError(s.repo.SaveTable(s.ctx, "qlearning", saved))
	saved[0].Value = 100

	table, err := s.repo.GetTable(s.ctx, "qlearning")
	s.Require().NoError(err)
	for _, entry := range table {
		s.NotEqual(100.0, entry.Value)
	}
}

func TestSQLiteCheckpointChangesOnSave(t *testing.T) {
	ctx := context.Background()
	repo, err := NewSQLiteRepository(ctx, ":memory:", logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()

	id, err := repo.CheckpointID(ctx, "qlearning")
	if err != nil || id != "" {
		t.Fatalf("expected no checkpoint, got %q (%v)", id, err)
	}

	if err := repo.SaveTable(ctx, "qlearning", entries()); err != nil {
		t.Fatal(err)
	}
	first, _ := repo.CheckpointID(ctx, "qlearning")

	if err := repo.SaveTable(ctx, "qlearning", entries()); err != nil {
		t.Fatal(err)
	}
	second, _ := repo.CheckpointID(ctx, "qlearning")

	if first == "" || first == second {
		t.Errorf("checkpoint ids should be set and change on save: %q %q", first, second)
	}
}

func TestNewSelectsBackend(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	repo, err := New(ctx, StoreMemory, dir, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.(*MemoryRepository); !ok {
		t.Errorf("expected memory repository, got %T", repo)
	}

	repo, err = New(ctx, StoreFile, dir, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := repo.(*FileRepository); !ok {
		t.Errorf("expected file repository, got %T", repo)
	}

	repo, err = New(ctx, StoreSQLite, dir, logging.Discard())
	if err != nil {
		t.Fatal(err)
	}
	defer repo.Close()
	if _, ok := repo.(*SQLiteRepository); !ok {
		t.Errorf("expected sqlite repository, got %T", repo)
	}

	_, err = New(ctx, "redis", dir, logging.Discard())
	if !types.IsGameError(err, types.ErrInvalidArgument) {
		t.Errorf("expected invalid argument, got %v", err)
	}
}
