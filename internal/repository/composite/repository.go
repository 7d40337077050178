package composite

import (
	opensearchclient "github.com/opensearch-project/opensearch-go/v2"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/repository"
	"github.com/kingrain94/digital-menu-api/internal/repository/opensearch"
	"github.com/kingrain94/digital-menu-api/internal/repository/postgres"
)

// Repository pairs the relational store with the product search index.
type Repository struct {
	repository.Repository
	search repository.SearchRepository
}

func NewCompositeRepository(dbConnections *config.DatabaseConnections, osClient *opensearchclient.Client, osConfig *config.OpenSearchConfig) *Repository {
	return &Repository{
		Repository: postgres.NewPostgresRepository(dbConnections),
		search:     opensearch.NewRepository(osClient, osConfig),
	}
}

// New composes an arbitrary store with a search index, e.g. the in-memory
// store used with STORAGE_DRIVER=memory.
func New(store repository.Repository, search repository.SearchRepository) *Repository {
	return &Repository{Repository: store, search: search}
}

func (r *Repository) Search() repository.SearchRepository {
	return r.search
}
