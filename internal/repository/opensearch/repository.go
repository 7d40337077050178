package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/digital-menu-api/internal/config"
	"github.com/kingrain94/digital-menu-api/internal/domain"
	"github.com/kingrain94/digital-menu-api/internal/repository"
)

const defaultSearchLimit = 20

type productRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

// NewRepository returns the product search index. Every tenant owns one index
// so a query can never read another tenant's documents.
func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.SearchRepository {
	return &productRepository{
		client: client,
		config: config,
	}
}

func (r *productRepository) IndexProduct(ctx context.Context, product *domain.Product) error {
	if product.TenantID == "" {
		return fmt.Errorf("tenant_id is required")
	}
	if err := r.createIndex(ctx, product.TenantID); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(product)
	if err != nil {
		return fmt.Errorf("failed to marshal product: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.GetIndexName(product.TenantID),
		DocumentID: product.ID,
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *productRepository) SearchProducts(ctx context.Context, tenantID, query string, limit int) ([]domain.Product, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("tenant_id is required")
	}
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	queryJSON, err := json.Marshal(buildSearchQuery(tenantID, query, limit))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []domain.Product{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.Product `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	products := make([]domain.Product, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		products = append(products, hit.Source)
	}

	return products, nil
}

func (r *productRepository) DeleteTenantIndex(ctx context.Context, tenantID string) error {
	req := opensearchapi.IndicesDeleteRequest{
		Index: []string{r.config.GetIndexName(tenantID)},
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("error deleting index: %s", res.String())
	}

	return nil
}

// buildSearchQuery matches name and description, keeps only active products
// and repeats the tenant filter inside the tenant's own index.
func buildSearchQuery(tenantID, query string, limit int) map[string]any {
	must := []map[string]any{}
	if q := strings.TrimSpace(query); q != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"name^3", "description"},
				"fuzziness": "AUTO",
			},
		})
	} else {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	return map[string]any{
		"size": limit,
		"query": map[string]any{
			"bool": map[string]any{
				"must": must,
				"filter": []map[string]any{
					createTermQuery("tenant_id", tenantID),
					createTermQuery("active", true),
				},
			},
		},
		"sort": []any{
			"_score",
			map[string]any{"order": map[string]any{"order": "asc"}},
		},
	}
}

func createTermQuery(field string, value any) map[string]any {
	return map[string]any{
		"term": map[string]any{
			field: value,
		},
	}
}

// getIndexMapping returns the product document mapping
func (r *productRepository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "keyword" },
				"tenant_id": { "type": "keyword" },
				"category_id": { "type": "keyword" },
				"name": { "type": "text" },
				"description": { "type": "text" },
				"image": { "type": "keyword", "index": false },
				"base_price": { "type": "keyword" },
				"order": { "type": "integer" },
				"active": { "type": "boolean" },
				"created_at": { "type": "date" },
				"updated_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *productRepository) createIndex(ctx context.Context, tenantID string) error {
	indexName := r.config.GetIndexName(tenantID)

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
