package api

import (
	"context"
	"net/http"

	"github.com/volunteerbridge/matching-client/internal/core/domain"
)

// Catalog lookups. Categories and companies are flat read-only tables that
// change rarely, so results sit in a TTL cache; a 401 still invalidates the
// session on the fetch path as usual.

func (c *Client) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	if cached, ok := c.catalogs.Get(cacheKeyCategories); ok {
		return cached.([]domain.ServiceCategory), nil
	}

	var categories []domain.ServiceCategory
	if err := c.t.Do(ctx, http.MethodGet, "/api/v1/admin/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	for i := range categories {
		if err := checkWire("category", &categories[i]); err != nil {
			return nil, err
		}
	}
	c.catalogs.SetDefault(cacheKeyCategories, categories)
	return categories, nil
}

func (c *Client) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	if cached, ok := c.catalogs.Get(cacheKeyCompanies); ok {
		return cached.([]domain.Company), nil
	}

	var companies []domain.Company
	if err := c.t.Do(ctx, http.MethodGet, "/api/v1/admin/companies", nil, nil, &companies); err != nil {
		return nil, err
	}
	for i := range companies {
		if err := checkWire("company", &companies[i]); err != nil {
			return nil, err
		}
	}
	c.catalogs.SetDefault(cacheKeyCompanies, companies)
	return companies, nil
}

// InvalidateCatalogs drops the cached lookup tables, forcing the next
// ListCategories/ListCompanies to hit the server.
func (c *Client) InvalidateCatalogs() {
	c.catalogs.Flush()
}
