package store

import (
	"context"
	"strings"
	"testing"

	"sme_valuation/pkg/core/valuation"
	"sme_valuation/pkg/models"
)

// Without InitDB every repo operation must fail fast with a clear error
// instead of panicking on a nil pool.
func TestHistoryRepoRequiresPool(t *testing.T) {
	repo := NewHistoryRepo()
	ctx := context.Background()

	p := &models.CompanyProfile{}
	res := &valuation.ValuationResult{}

	if _, err := repo.Save(ctx, "test", p, res); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Save: expected pool-not-initialized error, got %v", err)
	}
	if _, err := repo.List(ctx); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("List: expected pool-not-initialized error, got %v", err)
	}
	if _, err := repo.Get(ctx, "some-id"); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Get: expected pool-not-initialized error, got %v", err)
	}
	if err := repo.Delete(ctx, "some-id"); err == nil || !strings.Contains(err.Error(), "not initialized") {
		t.Errorf("Delete: expected pool-not-initialized error, got %v", err)
	}
}
