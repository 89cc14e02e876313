package planner

import (
	"errors"
	"fmt"

	"github.com/nwretail/replenish_backend/models"
	"github.com/nwretail/replenish_backend/utils"
)

var ErrNilSnapshot = errors.New("input validation failed: snapshot is nil")

// ValidateSnapshot is the fail-fast contract gate before a pipeline run.
// Malformed-but-well-typed business data (missing stock, missing history,
// odd min/max bounds) is tolerated downstream; what fails here are caller
// contract violations: negative quantities or costs and broken product
// identities, which would otherwise produce nonsensical plans silently.
func ValidateSnapshot(snapshot *models.StateSnapshot) error {
	if snapshot == nil {
		return ErrNilSnapshot
	}

	seen := make(map[int]bool, len(snapshot.Products))
	for i := range snapshot.Products {
		product := &snapshot.Products[i]
		if product.ID <= 0 {
			return fmt.Errorf("input validation failed: product %q has non-positive id %d", product.Name, product.ID)
		}
		if seen[product.ID] {
			return fmt.Errorf("input validation failed: duplicate product id %d", product.ID)
		}
		seen[product.ID] = true
		if product.CostPrice.IsNegative() {
			return fmt.Errorf("input validation failed: product %d has negative cost price %s", product.ID, product.CostPrice)
		}
	}

	for productId, level := range snapshot.StockByProduct {
		if err := utils.ValidateStruct(&level); err != nil {
			return fmt.Errorf("stock level for product %d: %w", productId, err)
		}
	}
	for productId, rows := range snapshot.SalesByProduct {
		for i := range rows {
			if err := utils.ValidateStruct(&rows[i]); err != nil {
				return fmt.Errorf("sales history for product %d: %w", productId, err)
			}
		}
	}
	return nil
}
