package analytics

import (
	"slices"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
)

// TopSellerLimit is how many products the dashboard ranks.
const TopSellerLimit = 10

// ProductSales is the units sold of one product
type ProductSales struct {
	ProductID  primitive.ObjectID
	SalesCount int
}

// RankProductSales sums line item quantities per product across orders and returns
// at most limit entries, highest sales first, ties by product id ascending.
func RankProductSales(orders []models.Order, limit int) []ProductSales {
	totals := make(map[primitive.ObjectID]int)
	for _, o := range orders {
		for _, item := range o.Items {
			if item.ProductID.IsZero() {
				continue
			}
			totals[item.ProductID] += item.Quantity
		}
	}

	ranked := make([]ProductSales, 0, len(totals))
	for id, count := range totals {
		ranked = append(ranked, ProductSales{ProductID: id, SalesCount: count})
	}
	sortBySales(ranked, func(r ProductSales) (primitive.ObjectID, int) {
		return r.ProductID, r.SalesCount
	})

	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ProductIDs lists the ids of a ranking in order.
func ProductIDs(ranked []ProductSales) []primitive.ObjectID {
	ids := make([]primitive.ObjectID, len(ranked))
	for i, r := range ranked {
		ids[i] = r.ProductID
	}
	return ids
}

// JoinTopSellers attaches sales counts to the fetched products. Products missing
// from the catalogue are dropped; the lookup order is not trusted, so the result is re-sorted.
func JoinTopSellers(ranked []ProductSales, products []models.Product) []models.TopSellingProduct {
	counts := make(map[primitive.ObjectID]int, len(ranked))
	for _, r := range ranked {
		counts[r.ProductID] = r.SalesCount
	}

	joined := make([]models.TopSellingProduct, 0, len(products))
	seen := make(map[primitive.ObjectID]bool, len(products))
	for _, p := range products {
		count, ok := counts[p.ID]
		if !ok || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		joined = append(joined, models.TopSellingProduct{Product: p, SalesCount: count})
	}
	sortBySales(joined, func(t models.TopSellingProduct) (primitive.ObjectID, int) {
		return t.Product.ID, t.SalesCount
	})
	return joined
}

func sortBySales[T any](items []T, key func(T) (primitive.ObjectID, int)) {
	slices.SortStableFunc(items, func(a, b T) int {
		idA, countA := key(a)
		idB, countB := key(b)
		if countA != countB {
			return countB - countA
		}
		return strings.Compare(idA.Hex(), idB.Hex())
	})
}
