// internal/domain/favorites/entity.go
package favorites

import (
	"time"

	"github.com/your-org/petshop-storefront/internal/domain/catalog"
)

// Item represents a favorited product. Like cart lines it is a snapshot
// taken when the heart was clicked; at most one entry per product id.
type Item struct {
	ProductID string        `json:"product_id"`
	Title     string        `json:"title"`
	Image     string        `json:"image,omitempty"`
	Price     catalog.Cents `json:"price"`
	AddedAt   time.Time     `json:"added_at"`
}
