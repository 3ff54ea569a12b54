package ports

import (
	"context"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
)

// ChangesetValidator — проверка change-set от клиента до каких-либо
// обращений к Marketplace API.
type ChangesetValidator interface {
	Validate(ctx context.Context, changeset *domain.StockChangeset) error
}
