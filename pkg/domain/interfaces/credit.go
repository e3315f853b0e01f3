package interfaces

import (
	"context"

	"github.com/agentic-lender/lendermemo/pkg/domain/model/credit"
	"github.com/agentic-lender/lendermemo/pkg/domain/types"
)

// CreditSource provides credit request records. The production source is an
// external data service; the development source is the built-in sample data
// provider.
type CreditSource interface {
	ListRequests(ctx context.Context) ([]credit.Request, error)
	GetDetail(ctx context.Context, id types.RequestID) (*credit.Detail, error)
}
