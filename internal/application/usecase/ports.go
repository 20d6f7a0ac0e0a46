package usecase

import (
	"context"

	"github.com/perfumanager/pos-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, con los repos atados a ella.
// Lo implementa infrastructure/postgres.TxRunner.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		lots repository.LotRepository,
		sales repository.SaleRepository,
	) error) error
}
