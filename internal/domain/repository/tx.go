package repository

import "context"

// TxRepos repositorios ligados a una misma transacción. El despacho de
// entregas y los ajustes de stock los usan para que entrega, descuento de
// existencias, movimiento y transición de estado confirmen juntos.
type TxRepos struct {
	Items         ItemRepository
	Requests      RequestRepository
	Distributions DistributionRepository
	Movements     StockMovementRepository
}

// TxRunner ejecuta fn dentro de una transacción. Si fn devuelve error la
// transacción se revierte completa.
type TxRunner interface {
	WithinTransaction(ctx context.Context, fn func(TxRepos) error) error
}
