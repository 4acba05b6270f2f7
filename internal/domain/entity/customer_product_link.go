package entity

// CustomerProductLink asocia un producto al catálogo de un cliente.
// Sin payload; no participa en la matemática del ledger.
type CustomerProductLink struct {
	CustomerID int64
	ProductID  int64
}
