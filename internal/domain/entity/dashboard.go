package entity

// Dashboard é um apontador (cliente, nome, link) para um relatório de BI
// hospedado externamente.
type Dashboard struct {
	ID      int64
	Cliente string
	Nome    string
	Link    string
}
