package repository

import "github.com/tahto/portal-bi/internal/domain/entity"

// DashboardRepository define o porto de persistência para Dashboard.
type DashboardRepository interface {
	Create(d *entity.Dashboard) error
	GetByID(id int64) (*entity.Dashboard, error)
	// List devolve dashboards ordenados por (cliente, nome); com cliente
	// preenchido, só os daquele cliente, ordenados por nome.
	List(cliente string) ([]*entity.Dashboard, error)
	ListClientes() ([]string, error)
	Update(d *entity.Dashboard) error
	Delete(id int64) error
}
