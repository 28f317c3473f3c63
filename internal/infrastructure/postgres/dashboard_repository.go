package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tahto/portal-bi/internal/domain"
	"github.com/tahto/portal-bi/internal/domain/entity"
	"github.com/tahto/portal-bi/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo implementação do porto DashboardRepository sobre PostgreSQL.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository constrói o adaptador de persistência de dashboards.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// Create insere um dashboard; nome repetido vira ErrDuplicado.
func (r *DashboardRepo) Create(d *entity.Dashboard) error {
	query := `
		INSERT INTO dashboard (cliente, nome, link)
		VALUES ($1, $2, $3)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query, d.Cliente, d.Nome, d.Link).Scan(&d.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert dashboard: %w", err)
	}
	return nil
}

// GetByID busca um dashboard por ID; nil quando não existe.
func (r *DashboardRepo) GetByID(id int64) (*entity.Dashboard, error) {
	query := `SELECT id, cliente, nome, link FROM dashboard WHERE id = $1`
	var d entity.Dashboard
	err := r.pool.QueryRow(context.Background(), query, id).Scan(&d.ID, &d.Cliente, &d.Nome, &d.Link)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get dashboard by id: %w", err)
	}
	return &d, nil
}

// List devolve dashboards ordenados por (cliente, nome); com cliente, só os
// daquele cliente, ordenados por nome.
func (r *DashboardRepo) List(cliente string) ([]*entity.Dashboard, error) {
	query := `SELECT id, cliente, nome, link FROM dashboard ORDER BY cliente, nome`
	args := []any{}
	if cliente != "" {
		query = `SELECT id, cliente, nome, link FROM dashboard WHERE cliente = $1 ORDER BY nome`
		args = append(args, cliente)
	}
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list dashboards: %w", err)
	}
	defer rows.Close()
	var list []*entity.Dashboard
	for rows.Next() {
		var d entity.Dashboard
		if err := rows.Scan(&d.ID, &d.Cliente, &d.Nome, &d.Link); err != nil {
			return nil, fmt.Errorf("scan dashboard: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// ListClientes devolve os clientes distintos, ordenados.
func (r *DashboardRepo) ListClientes() ([]string, error) {
	rows, err := r.pool.Query(context.Background(),
		`SELECT DISTINCT cliente FROM dashboard ORDER BY cliente`)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var clientes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		clientes = append(clientes, c)
	}
	return clientes, rows.Err()
}

// Update sobrescreve cliente, nome e link; colisão de nome vira ErrDuplicado.
func (r *DashboardRepo) Update(d *entity.Dashboard) error {
	query := `UPDATE dashboard SET cliente = $2, nome = $3, link = $4 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, d.ID, d.Cliente, d.Nome, d.Link)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update dashboard: %w", err)
	}
	return nil
}

// Delete remove o dashboard por ID; id inexistente não é erro.
func (r *DashboardRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM dashboard WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dashboard: %w", err)
	}
	return nil
}
