package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tahto/portal-bi/internal/domain/entity"
	"github.com/tahto/portal-bi/internal/domain/repository"
)

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo leitura da tabela de referência tipo_usuario.
type RoleRepo struct {
	pool *pgxpool.Pool
}

// NewRoleRepository constrói o adaptador de leitura de tipos de usuário.
func NewRoleRepository(pool *pgxpool.Pool) *RoleRepo {
	return &RoleRepo{pool: pool}
}

// List devolve todos os tipos, ordenados por classe.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	return r.list(`SELECT id, tipo, classe FROM tipo_usuario ORDER BY classe`)
}

// ListSelecionaveis devolve os tipos oferecidos no cadastro, sem a classe
// Admin, ordenados por classe.
func (r *RoleRepo) ListSelecionaveis() ([]*entity.Role, error) {
	return r.list(
		`SELECT id, tipo, classe FROM tipo_usuario WHERE classe <> $1 ORDER BY classe`,
		entity.ClasseAdmin,
	)
}

// GetByTipo busca um tipo pelo código; nil quando não existe.
func (r *RoleRepo) GetByTipo(tipo int) (*entity.Role, error) {
	query := `SELECT id, tipo, classe FROM tipo_usuario WHERE tipo = $1`
	var role entity.Role
	err := r.pool.QueryRow(context.Background(), query, tipo).Scan(&role.ID, &role.Tipo, &role.Classe)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get tipo: %w", err)
	}
	return &role, nil
}

func (r *RoleRepo) list(query string, args ...any) ([]*entity.Role, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tipos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(&role.ID, &role.Tipo, &role.Classe); err != nil {
			return nil, fmt.Errorf("scan tipo: %w", err)
		}
		list = append(list, &role)
	}
	return list, rows.Err()
}
