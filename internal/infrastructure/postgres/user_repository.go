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

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementação do porto UserRepository sobre PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository constrói o adaptador de persistência de usuários.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste um novo usuário; username repetido vira ErrDuplicado.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, tipo, first_login)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.pool.QueryRow(context.Background(), query,
		user.Username, user.PasswordHash, user.Tipo, user.FirstLogin,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID busca um usuário por ID; nil quando não existe.
func (r *UserRepo) GetByID(id int64) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, tipo, first_login
		FROM users WHERE id = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Tipo, &u.FirstLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetByUsername busca um usuário pelo nome; nil quando não existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, tipo, first_login
		FROM users WHERE username = $1`
	var u entity.User
	err := r.pool.QueryRow(context.Background(), query, username).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.Tipo, &u.FirstLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &u, nil
}

// ListComRole lista usuários com a classe do tipo (LEFT JOIN: tipo órfão sai
// com classe vazia), exceto o username informado.
func (r *UserRepo) ListComRole(excetoUsername string) ([]*entity.UserComRole, error) {
	query := `
		SELECT u.id, u.username, u.password_hash, u.tipo, u.first_login,
		       COALESCE(t.classe, '')
		FROM users u
		LEFT JOIN tipo_usuario t ON u.tipo = t.tipo
		WHERE u.username <> $1
		ORDER BY u.username`
	rows, err := r.pool.Query(context.Background(), query, excetoUsername)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.UserComRole
	for rows.Next() {
		var u entity.UserComRole
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Tipo, &u.FirstLogin, &u.Classe); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.JaFezLogin = !u.FirstLogin
		list = append(list, &u)
	}
	return list, rows.Err()
}

// UpdateSenha grava o hash e o estado da flag de primeiro login.
func (r *UserRepo) UpdateSenha(id int64, passwordHash string, firstLogin bool) error {
	query := `UPDATE users SET password_hash = $2, first_login = $3 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, passwordHash, firstLogin)
	if err != nil {
		return fmt.Errorf("update senha: %w", err)
	}
	return nil
}

// UpdateTipo sobrescreve o tipo do usuário.
func (r *UserRepo) UpdateTipo(id int64, tipo int) error {
	query := `UPDATE users SET tipo = $2 WHERE id = $1`
	_, err := r.pool.Exec(context.Background(), query, id, tipo)
	if err != nil {
		return fmt.Errorf("update tipo: %w", err)
	}
	return nil
}

// Delete remove o usuário por ID; id inexistente não é erro.
func (r *UserRepo) Delete(id int64) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
