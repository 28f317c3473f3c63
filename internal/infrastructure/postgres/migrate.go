package postgres

import (
	"context"
	"embed"
	"fmt"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate aplica os arquivos *.sql de migrations em ordem lexicográfica.
// Cada arquivo roda na própria transação; os arquivos não devem conter
// BEGIN/COMMIT. Todos os statements são idempotentes, então rodar no boot é
// seguro.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	for _, name := range names {
		sqlb, err := migrationsFS.ReadFile("migrations/" + name)
		if err != nil {
			return err
		}
		tx, err := pool.Begin(ctx)
		if err != nil {
			return fmt.Errorf("begin tx de %s: %w", name, err)
		}
		if _, err := tx.Exec(ctx, string(sqlb)); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("migração %s: %w", name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			return fmt.Errorf("commit de %s: %w", name, err)
		}
	}
	return nil
}

// SeedAdmin garante a conta admin (tipo 1, sem gate de primeiro login). O
// hash vem de fora porque bcrypt não é calculável em SQL.
func SeedAdmin(ctx context.Context, pool *pgxpool.Pool, passwordHash string) error {
	_, err := pool.Exec(ctx, `
		INSERT INTO users (username, password_hash, tipo, first_login)
		VALUES ('admin', $1, 1, FALSE)
		ON CONFLICT (username) DO NOTHING`, passwordHash)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
