package repository

import "github.com/tahto/portal-bi/internal/domain/entity"

// UserRepository define o porto de persistência para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int64) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// ListComRole lista usuários anotados com a classe do tipo, exceto o
	// username informado.
	ListComRole(excetoUsername string) ([]*entity.UserComRole, error)
	UpdateSenha(id int64, passwordHash string, firstLogin bool) error
	UpdateTipo(id int64, tipo int) error
	Delete(id int64) error
}
