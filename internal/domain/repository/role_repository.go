package repository

import "github.com/tahto/portal-bi/internal/domain/entity"

// RoleRepository consulta a tabela de referência tipo_usuario. A tabela é
// pré-carregada; a aplicação só lê.
type RoleRepository interface {
	List() ([]*entity.Role, error)
	// ListSelecionaveis devolve os tipos oferecidos no cadastro (exceto a
	// classe Admin), ordenados por classe.
	ListSelecionaveis() ([]*entity.Role, error)
	GetByTipo(tipo int) (*entity.Role, error)
}
