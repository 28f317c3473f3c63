package usecase

import (
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/domain"
	"github.com/tahto/portal-bi/internal/domain/entity"
	"github.com/tahto/portal-bi/internal/domain/repository"
)

// SenhaPadrao é a senha inicial de toda conta criada ou resetada pela
// administração; o usuário é obrigado a trocá-la no primeiro login.
const SenhaPadrao = "Tahto@2025"

// UserUseCase aplica as regras de negócio da gestão de usuários.
type UserUseCase struct {
	userRepo repository.UserRepository
	roleRepo repository.RoleRepository
}

// NewUserUseCase constrói o caso de uso com os portos de persistência.
func NewUserUseCase(userRepo repository.UserRepository, roleRepo repository.RoleRepository) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, roleRepo: roleRepo}
}

// ListarSemAdmin lista todos os usuários exceto a conta admin, anotados com
// a classe do tipo e o indicador de já ter feito login.
func (uc *UserUseCase) ListarSemAdmin() ([]dto.UserListItem, error) {
	rows, err := uc.userRepo.ListComRole("admin")
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserListItem, 0, len(rows))
	for _, r := range rows {
		jaFez := "Não"
		if r.JaFezLogin {
			jaFez = "Sim"
		}
		items = append(items, dto.UserListItem{
			ID:         r.ID,
			Username:   r.Username,
			Tipo:       r.Tipo,
			Classe:     r.Classe,
			JaFezLogin: jaFez,
		})
	}
	return items, nil
}

// Criar cria um usuário com a senha padrão e first_login ligado. Devolve a
// senha padrão para o administrador comunicá-la por fora do sistema.
func (uc *UserUseCase) Criar(in dto.CreateUserRequest) (string, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return "", domain.ErrValidacao
	}
	tipo, err := strconv.Atoi(strings.TrimSpace(in.Tipo))
	if err != nil {
		return "", domain.ErrTipoInvalido
	}
	selecionaveis, err := uc.roleRepo.ListSelecionaveis()
	if err != nil {
		return "", err
	}
	valido := false
	for _, r := range selecionaveis {
		if r.Tipo == tipo {
			valido = true
			break
		}
	}
	if !valido {
		return "", domain.ErrTipoInvalido
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(SenhaPadrao), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Tipo:         tipo,
		FirstLogin:   true,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return "", err // violação de unicidade já chega como ErrDuplicado
	}
	return SenhaPadrao, nil
}

// AlterarTipo valida o novo tipo contra tipo_usuario antes de sobrescrever.
func (uc *UserUseCase) AlterarTipo(userID int64, novoTipo int) error {
	role, err := uc.roleRepo.GetByTipo(novoTipo)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrTipoInvalido
	}
	return uc.userRepo.UpdateTipo(userID, novoTipo)
}

// Excluir remove o usuário; id inexistente não é erro.
func (uc *UserUseCase) Excluir(userID int64) error {
	return uc.userRepo.Delete(userID)
}

// ResetarSenha volta a senha para a padrão e rearma o primeiro login, mesmo
// que o usuário já tenha trocado a senha antes.
func (uc *UserUseCase) ResetarSenha(userID int64) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SenhaPadrao), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdateSenha(userID, string(hash), true)
}

// TiposSelecionaveis opções do select do cadastro (exceto Admin).
func (uc *UserUseCase) TiposSelecionaveis() ([]dto.RoleOption, error) {
	roles, err := uc.roleRepo.ListSelecionaveis()
	if err != nil {
		return nil, err
	}
	return toRoleOptions(roles), nil
}

// Tipos todas as opções de tipo, para o select da tela de gestão.
func (uc *UserUseCase) Tipos() ([]dto.RoleOption, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, err
	}
	return toRoleOptions(roles), nil
}

func toRoleOptions(roles []*entity.Role) []dto.RoleOption {
	opts := make([]dto.RoleOption, 0, len(roles))
	for _, r := range roles {
		opts = append(opts, dto.RoleOption{Tipo: r.Tipo, Classe: r.Classe})
	}
	return opts
}
