package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/application/usecase"
	"github.com/tahto/portal-bi/internal/domain"
	"github.com/tahto/portal-bi/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes dos portos
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[int64]*entity.User
	seq   int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for _, e := range f.users {
		if e.Username == u.Username {
			return domain.ErrDuplicado
		}
	}
	f.seq++
	u.ID = f.seq
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id int64) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListComRole(excetoUsername string) ([]*entity.UserComRole, error) {
	classes := map[int]string{1: "Admin", 2: "Tahto", 4: "Ifood"}
	var list []*entity.UserComRole
	for _, u := range f.users {
		if u.Username == excetoUsername {
			continue
		}
		list = append(list, &entity.UserComRole{
			User:       *u,
			Classe:     classes[u.Tipo],
			JaFezLogin: !u.FirstLogin,
		})
	}
	return list, nil
}

func (f *fakeUserRepo) UpdateSenha(id int64, passwordHash string, firstLogin bool) error {
	if u, ok := f.users[id]; ok {
		u.PasswordHash = passwordHash
		u.FirstLogin = firstLogin
	}
	return nil
}

func (f *fakeUserRepo) UpdateTipo(id int64, tipo int) error {
	if u, ok := f.users[id]; ok {
		u.Tipo = tipo
	}
	return nil
}

func (f *fakeUserRepo) Delete(id int64) error {
	delete(f.users, id)
	return nil
}

type fakeRoleRepo struct {
	roles []*entity.Role
}

func newFakeRoleRepo() *fakeRoleRepo {
	return &fakeRoleRepo{roles: []*entity.Role{
		{ID: 1, Tipo: 1, Classe: "Admin"},
		{ID: 2, Tipo: 2, Classe: "Tahto"},
		{ID: 3, Tipo: 3, Classe: "Icatu"},
		{ID: 4, Tipo: 4, Classe: "Ifood"},
	}}
}

func (f *fakeRoleRepo) List() ([]*entity.Role, error) {
	return f.roles, nil
}

func (f *fakeRoleRepo) ListSelecionaveis() ([]*entity.Role, error) {
	var out []*entity.Role
	for _, r := range f.roles {
		if r.Classe != entity.ClasseAdmin {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRoleRepo) GetByTipo(tipo int) (*entity.Role, error) {
	for _, r := range f.roles {
		if r.Tipo == tipo {
			return r, nil
		}
	}
	return nil, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Criar
// ──────────────────────────────────────────────────────────────────────────────

func TestCriar_Sucesso_ReportaSenhaPadrao(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewUserUseCase(users, newFakeRoleRepo())

	senha, err := uc.Criar(dto.CreateUserRequest{Username: "maria", Tipo: "4"})
	require.NoError(t, err)
	assert.Equal(t, usecase.SenhaPadrao, senha,
		"a senha padrão volta para o administrador comunicar por fora")

	criado, _ := users.GetByUsername("maria")
	require.NotNil(t, criado)
	assert.True(t, criado.FirstLogin, "conta nova nasce com a troca de senha pendente")
	assert.Equal(t, 4, criado.Tipo)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(criado.PasswordHash), []byte(usecase.SenhaPadrao)))
}

func TestCriar_UsernameVazio_RetornaValidacao(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeRoleRepo())

	_, err := uc.Criar(dto.CreateUserRequest{Username: "   ", Tipo: "4"})
	assert.ErrorIs(t, err, domain.ErrValidacao)
}

func TestCriar_TipoNaoNumerico_RetornaTipoInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeRoleRepo())

	_, err := uc.Criar(dto.CreateUserRequest{Username: "maria", Tipo: "abc"})
	assert.ErrorIs(t, err, domain.ErrTipoInvalido)
}

func TestCriar_TipoAdmin_NaoEhSelecionavel(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeRoleRepo())

	_, err := uc.Criar(dto.CreateUserRequest{Username: "maria", Tipo: "1"})
	assert.ErrorIs(t, err, domain.ErrTipoInvalido,
		"o tipo Admin fica fora da lista de seleção do cadastro")
}

func TestCriar_TipoForaDaTabela_RetornaTipoInvalido(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeRoleRepo())

	_, err := uc.Criar(dto.CreateUserRequest{Username: "maria", Tipo: "99"})
	assert.ErrorIs(t, err, domain.ErrTipoInvalido)
}

func TestCriar_UsernameRepetido_RetornaDuplicado(t *testing.T) {
	users := newFakeUserRepo()
	uc := usecase.NewUserUseCase(users, newFakeRoleRepo())

	_, err := uc.Criar(dto.CreateUserRequest{Username: "maria", Tipo: "4"})
	require.NoError(t, err)
	_, err = uc.Criar(dto.CreateUserRequest{Username: "maria", Tipo: "3"})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

// ──────────────────────────────────────────────────────────────────────────────
// Listar / AlterarTipo / ResetarSenha
// ──────────────────────────────────────────────────────────────────────────────

func TestListarSemAdmin_ExcluiAdminEAnotaIndicador(t *testing.T) {
	users := newFakeUserRepo()
	require.NoError(t, users.Create(&entity.User{Username: "admin", Tipo: 1, FirstLogin: false}))
	require.NoError(t, users.Create(&entity.User{Username: "maria", Tipo: 4, FirstLogin: true}))
	require.NoError(t, users.Create(&entity.User{Username: "joao", Tipo: 2, FirstLogin: false}))
	uc := usecase.NewUserUseCase(users, newFakeRoleRepo())

	items, err := uc.ListarSemAdmin()
	require.NoError(t, err)
	require.Len(t, items, 2)

	porNome := map[string]dto.UserListItem{}
	for _, it := range items {
		porNome[it.Username] = it
	}
	assert.NotContains(t, porNome, "admin")
	assert.Equal(t, "Não", porNome["maria"].JaFezLogin)
	assert.Equal(t, "Sim", porNome["joao"].JaFezLogin)
	assert.Equal(t, "Ifood", porNome["maria"].Classe)
}

func TestAlterarTipo_TipoExistente_Sobrescreve(t *testing.T) {
	users := newFakeUserRepo()
	u := &entity.User{Username: "maria", Tipo: 4, FirstLogin: false}
	require.NoError(t, users.Create(u))
	uc := usecase.NewUserUseCase(users, newFakeRoleRepo())

	require.NoError(t, uc.AlterarTipo(u.ID, 3))
	atual, _ := users.GetByID(u.ID)
	assert.Equal(t, 3, atual.Tipo)
}

func TestAlterarTipo_TipoInexistente_Rejeita(t *testing.T) {
	users := newFakeUserRepo()
	u := &entity.User{Username: "maria", Tipo: 4, FirstLogin: false}
	require.NoError(t, users.Create(u))
	uc := usecase.NewUserUseCase(users, newFakeRoleRepo())

	err := uc.AlterarTipo(u.ID, 99)
	assert.ErrorIs(t, err, domain.ErrTipoInvalido)
	atual, _ := users.GetByID(u.ID)
	assert.Equal(t, 4, atual.Tipo, "tipo não pode mudar quando a validação falha")
}

func TestResetarSenha_RearmaPrimeiroLogin(t *testing.T) {
	users := newFakeUserRepo()
	hash, _ := bcrypt.GenerateFromPassword([]byte("SenhaPropria1!"), bcrypt.MinCost)
	u := &entity.User{Username: "maria", PasswordHash: string(hash), Tipo: 4, FirstLogin: false}
	require.NoError(t, users.Create(u))
	uc := usecase.NewUserUseCase(users, newFakeRoleRepo())

	require.NoError(t, uc.ResetarSenha(u.ID))

	atual, _ := users.GetByID(u.ID)
	assert.True(t, atual.FirstLogin, "reset rearma o gate de primeiro login")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(atual.PasswordHash), []byte(usecase.SenhaPadrao)),
		"a senha volta para a padrão mesmo depois de trocada")
}

func TestExcluir_IdInexistente_NaoEhErro(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeRoleRepo())
	assert.NoError(t, uc.Excluir(12345))
}

func TestTiposSelecionaveis_SemAdmin(t *testing.T) {
	uc := usecase.NewUserUseCase(newFakeUserRepo(), newFakeRoleRepo())

	opts, err := uc.TiposSelecionaveis()
	require.NoError(t, err)
	for _, o := range opts {
		assert.NotEqual(t, "Admin", o.Classe)
	}
	assert.Len(t, opts, 3)
}
