package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tahto/portal-bi/internal/application/auth"
	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/domain"
	"github.com/tahto/portal-bi/internal/domain/entity"
	"github.com/tahto/portal-bi/pkg/token"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake do porto de usuários
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
	var list []*entity.UserComRole
	for _, u := range f.users {
		if u.Username == excetoUsername {
			continue
		}
		list = append(list, &entity.UserComRole{User: *u, JaFezLogin: !u.FirstLogin})
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

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

const testSecret = "secret-de-teste"

func novoUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.SessionConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "portal-bi-test",
	})
}

func seedUser(t *testing.T, repo *fakeUserRepo, username, senha string, firstLogin bool) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &entity.User{Username: username, PasswordHash: string(hash), Tipo: entity.TipoIfood, FirstLogin: firstLogin}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredenciaisValidas_EmiteToken(t *testing.T) {
	repo := newFakeUserRepo()
	seeded := seedUser(t, repo, "maria", "Tahto@2025", true)
	uc := novoUC(repo)

	user, tok, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "Tahto@2025"})
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, seeded.ID, user.ID)
	assert.True(t, user.FirstLogin)

	userID, err := token.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, userID, "o token deve estar amarrado ao ID do usuário")
}

func TestLogin_UsernameComEspacos_EhNormalizado(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "maria", "Tahto@2025", false)
	uc := novoUC(repo)

	_, _, err := uc.Login(dto.LoginRequest{Username: "  maria  ", Password: "Tahto@2025"})
	assert.NoError(t, err)
}

func TestLogin_SenhaErrada_RetornaCredenciaisInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "maria", "Tahto@2025", false)
	uc := novoUC(repo)

	_, tok, err := uc.Login(dto.LoginRequest{Username: "maria", Password: "errada"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
	assert.Empty(t, tok, "não pode sair token quando o login falha")
}

func TestLogin_UsuarioInexistente_RetornaCredenciaisInvalidas(t *testing.T) {
	uc := novoUC(newFakeUserRepo())

	_, _, err := uc.Login(dto.LoginRequest{Username: "ninguem", Password: "tanto-faz"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas,
		"usuário ausente e senha errada devem ser indistinguíveis")
}

// ──────────────────────────────────────────────────────────────────────────────
// Troca obrigatória de senha
// ──────────────────────────────────────────────────────────────────────────────

func TestTrocarSenha_CamposVazios_RetornaValidacao(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "maria", "Tahto@2025", true)
	uc := novoUC(repo)

	err := uc.TrocarSenhaPrimeiroLogin(u.ID, dto.TrocaSenhaRequest{NovaSenha: "", ConfirmaSenha: ""})
	assert.ErrorIs(t, err, domain.ErrValidacao)

	atual, _ := repo.GetByID(u.ID)
	assert.Equal(t, u.PasswordHash, atual.PasswordHash, "hash não pode mudar")
	assert.True(t, atual.FirstLogin, "flag deve continuar ligada")
}

func TestTrocarSenha_ConfirmacaoDiferente_NaoAlteraNada(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "maria", "Tahto@2025", true)
	uc := novoUC(repo)

	err := uc.TrocarSenhaPrimeiroLogin(u.ID, dto.TrocaSenhaRequest{
		NovaSenha:     "NovaSenha1!",
		ConfirmaSenha: "Outra1!",
	})
	assert.ErrorIs(t, err, domain.ErrSenhasNaoCoincidem)
	assert.ErrorIs(t, err, domain.ErrValidacao, "mismatch também é erro de validação")

	atual, _ := repo.GetByID(u.ID)
	assert.Equal(t, u.PasswordHash, atual.PasswordHash)
	assert.True(t, atual.FirstLogin)
}

func TestTrocarSenha_Sucesso_LimpaFlagEGravaNovoHash(t *testing.T) {
	repo := newFakeUserRepo()
	u := seedUser(t, repo, "maria", "Tahto@2025", true)
	uc := novoUC(repo)

	err := uc.TrocarSenhaPrimeiroLogin(u.ID, dto.TrocaSenhaRequest{
		NovaSenha:     "NovaSenha1!",
		ConfirmaSenha: "NovaSenha1!",
	})
	require.NoError(t, err)

	atual, _ := repo.GetByID(u.ID)
	assert.False(t, atual.FirstLogin, "a troca é o único caminho que limpa a flag")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(atual.PasswordHash), []byte("NovaSenha1!")))

	// Login subsequente passa a usar a nova senha.
	_, _, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "NovaSenha1!"})
	assert.NoError(t, err)
	_, _, err = uc.Login(dto.LoginRequest{Username: "maria", Password: "Tahto@2025"})
	assert.ErrorIs(t, err, domain.ErrCredenciaisInvalidas)
}
