package auth

import (
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/tahto/portal-bi/internal/application/dto"
	"github.com/tahto/portal-bi/internal/domain"
	"github.com/tahto/portal-bi/internal/domain/entity"
	"github.com/tahto/portal-bi/internal/domain/repository"
	"github.com/tahto/portal-bi/pkg/token"
)

// SessionConfig configuração para emissão do token de sessão.
type SessionConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: login e troca obrigatória de senha.
type AuthUseCase struct {
	userRepo   repository.UserRepository
	sessionCfg SessionConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessionCfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessionCfg: sessionCfg}
}

// Login verifica username/senha e emite o token de sessão assinado. Retorna
// ErrCredenciaisInvalidas tanto para usuário inexistente quanto para senha
// errada; o chamador não distingue os dois casos.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByUsername(strings.TrimSpace(in.Username))
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrCredenciaisInvalidas
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, "", domain.ErrCredenciaisInvalidas
	}
	tok, err := token.Generate(uc.sessionCfg.Secret, user.ID, uc.sessionCfg.Issuer, uc.sessionCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return user, tok, nil
}

// TrocarSenhaPrimeiroLogin grava o hash da nova senha e limpa a flag de
// primeiro login. É o único caminho que limpa essa flag.
func (uc *AuthUseCase) TrocarSenhaPrimeiroLogin(userID int64, in dto.TrocaSenhaRequest) error {
	if in.NovaSenha == "" || in.ConfirmaSenha == "" {
		return domain.ErrValidacao
	}
	if in.NovaSenha != in.ConfirmaSenha {
		return domain.ErrSenhasNaoCoincidem
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NovaSenha), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdateSenha(userID, string(hash), false)
}
