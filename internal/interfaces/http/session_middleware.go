package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tahto/portal-bi/internal/domain/entity"
	"github.com/tahto/portal-bi/internal/domain/repository"
	"github.com/tahto/portal-bi/pkg/token"
)

// SessionCookie nome do cookie que carrega o token de sessão assinado.
const SessionCookie = "portal_sessao"

// Locals key do usuário da sessão.
const localUser = "session_user"

// SessionMiddleware resolve a identidade da request: lê o cookie, valida o
// token e recarrega o usuário da base. Sem cookie ou com token inválido a
// request segue anônima; quem exige autenticação é o RequireAuth.
//
// Recarregar da base a cada request mantém first_login fresco: um reset de
// senha rearma o gate imediatamente, sem esperar o token expirar.
func SessionMiddleware(secret string, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(SessionCookie)
		if raw == "" {
			return c.Next()
		}
		userID, err := token.Parse(secret, raw)
		if err != nil {
			ClearSessionCookie(c)
			return c.Next()
		}
		user, err := users.GetByID(userID)
		if err != nil {
			return err
		}
		if user == nil {
			// Conta excluída com sessão ainda viva.
			ClearSessionCookie(c)
			return c.Next()
		}
		c.Locals(localUser, user)
		return c.Next()
	}
}

// CurrentUser devolve o usuário autenticado da request, ou nil.
func CurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(localUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// RequireAuth redireciona para /login quando não há sessão.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if CurrentUser(c) == nil {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// Destinos acessíveis mesmo com a troca de senha pendente.
var primeiroLoginIsentos = map[string]struct{}{
	"/login":                {},
	"/logout":               {},
	"/primeira_troca_senha": {},
}

// FirstLoginGate força a troca de senha antes de qualquer outra ação
// enquanto first_login estiver ligado. Invariante duro: com a flag ativa, só
// login, logout, a própria troca e os assets estáticos ficam alcançáveis.
func FirstLoginGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || !user.FirstLogin {
			return c.Next()
		}
		path := c.Path()
		if _, ok := primeiroLoginIsentos[path]; ok {
			return c.Next()
		}
		if strings.HasPrefix(path, "/static/") {
			return c.Next()
		}
		return c.Redirect("/primeira_troca_senha", fiber.StatusSeeOther)
	}
}

// SetSessionCookie grava o token de sessão num cookie HTTP-only.
func SetSessionCookie(c *fiber.Ctx, tok string, expMinutes int) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    tok,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(expMinutes) * time.Minute),
	})
}

// ClearSessionCookie expira o cookie de sessão.
func ClearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(-time.Hour),
	})
}
