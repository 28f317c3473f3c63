package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado        = errors.New("recurso não encontrado")
	ErrCredenciaisInvalidas = errors.New("usuário ou senha inválidos")
	ErrValidacao            = errors.New("entrada inválida")
	ErrDuplicado            = errors.New("recurso duplicado")
	ErrNaoAutorizado        = errors.New("não autorizado")
)

// Variantes de validação; errors.Is(err, ErrValidacao) continua valendo para elas.
var (
	ErrSenhasNaoCoincidem = fmt.Errorf("%w: as senhas não coincidem", ErrValidacao)
	ErrTipoInvalido       = fmt.Errorf("%w: tipo de usuário inválido", ErrValidacao)
)
