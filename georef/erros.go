package georef

import "github.com/pkg/errors"

var (
	ErrRede    = errors.New("falha de rede")
	ErrParse   = errors.New("resposta não é um JSON válido")
	ErrEsquema = errors.New("resposta com formato inesperado")
	ErrIO      = errors.New("falha ao escrever arquivo")
)

// erroTarefa associa a causa original a um dos tipos acima, permitindo errors.Is(err, ErrRede) etc.
type erroTarefa struct {
	tipo  error
	causa error
}

func (e *erroTarefa) Error() string {
	return e.tipo.Error() + ": " + e.causa.Error()
}

func (e *erroTarefa) Is(alvo error) bool {
	return alvo == e.tipo
}

func (e *erroTarefa) Unwrap() error {
	return e.causa
}

func (e *erroTarefa) Cause() error {
	return e.causa
}

func classificar(tipo, causa error, formato string, args ...interface{}) error {
	return &erroTarefa{tipo: tipo, causa: errors.Wrapf(causa, formato, args...)}
}
