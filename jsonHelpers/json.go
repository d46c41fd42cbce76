package jsonHelpers

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

func DesserializarJson[Para any](bytes []byte) (Para, error) {
	para := new(Para)
	err := json.Unmarshal(bytes, para)
	return *para, err
}

// ObterCaminho percorre o documento seguindo os segmentos separados por ponto.
// Qualquer segmento ausente ou de tipo inesperado resulta no valor padrão.
func ObterCaminho[Para any](documento any, caminho string, padrao Para) Para {
	atual := documento
	for _, segmento := range strings.Split(caminho, ".") {
		objeto, ok := atual.(map[string]any)
		if !ok {
			return padrao
		}

		atual, ok = objeto[segmento]
		if !ok {
			return padrao
		}
	}

	valor, ok := atual.(Para)
	if !ok {
		return padrao
	}

	return valor
}

// ExtrairArray lê a chave de primeiro nível como array. Diferente de ObterCaminho não existe
// valor padrão aqui, a ausência da chave é um erro.
func ExtrairArray(documento any, chave string) ([]any, error) {
	objeto, ok := documento.(map[string]any)
	if !ok {
		return nil, errors.Errorf("o documento não é um objeto, impossível ler a chave '%s'", chave)
	}

	valor, existe := objeto[chave]
	if !existe {
		return nil, errors.Errorf("a chave '%s' não existe no documento", chave)
	}

	elementos, ok := valor.([]any)
	if !ok {
		return nil, errors.Errorf("a chave '%s' não é um array", chave)
	}

	return elementos, nil
}
