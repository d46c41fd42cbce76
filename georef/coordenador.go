package georef

import (
	"os"
	"sync"

	"georef-scrapper/helpers"
	"georef-scrapper/modelos"

	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

type ResultadoTarefa struct {
	Conjunto string
	Err      error
}

// BaixarConjuntos cria a pasta de saída e executa um download por conjunto, todos em paralelo.
// Só retorna erro se a pasta não puder ser criada. A falha de um conjunto é registrada no
// resultado dele e não afeta os demais.
func BaixarConjuntos(params modelos.Parametros, conjuntos []modelos.Conjunto) ([]ResultadoTarefa, error) {
	return baixarConjuntosCom(NovoExecutor(params.Saida), params, conjuntos)
}

func baixarConjuntosCom(executor Executor, params modelos.Parametros, conjuntos []modelos.Conjunto) ([]ResultadoTarefa, error) {
	if params.Max <= 0 {
		return nil, errors.Errorf("max inválido: %d", params.Max)
	}

	err := os.MkdirAll(params.Saida, 0750)
	if err != nil {
		return nil, errors.Wrapf(err, "criando a pasta %s", params.Saida)
	}

	wg := sync.WaitGroup{}
	wg.Add(len(conjuntos))

	// cada goroutine escreve somente no seu índice
	resultados := make([]ResultadoTarefa, len(conjuntos))
	for i, conjunto := range conjuntos {
		url := helpers.ConstruirUrl(params.Api, conjunto.Nome, params.Max)
		go func(i int, conjunto modelos.Conjunto, url string) {
			defer wg.Done()

			err := executor.Executar(conjunto, url)
			if err != nil {
				logger.WithField("component", conjunto.Nome).Errorf("Erro: %v", err)
			} else {
				logger.WithField("component", conjunto.Nome).Info("Download concluído com sucesso")
			}

			resultados[i] = ResultadoTarefa{Conjunto: conjunto.Nome, Err: err}
		}(i, conjunto, url)
	}

	wg.Wait()

	falhas := linq.From(resultados).CountWithT(func(r ResultadoTarefa) bool {
		return r.Err != nil
	})
	logger.Infof("Conjuntos finalizados. Sucesso [%d], falha [%d]", len(resultados)-falhas, falhas)

	return resultados, nil
}
