package main

import (
	"os"

	"georef-scrapper/georef"
	"georef-scrapper/modelos"

	"github.com/alexflint/go-arg"
	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

func main() {
	args := modelos.Parametros{Verbosidade: logger.InfoLevel}
	arg.MustParse(&args)
	logger.SetOutput(os.Stdout)
	logger.SetLevel(args.Verbosidade)
	logger.SetFormatter(&nested.Formatter{
		HideKeys:    true,
		FieldsOrder: []string{"component"},
	})

	err := validarParametros(args)
	if err != nil {
		logger.Fatalf("Parâmetros inválidos: %v", err)
	}

	_, err = georef.BaixarConjuntos(args, georef.Todos)
	sairSeErro(err)
}

func sairSeErro(err error) {
	if err != nil {
		panic(err)
	}
}

func validarParametros(params modelos.Parametros) error {
	if params.Max <= 0 {
		return errors.Errorf("max deve ser maior que zero, recebido %d", params.Max)
	}

	if params.Saida == "" {
		return errors.New("a pasta de saída não pode ser vazia")
	}

	return nil
}
