package modelos

import "github.com/sirupsen/logrus"

type Parametros struct {
	Saida       string       `arg:"-s, --saida" default:"data" placeholder:"CAMINHO" help:"A pasta onde serão salvos os arquivos .json e .csv. Será criada caso não exista"`
	Max         int          `arg:"-m, --max" default:"5000" placeholder:"N" help:"Valor do parâmetro 'max' enviado à API, limita a quantidade de registros de cada conjunto. Deve ser maior que zero"`
	Api         string       `arg:"-a, --api" default:"https://apis.datos.gob.ar/georef/api" placeholder:"URL" help:"URL base da API Georef. Os endpoints usados são <api>/municipios, <api>/departamentos e <api>/localidades"`
	Verbosidade logrus.Level `arg:"-v, --verbosidade" placeholder:"NÍVEL" help:"Quantos logs devem ser exibidos. Em ordem de criticidade (0 à 6): panic > fatal > error > warn > info > debug > trace"`
}

func (Parametros) Description() string {
	return "Baixa municípios, departamentos e localidades da API Georef e gera um .json e um .csv por conjunto.\n" +
		"Sem argumentos os valores padrão são os endpoints fixos da API Georef com max=5000 e a pasta 'data'."
}
