package modelos

type TipoCampo int

const (
	Texto TipoCampo = iota
	Numero
)

// Conjunto descreve um dos recursos da API Georef e como cada elemento vira uma linha do csv.
type Conjunto struct {
	Nome       string // usado no endpoint e nos nomes dos arquivos
	ChaveArray string
	Colunas    []Coluna
}

type Coluna struct {
	Cabecalho string
	Caminho   string // ex: "centroide.lat"
	Tipo      TipoCampo
}
