package georef

import (
	"encoding/csv"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"georef-scrapper/helpers"
	"georef-scrapper/jsonHelpers"
	"georef-scrapper/modelos"

	"github.com/MisterKaiou/go-functional/result"
	"github.com/MisterKaiou/go-functional/unit"
	"github.com/ahmetb/go-linq/v3"
	"github.com/pkg/errors"
	logger "github.com/sirupsen/logrus"
)

const (
	extensaoBruto  = ".json"
	extensaoTabela = ".csv"
)

// Executor baixa um conjunto, salva a resposta como veio e gera o csv correspondente.
type Executor struct {
	Cliente *http.Client
	Saida   string
}

func NovoExecutor(saida string) Executor {
	return Executor{Cliente: &http.Client{}, Saida: saida}
}

func (e Executor) CaminhoBruto(conjunto modelos.Conjunto) string {
	return filepath.Join(e.Saida, conjunto.Nome+extensaoBruto)
}

func (e Executor) CaminhoTabela(conjunto modelos.Conjunto) string {
	return filepath.Join(e.Saida, conjunto.Nome+extensaoTabela)
}

// Executar roda baixar -> salvar bruto -> interpretar -> extrair array -> mapear -> escrever csv.
// O primeiro passo que falhar interrompe os seguintes. O arquivo bruto é escrito antes da
// interpretação, então ele existe mesmo quando o csv não pôde ser gerado.
func (e Executor) Executar(conjunto modelos.Conjunto, url string) error {
	log := logger.WithField("component", conjunto.Nome)
	log.Infof("Baixando %s", url)

	corpo := e.baixar(url)
	documento := result.Bind(corpo, func(b []byte) result.Of[any] {
		log.Debugf("Resposta recebida. Tamanho %dKB", len(b)/1024)

		salvo := salvarDocumentoBruto(e.CaminhoBruto(conjunto), b)
		return result.Bind(salvo, func(_ unit.Unit) result.Of[any] {
			return interpretar(b)
		})
	})

	elementos := result.Bind(documento, func(doc any) result.Of[[]any] {
		elems, err := jsonHelpers.ExtrairArray(doc, conjunto.ChaveArray)
		if err != nil {
			return result.FromTupleOf(elems, classificar(ErrEsquema, err, "conjunto %s", conjunto.Nome))
		}
		return result.FromTupleOf(elems, nil)
	})

	linhas := result.Map(elementos, func(elems []any) [][]string {
		return MapearLinhas(conjunto.Colunas, elems)
	})

	escrito := result.Bind(linhas, func(l [][]string) result.Of[unit.Unit] {
		err := escreverTabela(e.CaminhoTabela(conjunto), Cabecalho(conjunto.Colunas), l)
		if err == nil {
			log.Infof("%d registros escritos em %s", len(l), e.CaminhoTabela(conjunto))
		}
		return result.FromTupleOf(unit.Unit{}, err)
	})

	if escrito.IsError() {
		return escrito.UnwrapError()
	}

	return nil
}

func (e Executor) baixar(url string) result.Of[[]byte] {
	resposta, err := e.Cliente.Get(url)
	if err != nil {
		return result.FromTupleOf([]byte(nil), classificar(ErrRede, err, "GET %s", url))
	}
	defer resposta.Body.Close()

	if resposta.StatusCode < 200 || resposta.StatusCode > 299 {
		return result.FromTupleOf([]byte(nil),
			classificar(ErrRede, errors.Errorf("status %d", resposta.StatusCode), "GET %s", url))
	}

	corpo, err := io.ReadAll(resposta.Body)
	if err != nil {
		return result.FromTupleOf([]byte(nil), classificar(ErrRede, err, "lendo corpo de %s", url))
	}

	return result.FromTupleOf(corpo, nil)
}

func salvarDocumentoBruto(caminho string, corpo []byte) result.Of[unit.Unit] {
	err := os.WriteFile(caminho, corpo, 0666)
	if err != nil {
		return result.FromTupleOf(unit.Unit{}, classificar(ErrIO, err, "salvando %s", caminho))
	}

	return result.FromTupleOf(unit.Unit{}, nil)
}

func interpretar(corpo []byte) result.Of[any] {
	doc, err := jsonHelpers.DesserializarJson[any](corpo)
	if err != nil {
		return result.FromTupleOf(doc, classificar(ErrParse, err, "interpretando resposta"))
	}

	return result.FromTupleOf(doc, nil)
}

func Cabecalho(colunas []modelos.Coluna) []string {
	var cabecalho []string
	linq.From(colunas).SelectT(func(c modelos.Coluna) string {
		return c.Cabecalho
	}).ToSlice(&cabecalho)

	return cabecalho
}

// MapearLinhas preserva a ordem dos elementos da resposta.
// Select e não SelectT: elementos null não passam pelo reflect.Value.Call do SelectT.
func MapearLinhas(colunas []modelos.Coluna, elementos []any) [][]string {
	linhas := make([][]string, 0, len(elementos))
	linq.From(elementos).Select(func(elemento interface{}) interface{} {
		return MapearLinha(colunas, elemento)
	}).ToSlice(&linhas)

	return linhas
}

func MapearLinha(colunas []modelos.Coluna, elemento any) []string {
	linha := make([]string, len(colunas))
	for i, coluna := range colunas {
		switch coluna.Tipo {
		case modelos.Numero:
			linha[i] = helpers.FormatarDecimal(jsonHelpers.ObterCaminho(elemento, coluna.Caminho, 0.0))
		default:
			linha[i] = jsonHelpers.ObterCaminho(elemento, coluna.Caminho, "")
		}
	}

	return linha
}

func escreverTabela(caminho string, cabecalho []string, linhas [][]string) (err error) {
	arquivo, err := os.Create(caminho)
	if err != nil {
		return classificar(ErrIO, err, "criando %s", caminho)
	}
	defer func() {
		errFechar := arquivo.Close()
		if err == nil && errFechar != nil {
			err = classificar(ErrIO, errFechar, "fechando %s", caminho)
		}
	}()

	escritor := csv.NewWriter(arquivo)
	err = escritor.Write(cabecalho)
	if err != nil {
		return classificar(ErrIO, err, "escrevendo cabeçalho em %s", caminho)
	}

	for _, linha := range linhas {
		err = escritor.Write(linha)
		if err != nil {
			return classificar(ErrIO, err, "escrevendo linha em %s", caminho)
		}
	}

	escritor.Flush()
	err = escritor.Error()
	if err != nil {
		return classificar(ErrIO, err, "finalizando %s", caminho)
	}

	return nil
}
