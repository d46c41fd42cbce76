package georef

import "georef-scrapper/modelos"

var (
	Municipios = modelos.Conjunto{
		Nome:       "municipios",
		ChaveArray: "municipios",
		Colunas:    colunasComCentroide(),
	}

	Departamentos = modelos.Conjunto{
		Nome:       "departamentos",
		ChaveArray: "departamentos",
		Colunas:    colunasComCentroide(),
	}

	Localidades = modelos.Conjunto{
		Nome:       "localidades",
		ChaveArray: "localidades",
		Colunas: []modelos.Coluna{
			{Cabecalho: "id", Caminho: "id", Tipo: modelos.Texto},
			{Cabecalho: "Nombre", Caminho: "nombre", Tipo: modelos.Texto},
			{Cabecalho: "Categoria", Caminho: "categoria", Tipo: modelos.Texto},
			{Cabecalho: "Departamento", Caminho: "departamento.nombre", Tipo: modelos.Texto},
			{Cabecalho: "Municipio", Caminho: "municipio.nombre", Tipo: modelos.Texto},
			{Cabecalho: "Provincia", Caminho: "provincia.nombre", Tipo: modelos.Texto},
			{Cabecalho: "Lat", Caminho: "centroide.lat", Tipo: modelos.Numero},
			{Cabecalho: "Lon", Caminho: "centroide.lon", Tipo: modelos.Numero},
		},
	}

	Todos = []modelos.Conjunto{Municipios, Departamentos, Localidades}
)

func colunasComCentroide() []modelos.Coluna {
	return []modelos.Coluna{
		{Cabecalho: "id", Caminho: "id", Tipo: modelos.Texto},
		{Cabecalho: "Nombre", Caminho: "nombre", Tipo: modelos.Texto},
		{Cabecalho: "Provincia", Caminho: "provincia.nombre", Tipo: modelos.Texto},
		{Cabecalho: "Lat", Caminho: "centroide.lat", Tipo: modelos.Numero},
		{Cabecalho: "Lon", Caminho: "centroide.lon", Tipo: modelos.Numero},
	}
}
