package helpers

import (
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
)

const modeloUrlRecurso = "%s/%s?max=%d"

func ConstruirUrl(api, recurso string, max int) string {
	if max <= 0 {
		logger.Panicf("Valor de max inválido: %d", max)
	}

	return fmt.Sprintf(modeloUrlRecurso, strings.TrimSuffix(api, "/"), recurso, max)
}
