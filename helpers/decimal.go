package helpers

import "strconv"

// FormatarDecimal usa a menor representação que volta ao mesmo float64, sem expoente.
func FormatarDecimal(valor float64) string {
	return strconv.FormatFloat(valor, 'f', -1, 64)
}
