// Package reference construye los códigos de referencia legibles que se
// estampan en los documentos operativos. Conviven dos esquemas, uno por tipo
// de documento: secuencial anual (REC-2024-003, ADJ-2025-001) para
// recepciones y ajustes, y por timestamp (DEL-1732271999000) para entregas
// y traslados.
package reference

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// Prefijos por tipo de documento.
const (
	PrefixReceipt    = "REC"
	PrefixDelivery   = "DEL"
	PrefixTransfer   = "TRF"
	PrefixAdjustment = "ADJ"
)

var trailingDigits = regexp.MustCompile(`\d+$`)

// FormatSequential arma un código secuencial anual: <PREFIX>-<YEAR>-<NNN>,
// con el sufijo numérico a tres dígitos.
func FormatSequential(prefix string, year int, n int64) string {
	return fmt.Sprintf("%s-%d-%03d", prefix, year, n)
}

// FormatTimestamp arma un código por timestamp: <PREFIX>-<unix-ms>.
func FormatTimestamp(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%d", prefix, t.UnixMilli())
}

// NextFromReference devuelve el siguiente número de secuencia a partir de una
// referencia previa, leyendo la corrida de dígitos final e incrementándola.
// Si la referencia está vacía o no termina en dígitos, arranca en 1 sin
// reportar error.
func NextFromReference(ref string) int64 {
	match := trailingDigits.FindString(ref)
	if match == "" {
		return 1
	}
	n, err := strconv.ParseInt(match, 10, 64)
	if err != nil {
		return 1
	}
	return n + 1
}
