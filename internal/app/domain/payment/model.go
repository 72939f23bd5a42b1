// Package payment defines client payments and the allowed payment methods.
package payment

import (
	"strings"

	"github.com/irongym/backend/internal/app/domain/dates"
)

// Method is a payment channel. The stored values are the Spanish canonical
// names used by the gym's data files; English aliases are accepted on input.
type Method string

const (
	MethodCash      Method = "EFECTIVO"
	MethodTransfer  Method = "TRANSFERENCIA"
	MethodNequi     Method = "NEQUI"
	MethodDaviplata Method = "DAVIPLATA"
)

var aliases = map[string]Method{
	"CASH":     MethodCash,
	"TRANSFER": MethodTransfer,
}

// ParseMethod normalizes a raw method value, mapping aliases to their
// canonical form. ok is false for values outside the closed set.
func ParseMethod(raw string) (Method, bool) {
	norm := strings.ToUpper(strings.TrimSpace(raw))
	if m, ok := aliases[norm]; ok {
		return m, true
	}
	switch Method(norm) {
	case MethodCash, MethodTransfer, MethodNequi, MethodDaviplata:
		return Method(norm), true
	default:
		return "", false
	}
}

// Methods lists the canonical payment methods.
func Methods() []Method {
	return []Method{MethodCash, MethodTransfer, MethodNequi, MethodDaviplata}
}

// Payment records money received from a client.
type Payment struct {
	ID       string         `json:"id"`
	Amount   float64        `json:"amount"`
	DateTime dates.DateTime `json:"dateTime"`
	Method   Method         `json:"paymentMethod"`
	ClientID string         `json:"clientId"`
}
