package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// La máquina de estados completa: pending puede aprobarse, rechazarse o
// cancelarse; approved puede entregarse o cancelarse; el resto es terminal.
func TestRequest_CanTransitionTo(t *testing.T) {
	all := []string{
		RequestPending, RequestApproved, RequestRejected,
		RequestDistributed, RequestCancelled,
	}

	allowed := map[string]map[string]bool{
		RequestPending: {
			RequestApproved:  true,
			RequestRejected:  true,
			RequestCancelled: true,
		},
		RequestApproved: {
			RequestDistributed: true,
			RequestCancelled:   true,
		},
		RequestRejected:    {},
		RequestDistributed: {},
		RequestCancelled:   {},
	}

	for _, from := range all {
		for _, to := range all {
			r := Request{Status: from}
			assert.Equalf(t, allowed[from][to], r.CanTransitionTo(to),
				"transición %s -> %s", from, to)
		}
	}
}

// Un estado desconocido se trata como terminal.
func TestRequest_EstadoDesconocidoEsTerminal(t *testing.T) {
	r := Request{Status: "limbo"}
	assert.False(t, r.CanTransitionTo(RequestApproved))
	assert.False(t, r.CanTransitionTo(RequestCancelled))
}
