package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmaster-api/internal/domain"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados de los documentos operativos
// ──────────────────────────────────────────────────────────────────────────────

func TestStatus_CicloDeEntrega(t *testing.T) {
	// Draft -> Waiting -> InProgress -> Delivered
	s := domain.StatusDraft

	s, err := s.Transition(domain.StatusWaiting)
	require.NoError(t, err)

	s, err = s.Transition(domain.StatusInProgress)
	require.NoError(t, err)

	s, err = s.Transition(domain.StatusDelivered)
	require.NoError(t, err)
	assert.True(t, s.Terminal(), "Delivered es un estado terminal")
}

func TestStatus_RecepcionDirectaARecibida(t *testing.T) {
	s, err := domain.StatusWaiting.Transition(domain.StatusReceived)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusReceived, s)
}

func TestStatus_TerminalNoAdmiteSalidas(t *testing.T) {
	for _, terminal := range []domain.Status{
		domain.StatusCompleted, domain.StatusCancelled,
		domain.StatusReceived, domain.StatusDelivered,
	} {
		_, err := terminal.Transition(domain.StatusWaiting)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition,
			"%s no debe admitir transiciones de salida", terminal)
	}
}

func TestStatus_TransicionRegresivaRechazada(t *testing.T) {
	// InProgress no puede volver a Waiting ni a Draft.
	_, err := domain.StatusInProgress.Transition(domain.StatusWaiting)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = domain.StatusInProgress.Transition(domain.StatusDraft)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestStatus_EstadoDesconocidoEsInvalido(t *testing.T) {
	prev := domain.StatusWaiting
	s, err := prev.Transition(domain.Status("Shipped"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "un estado desconocido no es una transición inválida sino entrada inválida")
	assert.Equal(t, prev, s, "ante error el estado no debe cambiar")
}

func TestStatus_CancelableDesdeCualquierEstadoNoTerminal(t *testing.T) {
	for _, from := range []domain.Status{
		domain.StatusDraft, domain.StatusWaiting, domain.StatusInProgress,
	} {
		assert.True(t, from.CanTransition(domain.StatusCancelled),
			"%s debe poder cancelarse", from)
	}
}
