package domain

// Status estado de un documento operativo (recepción, entrega o traslado).
type Status string

// Estados del ciclo de vida de los documentos. Las recepciones nacen en
// Waiting y terminan en Received; las entregas nacen en Draft y terminan en
// Delivered; los traslados nacen en Waiting y terminan en Completed.
const (
	StatusDraft      Status = "Draft"
	StatusWaiting    Status = "Waiting"
	StatusInProgress Status = "InProgress"
	StatusCompleted  Status = "Completed"
	StatusCancelled  Status = "Cancelled"
	StatusReceived   Status = "Received"  // terminal de recepciones
	StatusDelivered  Status = "Delivered" // terminal de entregas
)

// transitions define la máquina de estados. Los estados terminales
// (Completed, Cancelled, Received, Delivered) no tienen salidas.
var transitions = map[Status][]Status{
	StatusDraft:      {StatusWaiting, StatusDelivered, StatusCancelled},
	StatusWaiting:    {StatusInProgress, StatusReceived, StatusDelivered, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusReceived, StatusDelivered, StatusCancelled},
}

// Valid indica si s es un estado conocido.
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusWaiting, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusReceived, StatusDelivered:
		return true
	}
	return false
}

// Terminal indica si el estado no admite más transiciones.
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition indica si la transición s -> to está permitida.
func (s Status) CanTransition(to Status) bool {
	for _, next := range transitions[s] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition valida la transición s -> to. Devuelve ErrInvalidInput si to no
// es un estado conocido y ErrInvalidTransition si la máquina no la permite.
func (s Status) Transition(to Status) (Status, error) {
	if !to.Valid() {
		return s, ErrInvalidInput
	}
	if !s.CanTransition(to) {
		return s, ErrInvalidTransition
	}
	return to, nil
}
