package httperr

// Códigos de negocio que el front distingue. El resto de los
// códigos son ad-hoc por handler.
const (
	CodeClientNotFound      = "client_not_found"
	CodeInvalidSlot         = "invalid_slot"
	CodeAppointmentNotFound = "appointment_not_found"
)
