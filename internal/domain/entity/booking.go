package entity

// Estados de una reserva.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingAssigned  = "assigned"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

// ValidBookingStatus indica si s es un estado de reserva conocido.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingAssigned, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking cita futura pendiente de asignar personal.
type Booking struct {
	ID         ID        `json:"id"`
	CustomerID ID        `json:"customer_id"`
	Customer   *Customer `json:"customer,omitempty"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Time       string    `json:"time"` // HH:MM
	Services   []Service `json:"services"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
}

// Unassigned indica si la reserva puede pasar a asignación.
func (b *Booking) Unassigned() bool {
	return b.Status == BookingPending || b.Status == BookingConfirmed
}
