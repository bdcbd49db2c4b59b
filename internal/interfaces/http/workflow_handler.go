package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// WorkflowHandler reservas y asignaciones.
type WorkflowHandler struct {
	uc *servicebilling.WorkflowUseCase
}

// NewWorkflowHandler construye el handler.
func NewWorkflowHandler(uc *servicebilling.WorkflowUseCase) *WorkflowHandler {
	return &WorkflowHandler{uc: uc}
}

// ListBookings GET /api/service-billing/bookings?status=pending|all
func (h *WorkflowHandler) ListBookings(c *fiber.Ctx) error {
	rows, err := h.uc.ListBookings(c.UserContext(), c.Query("status"))
	return screenRead(c, "Bookings", rows, err, []entity.Booking{})
}

// ListUnassignedBookings GET /api/service-billing/bookings/unassigned
func (h *WorkflowHandler) ListUnassignedBookings(c *fiber.Ctx) error {
	rows, err := h.uc.ListUnassignedBookings(c.UserContext())
	return screenRead(c, "Bookings", rows, err, []entity.Booking{})
}

// CreateBooking POST /api/service-billing/bookings
func (h *WorkflowHandler) CreateBooking(c *fiber.Ctx) error {
	var in dto.BookingRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateBooking(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateBookingStatus PATCH /api/service-billing/bookings/:id/status
func (h *WorkflowHandler) UpdateBookingStatus(c *fiber.Ctx) error {
	var in dto.BookingStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateBookingStatus(c.UserContext(), paramID(c), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListAssignments GET /api/service-billing/assignments?status=
func (h *WorkflowHandler) ListAssignments(c *fiber.Ctx) error {
	rows, err := h.uc.ListAssignments(c.UserContext(), c.Query("status"))
	return screenRead(c, "Assignments", rows, err, []entity.Assignment{})
}

// CreateAssignment POST /api/service-billing/assignments
func (h *WorkflowHandler) CreateAssignment(c *fiber.Ctx) error {
	var in dto.AssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateAssignment(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CompleteAssignment PATCH /api/service-billing/assignments/:id/complete
func (h *WorkflowHandler) CompleteAssignment(c *fiber.Ctx) error {
	out, err := h.uc.CompleteAssignment(c.UserContext(), paramID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
