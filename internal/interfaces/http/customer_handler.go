package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/application/servicebilling"
	"github.com/jhoicas/bizdash/internal/domain/entity"
)

// CatalogHandler servicios, clientes y empleados del negocio de servicios.
type CatalogHandler struct {
	uc *servicebilling.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *servicebilling.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

func paramID(c *fiber.Ctx) entity.ID { return entity.ID(c.Params("id")) }

// ── servicios ──

// ListServices GET /api/service-billing/services
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	rows, err := h.uc.ListServices(c.UserContext())
	return screenRead(c, "Services", rows, err, []entity.Service{})
}

// CreateService POST /api/service-billing/services
func (h *CatalogHandler) CreateService(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateService(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateService PUT /api/service-billing/services/:id
func (h *CatalogHandler) UpdateService(c *fiber.Ctx) error {
	var in dto.ServiceRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateService(c.UserContext(), paramID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteService DELETE /api/service-billing/services/:id
func (h *CatalogHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.uc.DeleteService(c.UserContext(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── clientes ──

// ListCustomers GET /api/service-billing/customers?search=
func (h *CatalogHandler) ListCustomers(c *fiber.Ctx) error {
	rows, err := h.uc.ListCustomers(c.UserContext(), c.Query("search"))
	return screenRead(c, "Customers", rows, err, []entity.Customer{})
}

// CreateCustomer POST /api/service-billing/customers
func (h *CatalogHandler) CreateCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateCustomer(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateCustomer PUT /api/service-billing/customers/:id
func (h *CatalogHandler) UpdateCustomer(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateCustomer(c.UserContext(), paramID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteCustomer DELETE /api/service-billing/customers/:id
func (h *CatalogHandler) DeleteCustomer(c *fiber.Ctx) error {
	if err := h.uc.DeleteCustomer(c.UserContext(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ── empleados ──

// ListEmployees GET /api/service-billing/employees
func (h *CatalogHandler) ListEmployees(c *fiber.Ctx) error {
	rows, err := h.uc.ListEmployees(c.UserContext())
	return screenRead(c, "Employees", rows, err, []entity.Employee{})
}

// CreateEmployee POST /api/service-billing/employees
func (h *CatalogHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateEmployee(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEmployee PUT /api/service-billing/employees/:id
func (h *CatalogHandler) UpdateEmployee(c *fiber.Ctx) error {
	var in dto.EmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.UpdateEmployee(c.UserContext(), paramID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteEmployee DELETE /api/service-billing/employees/:id
func (h *CatalogHandler) DeleteEmployee(c *fiber.Ctx) error {
	if err := h.uc.DeleteEmployee(c.UserContext(), paramID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
