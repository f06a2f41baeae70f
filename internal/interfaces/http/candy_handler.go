package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/candy-store-api/internal/application/dto"
	"github.com/jhoicas/candy-store-api/internal/application/usecase"
	"github.com/jhoicas/candy-store-api/pkg/logger"
)

// CandyHandler maneja las peticiones HTTP del catálogo de dulces.
type CandyHandler struct {
	uc  *usecase.CandyUseCase
	log *logger.Logger
}

// NewCandyHandler construye el handler.
func NewCandyHandler(uc *usecase.CandyUseCase, log *logger.Logger) *CandyHandler {
	return &CandyHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar dulces
// @Description  Filtros opcionales por subcadena sin distinguir mayúsculas.
// @Tags         candy
// @Produce      json
// @Param        name              query  string  false  "Nombre"
// @Param        description       query  string  false  "Descripción"
// @Param        container         query  string  false  "Contenedor de envío"
// @Param        shipping_container query string  false  "Contenedor de envío"
// @Param        supplier_name     query  string  false  "Proveedor"
// @Success      200  {array}   dto.CandyResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/candy [get]
func (h *CandyHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Queries())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener dulce por ID
// @Tags         candy
// @Produce      json
// @Param        id   path  string  true  "ID del dulce"
// @Success      200  {object}  dto.CandyResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candy/{id} [get]
func (h *CandyHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear dulce
// @Tags         candy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCandyRequest  true  "Datos del dulce"
// @Success      201   {object}  dto.CandyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/candy [post]
func (h *CandyHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCandyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), requester(c), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar dulce
// @Description  Merge parcial: solo cambian los campos enviados.
// @Tags         candy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del dulce"
// @Param        body  body  dto.UpdateCandyRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.CandyResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/candy/{id} [put]
func (h *CandyHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateCandyRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dulce
// @Tags         candy
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del dulce"
// @Success      200  {object}  dto.DeleteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/candy/{id} [delete]
func (h *CandyHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.DeleteResponse{Message: "dulce eliminado", DeletedID: id})
}
