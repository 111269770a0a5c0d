package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wcondori/api-saltenas/internal/application/dto"
	"github.com/wcondori/api-saltenas/internal/application/inventory"
	"github.com/wcondori/api-saltenas/internal/domain"
	"github.com/wcondori/api-saltenas/internal/domain/entity"
)

// InventoryHandler maneja las rutas que consume el escáner: inventario con
// stock derivado y registro de movimientos.
type InventoryHandler struct {
	stock  *inventory.StockUseCase
	record *inventory.RecordMovementUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(stock *inventory.StockUseCase, record *inventory.RecordMovementUseCase) *InventoryHandler {
	return &InventoryHandler{stock: stock, record: record}
}

// GetInventario godoc
// @Summary      Inventario con stock derivado del libro de movimientos
// @Tags         inventario
// @Produce      json
// @Success      200  {array}  dto.InventarioItem
// @Router       /inventario [get]
func (h *InventoryHandler) GetInventario(c *fiber.Ctx) error {
	items, err := h.stock.Inventario()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(items)
}

// RegistrarMovimiento godoc
// @Summary      Registrar un movimiento por escaneo QR
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarMovimientoRequest  true  "producto_nombre, cantidad (piezas escaneadas), tipo"
// @Success      201   {object}  dto.MovimientoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /registrar-movimiento [post]
func (h *InventoryHandler) RegistrarMovimiento(c *fiber.Ctx) error {
	var in dto.RegistrarMovimientoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	mov, err := h.record.RecordFromRequest(c.Context(), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado: revise el nombre exacto del QR"})
		}
		if err == domain.ErrInvalidQuantity {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "la cantidad escaneada debe ser mayor a cero"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser PRODUCCION o VENTA"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimientoResponse(mov))
}

func toMovimientoResponse(m *entity.Movement) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:         m.ID,
		ProductoID: m.ProductID,
		Cantidad:   m.Quantity,
		Tipo:       m.Type,
		Fecha:      m.Date,
	}
}
