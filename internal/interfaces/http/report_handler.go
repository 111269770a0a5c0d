package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wcondori/api-saltenas/internal/application/analytics"
	"github.com/wcondori/api-saltenas/internal/application/dto"
)

// ReportHandler maneja los reportes del Dashboard gerencial.
type ReportHandler struct {
	reports *analytics.ReportUseCase
	pdf     *analytics.InventoryPDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *analytics.ReportUseCase, pdf *analytics.InventoryPDFUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, pdf: pdf}
}

// Mensual godoc
// @Summary      Reporte mensual: fecha (YYYY-MM) -> serie -> unidades
// @Tags         admin
// @Produce      json
// @Param        limite  query  int  false  "Solo los N meses más recientes"
// @Success      200  {object}  dto.ReportMatrix
// @Router       /admin/reportes/mensual [get]
func (h *ReportHandler) Mensual(c *fiber.Ctx) error {
	return h.aggregate(c, analytics.GranularityMonthly)
}

// Diario godoc
// @Summary      Reporte diario: fecha (YYYY-MM-DD) -> serie -> unidades
// @Tags         admin
// @Produce      json
// @Param        limite  query  int  false  "Solo los N días más recientes"
// @Success      200  {object}  dto.ReportMatrix
// @Router       /admin/reportes/diario [get]
func (h *ReportHandler) Diario(c *fiber.Ctx) error {
	return h.aggregate(c, analytics.GranularityDaily)
}

func (h *ReportHandler) aggregate(c *fiber.Ctx, g analytics.Granularity) error {
	lastN := c.QueryInt("limite", 0)
	matrix, err := h.reports.Aggregate(g, lastN)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(matrix)
}

// PDF godoc
// @Summary      Reporte de inventario imprimible
// @Tags         admin
// @Produce      application/pdf
// @Success      200  {file}  binary
// @Router       /admin/reportes/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	data, err := h.pdf.Generate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="inventario.pdf"`)
	return c.Send(data)
}
