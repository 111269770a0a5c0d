package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wcondori/api-saltenas/internal/application/analytics"
	"github.com/wcondori/api-saltenas/internal/application/inventory"
	"github.com/wcondori/api-saltenas/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC    *usecase.ProductUseCase
	StockUC      *inventory.StockUseCase
	RecordUC     *inventory.RecordMovementUseCase
	ReportUC     *analytics.ReportUseCase
	InventoryPDF *analytics.InventoryPDFUseCase
	JWTSecret    string
}

// Router registra las rutas de la API. Las rutas viven en la raíz (sin prefijo
// /api): es el formato que los escáneres desplegados ya consumen.
func Router(app *fiber.App, deps RouterDeps) {
	inventoryHandler := NewInventoryHandler(deps.StockUC, deps.RecordUC)

	// Rutas del escáner (la app de empleado autentica contra el proveedor
	// externo; el API las deja públicas como el backend original)
	app.Get("/inventario", inventoryHandler.GetInventario)
	app.Post("/registrar-movimiento", inventoryHandler.RegistrarMovimiento)

	// Rutas de administración (Dashboard gerencial); Bearer Token del
	// proveedor externo cuando hay secret configurado
	admin := app.Group("/admin", AuthMiddleware(deps.JWTSecret))

	productHandler := NewProductHandler(deps.ProductUC)
	admin.Post("/productos", productHandler.Create)
	admin.Put("/productos/:id", productHandler.Update)
	admin.Delete("/productos/:id", productHandler.Delete)

	reportHandler := NewReportHandler(deps.ReportUC, deps.InventoryPDF)
	admin.Get("/reportes/mensual", reportHandler.Mensual)
	admin.Get("/reportes/diario", reportHandler.Diario)
	admin.Get("/reportes/pdf", reportHandler.PDF)
}
