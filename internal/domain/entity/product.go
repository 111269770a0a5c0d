package entity

import (
	"time"

	"golang.org/x/text/cases"
)

// Conversión por defecto al crear un producto sin configuración explícita.
const (
	DefaultUnitsPerTray = 30 // unidades que entran por 1 bandeja de producción
	DefaultUnitsPerBag  = 10 // unidades que salen por 1 bolsa vendida
)

// Product representa un sabor de salteña controlado por el inventario.
// Name es la llave visible que viaja en los códigos QR; la resolución es
// case-insensitive. Stock no se guarda aquí: se deriva del libro de movimientos.
type Product struct {
	ID           string
	Name         string // único (case-insensitive); no se renombra, solo crear/borrar
	MinStock     int    // umbral de alerta, en unidades
	UnitsPerTray int    // unidades por bandeja (entrada)
	UnitsPerBag  int    // unidades por bolsa (salida)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FoldName normaliza un nombre de producto para comparación case-insensitive
// (case folding Unicode, no un simple ToLower ASCII: "POLLO PICANTE" == "pollo picante").
// Un cases.Caser mantiene estado interno, por eso se construye en cada llamada.
func FoldName(name string) string {
	return cases.Fold().String(name)
}
