package dto

// ReportMatrix es la matriz de reportes que consume la gráfica apilada:
// fecha (YYYY-MM o YYYY-MM-DD) -> serie ("Entrada: Pollo", "Salida: Pollo") ->
// unidades (magnitud, sin signo). Las llaves ISO ordenan cronológicamente.
type ReportMatrix map[string]map[string]int
