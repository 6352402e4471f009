// Package costing implementa el costeo promedio ponderado del inventario
// (servicio de dominio, sin dependencias de infraestructura).
package costing

import "github.com/shopspring/decimal"

// AverageCost recalcula el costo promedio ponderado tras una entrada.
// NuevoCosto = ((SaldoActual * CostoActual) + (CantEntrada * CostoEntrada)) / (SaldoActual + CantEntrada)
// Con saldo resultante cero o negativo devuelve cero. Las salidas no alteran
// el promedio: solo reducen cantidad, valoradas al promedio vigente.
func AverageCost(currentQty, currentCost, inQty, inCost decimal.Decimal) decimal.Decimal {
	sum := currentQty.Add(inQty)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := currentQty.Mul(currentCost).Add(inQty.Mul(inCost))
	return num.Div(sum)
}
