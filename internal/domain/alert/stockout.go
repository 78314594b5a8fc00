package alert

import "github.com/shopspring/decimal"

// ClampDailySales aplica el piso de 1 a las ventas diarias promedio.
// Es un clamp deliberado, no una corrección de datos: garantiza una
// proyección finita y sin división por cero, a costa de sesgar hacia
// arriba (agotamiento aparente más lento) la proyección de productos
// de rotación lenta que aún cuentan como "recientes".
func ClampDailySales(avgDailySales decimal.Decimal) decimal.Decimal {
	one := decimal.NewFromInt(1)
	if avgDailySales.LessThan(one) {
		return one
	}
	return avgDailySales
}

// DaysUntilStockout proyecta los días completos que dura la cantidad
// actual al ritmo de ventas ya clampado. División entera: el residuo se
// descarta, la proyección es cota inferior ("alcanza al menos N días").
func DaysUntilStockout(quantity int64, dailySales decimal.Decimal) int64 {
	if quantity <= 0 {
		return 0
	}
	return decimal.NewFromInt(quantity).Div(dailySales).Floor().IntPart()
}
