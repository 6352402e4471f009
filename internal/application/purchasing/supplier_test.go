package purchasing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/textil-api/internal/application/purchasing"
)

// La forma normalizada es determinista: trim, espacios colapsados y case
// folding Unicode. Variantes del mismo nombre producen la misma clave.
func TestNormalizeSupplierName_FormasEquivalentes(t *testing.T) {
	base := purchasing.NormalizeSupplierName("Textiles del Norte")
	variantes := []string{
		"  Textiles del Norte  ",
		"textiles del norte",
		"TEXTILES   DEL   NORTE",
		"Textiles\tdel\nNorte",
	}
	for _, v := range variantes {
		assert.Equal(t, base, purchasing.NormalizeSupplierName(v), "entrada %q", v)
	}
}

// Nombres distintos producen claves distintas.
func TestNormalizeSupplierName_NombresDistintos(t *testing.T) {
	a := purchasing.NormalizeSupplierName("Textiles del Norte")
	b := purchasing.NormalizeSupplierName("Textiles del Sur")
	assert.NotEqual(t, a, b)
}

// El case folding maneja acentos y mayúsculas no ASCII.
func TestNormalizeSupplierName_Unicode(t *testing.T) {
	a := purchasing.NormalizeSupplierName("Confecciones Muñoz")
	b := purchasing.NormalizeSupplierName("CONFECCIONES MUÑOZ")
	assert.Equal(t, a, b)
}

// Solo espacios: forma vacía.
func TestNormalizeSupplierName_Vacio(t *testing.T) {
	assert.Equal(t, "", purchasing.NormalizeSupplierName("   "))
	assert.Equal(t, "", purchasing.NormalizeSupplierName(""))
}

// El nombre para mostrar conserva mayúsculas y acentos, solo limpia espacios.
func TestNormalizeDisplayName(t *testing.T) {
	assert.Equal(t, "Confecciones Muñoz", purchasing.NormalizeDisplayName("  Confecciones   Muñoz "))
}
