package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/candy-store-api/internal/domain/filter"
)

func fields(m map[string]string) func(string) string {
	return func(f string) string { return m[f] }
}

func TestBuild_SinParametros_CriteriaVacio(t *testing.T) {
	crit := filter.Build(map[string]string{}, filter.StoreBindings)
	assert.True(t, crit.IsEmpty())
	assert.True(t, crit.Match(fields(map[string]string{"name": "lo que sea"})))
}

func TestBuild_IgnoraParametrosNoReconocidos(t *testing.T) {
	crit := filter.Build(map[string]string{"foo": "bar", "limit": "10"}, filter.StoreBindings)
	assert.True(t, crit.IsEmpty())
}

func TestBuild_ParametroVacioNoRestringe(t *testing.T) {
	crit := filter.Build(map[string]string{"name": "", "city": "any"}, filter.StoreBindings)
	require.Len(t, crit.Conditions, 1)
	assert.Equal(t, "city", crit.Conditions[0].Field)
}

func TestBuild_MapeaParametroACampo(t *testing.T) {
	crit := filter.Build(map[string]string{"container": "box"}, filter.CandyBindings)
	require.Len(t, crit.Conditions, 1)
	assert.Equal(t, filter.Condition{Field: "shipping_container", Op: filter.OpContains, Value: "box"}, crit.Conditions[0])
}

// El alias phone filtra phone_number con su propio valor.
func TestBuild_AliasPhoneUsaSuPropioValor(t *testing.T) {
	crit := filter.Build(map[string]string{"phone": "555"}, filter.StoreBindings)
	require.Len(t, crit.Conditions, 1)
	assert.Equal(t, "phone_number", crit.Conditions[0].Field)
	assert.Equal(t, "555", crit.Conditions[0].Value)
}

func TestBuild_CampoDuplicado_GanaPrimerBinding(t *testing.T) {
	crit := filter.Build(map[string]string{"phone_number": "867", "phone": "555"}, filter.StoreBindings)
	require.Len(t, crit.Conditions, 1)
	assert.Equal(t, "867", crit.Conditions[0].Value)
}

func TestMatch_SubcadenaSinMayusculas(t *testing.T) {
	store := fields(map[string]string{"name": "Test Store 1", "city": "Anytown"})

	assert.True(t, filter.Build(map[string]string{"name": "test"}, filter.StoreBindings).Match(store))
	assert.True(t, filter.Build(map[string]string{"name": "STORE 1"}, filter.StoreBindings).Match(store))
	assert.True(t, filter.Build(map[string]string{"name": "test", "city": "town"}, filter.StoreBindings).Match(store))
	assert.False(t, filter.Build(map[string]string{"name": "test", "city": "Nowhere"}, filter.StoreBindings).Match(store))
	assert.False(t, filter.Build(map[string]string{"city": "Nowhere"}, filter.StoreBindings).Match(store))
}

func TestMatch_PlegadoSimple(t *testing.T) {
	// Caso 1: plegado simple entre variantes de una misma letra.
	greek := fields(map[string]string{"name": "ΣΑΣ"})
	assert.True(t, filter.Build(map[string]string{"name": "σας"}, filter.StoreBindings).Match(greek))
	assert.True(t, filter.Build(map[string]string{"name": "ÁRBOL"}, filter.StoreBindings).
		Match(fields(map[string]string{"name": "Dulces del árbol"})))

	// Caso 2: sin expansiones de plegado completo.
	street := fields(map[string]string{"name": "Straße Sweets"})
	assert.False(t, filter.Build(map[string]string{"name": "strasse"}, filter.StoreBindings).Match(street))
	assert.True(t, filter.Build(map[string]string{"name": "STRAßE"}, filter.StoreBindings).Match(street))
}

func TestMatch_ValorLiteral_NoRegex(t *testing.T) {
	rec := fields(map[string]string{"website": "http://teststore1.com"})
	assert.False(t, filter.Build(map[string]string{"website": "teststore1.c.m"}, filter.StoreBindings).Match(rec))
	assert.True(t, filter.Build(map[string]string{"website": "store1.com"}, filter.StoreBindings).Match(rec))
}

func TestEqual_AgregaIgualdadExacta(t *testing.T) {
	base := filter.Build(map[string]string{"status": "pend"}, filter.OrderBindings)
	crit := base.Equal(filter.OrderOwnerField, "u1")

	require.Len(t, crit.Conditions, 2)
	assert.Len(t, base.Conditions, 1, "Equal no debe modificar el original")

	assert.True(t, crit.Match(fields(map[string]string{"status": "pending", "customerId": "u1"})))
	assert.False(t, crit.Match(fields(map[string]string{"status": "pending", "customerId": "U1"})))
	assert.False(t, crit.Match(fields(map[string]string{"status": "pending", "customerId": "u2"})))
}
