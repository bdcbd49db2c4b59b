package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/application/dto"
)

func TestOverviewReport_ClavesAlternativas(t *testing.T) {
	var a, b dto.OverviewReport
	require.NoError(t, json.Unmarshal([]byte(`{
		"totalSales": 50000,
		"monthlyData": [{"month":"Jan","sales":100}],
		"topProducts": [{"name":"Wax","unitsSold":"12","revenue":3000}]
	}`), &a))
	require.NoError(t, json.Unmarshal([]byte(`{
		"total_sales": "50000",
		"monthly": [{"label":"Jan","revenue":"100"}],
		"top_products": [{"product_name":"Wax","quantity":12,"total_revenue":"3000"}]
	}`), &b))

	for _, r := range []dto.OverviewReport{a, b} {
		assert.Equal(t, "50000", r.TotalSales.String())
		require.Len(t, r.Monthly, 1)
		assert.Equal(t, "Jan", r.Monthly[0].Month)
		assert.Equal(t, "100", r.Monthly[0].Sales.String())
		require.Len(t, r.TopProducts, 1)
		assert.Equal(t, "Wax", r.TopProducts[0].Name)
		assert.Equal(t, "12", r.TopProducts[0].UnitsSold.String())
	}
}

func TestOverviewReport_FaltantesConDefaults(t *testing.T) {
	var r dto.OverviewReport
	require.NoError(t, json.Unmarshal([]byte(`{"totalSales": null, "monthly": null, "salesGrowth": "n/a"}`), &r))
	assert.True(t, r.TotalSales.IsZero())
	assert.True(t, r.SalesGrowth.IsZero())
	assert.NotNil(t, r.Monthly)
	assert.Empty(t, r.Monthly)
	assert.NotNil(t, r.TopProducts)
}

func TestInventoryReport_Items(t *testing.T) {
	var r dto.InventoryReport
	require.NoError(t, json.Unmarshal([]byte(`{
		"turnoverRatio": "6.2",
		"products": [{"id": 4, "productName": "Gel", "currentStock": "3", "minStock": 5, "sellingPrice": 450}]
	}`), &r))
	require.Len(t, r.Items, 1)
	it := r.Items[0]
	assert.Equal(t, "4", it.ID)
	assert.Equal(t, "Gel", it.Name)
	assert.Equal(t, "3", it.Quantity.String())
	assert.Equal(t, "5", it.ReorderLevel.String())
	assert.Equal(t, "450", it.Price.String())
	assert.Equal(t, "6.2", r.TurnoverRatio.String())
}

func TestKES(t *testing.T) {
	m := dto.KES(mustDecimal(t, "50000"))
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"50000","display":"KES 50,000"}`, string(b))
}
