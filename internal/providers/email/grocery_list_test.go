package email

import (
	"testing"

	grocerydomain "github.com/salesavor/salesavor/internal/grocerylist/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderGroceryList(t *testing.T) {
	sale := 4.49
	body, err := RenderGroceryList(GroceryListEmailData{
		UserName: "Sarah",
		GroceryList: grocerydomain.GroceryList{
			Items: []grocerydomain.GroceryListItem{
				{Ingredient: "Ground Beef (1 lb)", Quantity: "1.0 lb", StoreName: "Food Basics", Price: 6.99, IsOnSale: true, SalePrice: &sale},
				{Ingredient: "Rice (2 kg)", Quantity: "1.0 bag", StoreName: "Food Basics", Price: 5.99},
			},
			TotalCost:    10.48,
			TotalSavings: 2.50,
		},
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Hi Sarah")
	assert.Contains(t, body, "Ground Beef (1 lb)")
	assert.Contains(t, body, "$4.49")
	assert.Contains(t, body, "$5.99")
	assert.Contains(t, body, "$10.48")
	assert.Contains(t, body, "$2.50")
}

func TestRenderGroceryListDefaultsName(t *testing.T) {
	body, err := RenderGroceryList(GroceryListEmailData{})
	require.NoError(t, err)
	assert.Contains(t, body, "Hi there")
}
