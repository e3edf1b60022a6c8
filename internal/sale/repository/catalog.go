package repository

import "github.com/salesavor/salesavor/internal/sale/domain"

type catalog struct {
	items []domain.SaleItem
}

func Provide() domain.Catalog {
	return &catalog{items: []domain.SaleItem{
		{Name: "Ground Beef (1 lb)", OriginalPrice: 6.99, SalePrice: 4.99, DiscountPercentage: 29, Category: "Meat", Unit: "lb"},
		{Name: "Chicken Breast (1 lb)", OriginalPrice: 8.99, SalePrice: 5.99, DiscountPercentage: 33, Category: "Meat", Unit: "lb"},
		{Name: "Pasta (500g)", OriginalPrice: 2.49, SalePrice: 1.49, DiscountPercentage: 40, Category: "Pantry", Unit: "package"},
		{Name: "Tomatoes (1 lb)", OriginalPrice: 3.99, SalePrice: 2.49, DiscountPercentage: 38, Category: "Produce", Unit: "lb"},
		{Name: "Onions (3 lb bag)", OriginalPrice: 4.49, SalePrice: 2.99, DiscountPercentage: 33, Category: "Produce", Unit: "bag"},
		{Name: "Rice (2 kg)", OriginalPrice: 5.99, SalePrice: 3.99, DiscountPercentage: 33, Category: "Pantry", Unit: "bag"},
		{Name: "Canned Tomatoes (796ml)", OriginalPrice: 1.99, SalePrice: 1.29, DiscountPercentage: 35, Category: "Pantry", Unit: "can"},
		{Name: "Bell Peppers (each)", OriginalPrice: 2.99, SalePrice: 1.99, DiscountPercentage: 33, Category: "Produce", Unit: "each"},
		{Name: "Carrots (2 lb bag)", OriginalPrice: 2.99, SalePrice: 1.99, DiscountPercentage: 33, Category: "Produce", Unit: "bag"},
		{Name: "Potatoes (5 lb bag)", OriginalPrice: 4.99, SalePrice: 2.99, DiscountPercentage: 40, Category: "Produce", Unit: "bag"},
	}}
}

func (c *catalog) Items() []domain.SaleItem {
	out := make([]domain.SaleItem, len(c.items))
	copy(out, c.items)
	return out
}
