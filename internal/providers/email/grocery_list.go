package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	grocerydomain "github.com/salesavor/salesavor/internal/grocerylist/domain"
)

//go:embed templates/*.html
var templatesFS embed.FS

var groceryListTmpl = template.Must(template.ParseFS(templatesFS, "templates/grocery_list.html"))

type groceryListRow struct {
	Ingredient string
	Quantity   string
	StoreName  string
	Price      string
}

type groceryListView struct {
	UserName     string
	Rows         []groceryListRow
	TotalCost    string
	TotalSavings string
}

type GroceryListEmailData struct {
	UserName    string
	GroceryList grocerydomain.GroceryList
}

// RenderGroceryList produces the HTML body for the shopping list email.
func RenderGroceryList(data GroceryListEmailData) (string, error) {
	view := groceryListView{
		UserName:     data.UserName,
		TotalCost:    fmt.Sprintf("%.2f", data.GroceryList.TotalCost),
		TotalSavings: fmt.Sprintf("%.2f", data.GroceryList.TotalSavings),
	}
	if view.UserName == "" {
		view.UserName = "there"
	}

	for _, item := range data.GroceryList.Items {
		price := item.Price
		if item.SalePrice != nil {
			price = *item.SalePrice
		}
		view.Rows = append(view.Rows, groceryListRow{
			Ingredient: item.Ingredient,
			Quantity:   item.Quantity,
			StoreName:  item.StoreName,
			Price:      fmt.Sprintf("%.2f", price),
		})
	}

	var body bytes.Buffer
	if err := groceryListTmpl.Execute(&body, view); err != nil {
		return "", fmt.Errorf("render grocery list email: %w", err)
	}

	return body.String(), nil
}
