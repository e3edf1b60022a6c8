package repository

import (
	"github.com/gosimple/slug"
	"github.com/salesavor/salesavor/internal/store/domain"
)

type directory struct {
	stores []domain.StoreLocation
}

// Provide builds the static directory of Toronto-area grocery stores.
func Provide() domain.Directory {
	return &directory{stores: buildStores()}
}

func (d *directory) All() []domain.StoreLocation {
	out := make([]domain.StoreLocation, len(d.stores))
	copy(out, d.stores)
	return out
}

func buildStores() []domain.StoreLocation {
	stores := []domain.StoreLocation{
		{
			Name:      "Loblaws Superstore",
			Chain:     "Loblaws",
			Address:   "123 King Street, Toronto, ON",
			Latitude:  43.6532,
			Longitude: -79.3832,
			Phone:     "(416) 555-0123",
			FlyerURL:  "https://www.loblaws.ca/print-flyer",
			LogoURL:   "https://cdn.salesavor.app/logos/loblaws.png",
		},
		{
			Name:      "Metro Plus",
			Chain:     "Metro",
			Address:   "456 Queen Street, Toronto, ON",
			Latitude:  43.6542,
			Longitude: -79.3822,
			Phone:     "(416) 555-0124",
			FlyerURL:  "https://www.metro.ca/en/flyer",
			LogoURL:   "https://cdn.salesavor.app/logos/metro.png",
		},
		{
			Name:      "Food Basics",
			Chain:     "Food Basics",
			Address:   "789 Dundas Street, Toronto, ON",
			Latitude:  43.6552,
			Longitude: -79.3812,
			Phone:     "(416) 555-0125",
			PriceMatchPolicy: domain.PriceMatchPolicy{
				HasPriceMatch:      true,
				PolicyName:         "Price Match Plus",
				Description:        "Matches any local competitor's advertised price and beats it by 10%",
				Conditions:         []string{"Printed or digital flyer required", "Identical item and size"},
				MatchPercentage:    100,
				AdditionalDiscount: 10,
			},
			FlyerURL: "https://www.foodbasics.ca/flyer",
			LogoURL:  "https://cdn.salesavor.app/logos/foodbasics.png",
		},
		{
			Name:      "Walmart Supercentre",
			Chain:     "Walmart",
			Address:   "321 Bloor Street, Toronto, ON",
			Latitude:  43.6562,
			Longitude: -79.3802,
			Phone:     "(416) 555-0126",
			PriceMatchPolicy: domain.PriceMatchPolicy{
				HasPriceMatch:       true,
				PolicyName:          "Ad Match",
				Description:         "Matches local competitors' advertised prices on identical items",
				Conditions:          []string{"Current local flyer required", "Identical item, brand and size"},
				ExcludedCompetitors: []string{"Costco"},
				MatchPercentage:     100,
				AdditionalDiscount:  0,
			},
			FlyerURL: "https://www.walmart.ca/flyer",
			LogoURL:  "https://cdn.salesavor.app/logos/walmart.png",
		},
		{
			Name:      "Sobeys Urban Fresh",
			Chain:     "Sobeys",
			Address:   "654 College Street, Toronto, ON",
			Latitude:  43.6572,
			Longitude: -79.3792,
			Phone:     "(416) 555-0127",
			FlyerURL:  "https://www.sobeys.com/en/flyer",
			LogoURL:   "https://cdn.salesavor.app/logos/sobeys.png",
		},
		{
			Name:      "Costco Wholesale",
			Chain:     "Costco",
			Address:   "987 Yonge Street, Toronto, ON",
			Latitude:  43.6582,
			Longitude: -79.3782,
			Phone:     "(416) 555-0128",
			FlyerURL:  "https://www.costco.ca/coupons",
			LogoURL:   "https://cdn.salesavor.app/logos/costco.png",
		},
		{
			Name:      "FreshMart",
			Chain:     "FreshMart",
			Address:   "147 Spadina Avenue, Toronto, ON",
			Latitude:  43.6592,
			Longitude: -79.3772,
			Phone:     "(416) 555-0129",
			PriceMatchPolicy: domain.PriceMatchPolicy{
				HasPriceMatch:      true,
				PolicyName:         "Fresh Price Promise",
				Description:        "Matches competitor produce prices and adds 5% off the matched price",
				Conditions:         []string{"Produce and pantry items only"},
				MatchPercentage:    100,
				AdditionalDiscount: 5,
			},
			FlyerURL: "https://www.freshmart.ca/weekly-deals",
			LogoURL:  "https://cdn.salesavor.app/logos/freshmart.png",
		},
		{
			Name:      "ValueMart",
			Chain:     "ValueMart",
			Address:   "258 Bathurst Street, Toronto, ON",
			Latitude:  43.6602,
			Longitude: -79.3762,
			Phone:     "(416) 555-0130",
			PriceMatchPolicy: domain.PriceMatchPolicy{
				HasPriceMatch:      true,
				PolicyName:         "Value Match",
				Description:        "Matches any advertised grocery price from stores within 10 km",
				Conditions:         []string{"Flyer must be from the current week"},
				MatchPercentage:    100,
				AdditionalDiscount: 0,
			},
			FlyerURL: "https://www.valuemart.ca/flyer",
			LogoURL:  "https://cdn.salesavor.app/logos/valuemart.png",
		},
	}

	for i := range stores {
		stores[i].ID = slug.Make(stores[i].Name)
	}

	return stores
}
