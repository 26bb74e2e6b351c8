package models

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// DefaultCatalog returns the built-in bike catalog used to seed an empty
// products table. Order matters: catalog order is insertion order.
func DefaultCatalog() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Yamaha YZ450F",
			Price:       decimal.NewFromInt(8499),
			Category:    CategoryMotocross,
			Description: "Flagship 450 motocross racer with electric start and launch control.",
			Specs:       pq.StringArray{"Electric start", "Launch control", "KYB suspension"},
			Rating:      4.8,
			CC:          450,
			Stroke:      "4-stroke",
		},
		{
			ID:          2,
			Name:        "Kawasaki KX250",
			Price:       decimal.NewFromInt(6299),
			Category:    CategoryMotocross,
			Description: "Lightweight 250 four-stroke built for the pro motocross circuit.",
			Specs:       pq.StringArray{"Dual injectors", "Hydraulic clutch", "Adjustable ergonomics"},
			Rating:      4.5,
			CC:          249,
			Stroke:      "4-stroke",
		},
		{
			ID:          3,
			Name:        "Honda CRF250R",
			Price:       decimal.NewFromInt(5799),
			Category:    CategoryMotocross,
			Description: "Race-bred 250 with a twin-spar aluminum frame and strong mid-range.",
			Specs:       pq.StringArray{"Dual exhaust", "Showa suspension", "HRC launch control"},
			Rating:      4.4,
			CC:          249,
			Stroke:      "4-stroke",
		},
		{
			ID:          4,
			Name:        "KTM 85 SX",
			Price:       decimal.NewFromInt(3499),
			Category:    CategoryYouth,
			Description: "Serious youth racer with full-size components scaled down.",
			Specs:       pq.StringArray{"WP XACT forks", "Hydraulic clutch", "Low seat height"},
			Rating:      4.7,
			CC:          85,
			Stroke:      "2-stroke",
		},
		{
			ID:          5,
			Name:        "Beta RR 430",
			Price:       decimal.NewFromInt(7299),
			Category:    CategoryEnduro,
			Description: "Italian enduro machine with tractable power for technical terrain.",
			Specs:       pq.StringArray{"Trail Tech display", "Dual maps", "Sachs suspension"},
			Rating:      4.6,
			CC:          431,
			Stroke:      "4-stroke",
		},
		{
			ID:          6,
			Name:        "Husqvarna TE 300",
			Price:       decimal.NewFromInt(7899),
			Category:    CategoryEnduro,
			Description: "Two-stroke enduro with electronic fuel injection and a plush chassis.",
			Specs:       pq.StringArray{"TBI fuel injection", "Electric start", "Michelin enduro tires"},
			Rating:      4.5,
			CC:          293,
			Stroke:      "2-stroke",
		},
		{
			ID:          7,
			Name:        "Yamaha YZ85",
			Price:       decimal.NewFromInt(3899),
			Category:    CategoryYouth,
			Description: "Proven 85cc two-stroke for riders moving up from minis.",
			Specs:       pq.StringArray{"YPVS power valve", "Adjustable bars", "Race-ready gearing"},
			Rating:      4.3,
			CC:          85,
			Stroke:      "2-stroke",
		},
		{
			ID:          8,
			Name:        "Honda CRF450X",
			Price:       decimal.NewFromInt(7599),
			Category:    CategoryEnduro,
			Description: "Off-road 450 with a wide-ratio gearbox ready for long days on the trail.",
			Specs:       pq.StringArray{"18-inch rear wheel", "Sealed chain", "Large fuel tank"},
			Rating:      4.2,
			CC:          450,
			Stroke:      "4-stroke",
		},
	}
}
