package vendors

import (
	"github.com/shopspring/decimal"

	"github.com/autonexhq/autonex-backend/pkg/enums"
	"github.com/autonexhq/autonex-backend/pkg/types"
)

// SeedVendors returns the initial vendor network, in display order.
func SeedVendors() []Vendor {
	return []Vendor{
		{
			ID:             "v1",
			Name:           "Precision Auto Works",
			Address:        "123 Mechanic Lane, Savannah, GA",
			ScadRate:       95,
			IsAlumniOwned:  true,
			IsParentOwned:  false,
			YearsInNetwork: 7,
			Services:       []string{"Mechanical", "Diagnostics"},
			Reviews: []types.Review{
				{Author: "Jane D.", Rating: 5, Comment: "Fast and reliable service!"},
				{Author: "John S.", Rating: 4, Comment: "Good work, a bit pricey."},
			},
		},
		{
			ID:             "v2",
			Name:           "Savannah Bumper & Glass",
			Address:        "456 Body Shop Blvd, Savannah, GA",
			ScadRate:       88,
			IsAlumniOwned:  false,
			IsParentOwned:  true,
			YearsInNetwork: 10,
			Services:       []string{"Body/Glass"},
			Reviews: []types.Review{
				{Author: "Emily R.", Rating: 5, Comment: "My car looks brand new!"},
			},
		},
		{
			ID:             "v3",
			Name:           "Quick Lube Express",
			Address:        "789 Oil Change Ave, Savannah, GA",
			ScadRate:       92,
			IsAlumniOwned:  false,
			IsParentOwned:  false,
			YearsInNetwork: 5,
			Services:       []string{"Quick Service"},
			Reviews: []types.Review{
				{Author: "Mike T.", Rating: 5, Comment: "In and out in 20 minutes."},
			},
		},
		{
			ID:             "v4",
			Name:           "Total Car Care",
			Address:        "101 Repair Row, Savannah, GA",
			ScadRate:       90,
			IsAlumniOwned:  true,
			IsParentOwned:  true,
			YearsInNetwork: 6,
			Services:       []string{"Mechanical", "Diagnostics", "Quick Service"},
			Reviews: []types.Review{
				{Author: "Sarah K.", Rating: 5, Comment: "They diagnosed a tricky issue other shops missed."},
				{Author: "David L.", Rating: 4, Comment: "Solid work, fair pricing."},
			},
		},
	}
}

// SeedCatalogs returns the per-vendor service catalogs. Not every vendor has
// one; v2 intentionally ships without a catalog record so the empty-catalog
// read path stays exercised.
func SeedCatalogs() []Catalog {
	price := decimal.RequireFromString

	return []Catalog{
		{
			VendorID: "v1",
			Items: []types.ServiceItem{
				{ID: "s1-v1", Name: "Brake Pad Replacement", Description: "Front axle pads, OEM-grade.", Price: price("189.99"), Category: enums.CategoryMechanical, WarrantyMonths: 12},
				{ID: "s2-v1", Name: "Engine Diagnostics", Description: "Full OBD-II scan with written report.", Price: price("89.50"), Category: enums.CategoryDiagnostics},
				{ID: "s3-v1", Name: "Timing Belt Replacement", Description: "Belt, tensioner and idler pulleys.", Price: price("449.00"), Category: enums.CategoryMechanical, WarrantyMonths: 24},
			},
			Bundles: []types.ServiceBundle{
				{
					ID:          "b1-v1",
					Name:        "Road Trip Ready",
					Description: "Pre-trip brake and engine check.",
					Items: []types.ServiceItem{
						{ID: "s1-v1", Name: "Brake Pad Replacement", Description: "Front axle pads, OEM-grade.", Price: price("189.99"), Category: enums.CategoryMechanical, WarrantyMonths: 12},
						{ID: "s2-v1", Name: "Engine Diagnostics", Description: "Full OBD-II scan with written report.", Price: price("89.50"), Category: enums.CategoryDiagnostics},
					},
				},
			},
		},
		{
			VendorID: "v3",
			Items: []types.ServiceItem{
				{ID: "s1-v3", Name: "Synthetic Oil Change", Description: "Full synthetic, up to 5 quarts.", Price: price("59.99"), Category: enums.CategoryQuickService, WarrantyMonths: 3},
				{ID: "s2-v3", Name: "Tire Rotation", Description: "All four wheels, torque to spec.", Price: price("29.99"), Category: enums.CategoryQuickService},
				{ID: "s3-v3", Name: "Cabin Air Filter", Description: "Filter swap, any make.", Price: price("24.50"), Category: enums.CategoryQuickService},
			},
			Bundles: []types.ServiceBundle{
				{
					ID:          "b1-v3",
					Name:        "Express Refresh",
					Description: "Oil change plus rotation in one visit.",
					Items: []types.ServiceItem{
						{ID: "s1-v3", Name: "Synthetic Oil Change", Description: "Full synthetic, up to 5 quarts.", Price: price("59.99"), Category: enums.CategoryQuickService, WarrantyMonths: 3},
						{ID: "s2-v3", Name: "Tire Rotation", Description: "All four wheels, torque to spec.", Price: price("29.99"), Category: enums.CategoryQuickService},
					},
				},
			},
		},
		{
			VendorID: "v4",
			Items: []types.ServiceItem{
				{ID: "s1-v4", Name: "Check Engine Diagnosis", Description: "Code pull plus root-cause inspection.", Price: price("99.00"), Category: enums.CategoryDiagnostics},
				{ID: "s2-v4", Name: "Alternator Replacement", Description: "Remanufactured unit, belt included.", Price: price("389.00"), Category: enums.CategoryMechanical, WarrantyMonths: 12},
				{ID: "s3-v4", Name: "Express Oil Change", Description: "Conventional blend, while you wait.", Price: price("44.99"), Category: enums.CategoryQuickService},
			},
		},
	}
}
