package mockapi

import "github.com/toolshop-qa/api-test-harness/apidef"

const (
	brandForgeFlex   = 1
	brandMightyCraft = 2

	categoryHandTools  = 1
	categoryPowerTools = 2
	categoryHammer     = 3
	categoryHandSaw    = 4
	categoryWrench     = 5
	categoryPliers     = 6
	categoryDrill      = 7
	categorySander     = 8
)

func seedBrands() []apidef.Brand {
	return []apidef.Brand{
		{ID: brandForgeFlex, Name: "ForgeFlex Tools", Slug: "forgeflex-tools"},
		{ID: brandMightyCraft, Name: "MightyCraft Hardware", Slug: "mightycraft-hardware"},
	}
}

func seedCategories() map[int]apidef.Category {
	parent := func(id int) *int { return &id }
	return map[int]apidef.Category{
		categoryHandTools:  {ID: categoryHandTools, Name: "Hand Tools", Slug: "hand-tools"},
		categoryPowerTools: {ID: categoryPowerTools, Name: "Power Tools", Slug: "power-tools"},
		categoryHammer:     {ID: categoryHammer, ParentID: parent(categoryHandTools), Name: "Hammer", Slug: "hammer"},
		categoryHandSaw:    {ID: categoryHandSaw, ParentID: parent(categoryHandTools), Name: "Hand Saw", Slug: "hand-saw"},
		categoryWrench:     {ID: categoryWrench, ParentID: parent(categoryHandTools), Name: "Wrench", Slug: "wrench"},
		categoryPliers:     {ID: categoryPliers, ParentID: parent(categoryHandTools), Name: "Pliers", Slug: "pliers"},
		categoryDrill:      {ID: categoryDrill, ParentID: parent(categoryPowerTools), Name: "Drill", Slug: "drill"},
		categorySander:     {ID: categorySander, ParentID: parent(categoryPowerTools), Name: "Sander", Slug: "sander"},
	}
}

type productSeed struct {
	name       string
	price      float64
	brandID    int
	categoryID int
	image      string
	rental     bool
}

// Prices all have a fractional part, so they serialize as JSON floats.
var productSeeds = []productSeed{ //nolint:gochecknoglobals
	{"Combination Pliers", 14.15, brandForgeFlex, categoryPliers, "pliers01.avif", false},
	{"Pliers", 12.01, brandForgeFlex, categoryPliers, "pliers02.avif", false},
	{"Bolt Cutters", 48.41, brandMightyCraft, categoryPliers, "pliers03.avif", false},
	{"Long Nose Pliers", 14.24, brandMightyCraft, categoryPliers, "pliers04.avif", false},
	{"Claw Hammer with Shock Reduction Grip", 13.41, brandForgeFlex, categoryHammer, "hammer01.avif", false},
	{"Hammer", 12.58, brandForgeFlex, categoryHammer, "hammer02.avif", false},
	{"Thor Hammer", 11.14, brandMightyCraft, categoryHammer, "hammer03.avif", false},
	{"Sledgehammer", 17.75, brandMightyCraft, categoryHammer, "hammer04.avif", false},
	{"Wood Saw", 12.18, brandForgeFlex, categoryHandSaw, "saw01.avif", false},
	{"Adjustable Wrench", 20.33, brandMightyCraft, categoryWrench, "wrench01.avif", false},
	{"Open-end Spanners (Set)", 38.51, brandForgeFlex, categoryWrench, "wrench02.avif", false},
	{"Cordless Drill 24V", 66.54, brandForgeFlex, categoryDrill, "drill01.avif", false},
	{"Sheet Sander", 58.48, brandMightyCraft, categorySander, "sander01.avif", false},
	{"Excavator", 136.5, brandMightyCraft, categoryPowerTools, "rental01.avif", true},
}

func seedProducts() []apidef.Product {
	brands := make(map[int]apidef.Brand)
	for _, b := range seedBrands() {
		brands[b.ID] = b
	}
	categories := seedCategories()
	ret := make([]apidef.Product, 0, len(productSeeds))
	for i, ps := range productSeeds {
		id := i + 1
		brand := brands[ps.brandID]
		category := categories[ps.categoryID]
		ret = append(ret, apidef.Product{
			ID:              id,
			Name:            ps.name,
			Description:     "Seed product: " + ps.name + ".",
			Stock:           10 * id,
			Price:           ps.price,
			IsLocationOffer: ps.rental,
			IsRental:        ps.rental,
			BrandID:         ps.brandID,
			CategoryID:      ps.categoryID,
			ProductImageID:  id,
			ProductImage: &apidef.ProductImage{
				ID:         id,
				ByName:     "Toolshop",
				ByURL:      "https://example.com/toolshop",
				SourceName: "Unsplash",
				SourceURL:  "https://unsplash.com",
				FileName:   ps.image,
				Title:      ps.name,
			},
			Category: &category,
			Brand:    &brand,
		})
	}
	return ret
}
