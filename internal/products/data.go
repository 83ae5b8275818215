package products

import "github.com/shopspring/decimal"

const (
	CategoryAll     = "all"
	CategoryHerbs   = "herbs"
	CategoryFlowers = "flowers"
	CategoryBundles = "bundles"
)

var categoryNames = map[string]string{
	CategoryHerbs:   "Herbs",
	CategoryFlowers: "Flowers",
	CategoryBundles: "Bundles",
}

func price(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

// catalog is the full storefront assortment of seed-bearing lollipops.
var catalog = []Product{
	{
		ID:          1,
		Name:        "Sage & Marshmallow",
		Price:       price("8.00"),
		Description: "A soothing blend of garden sage and sweet marshmallow root, wrapped around viable sage seeds.",
		GrowsInto:   "Garden Sage",
		Colors:      []string{"#7fb069", "#fdfbf6", "#f4f0e6"},
		Category:    CategoryHerbs,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          2,
		Name:        "Peach & Marigold",
		Price:       price("8.00"),
		Description: "Ripe peach candy with a marigold finish. Plant the stick and watch golden blooms take over.",
		GrowsInto:   "French Marigold",
		Colors:      []string{"#f9c74f", "#e07a3f", "#ffb347"},
		Category:    CategoryFlowers,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          3,
		Name:        "Lavender & Lemongrass",
		Price:       price("8.00"),
		Description: "Calming lavender meets bright lemongrass in our most popular herbal pairing.",
		GrowsInto:   "English Lavender",
		Colors:      []string{"#b19cd9", "#a8c09a", "#c9a96e"},
		Category:    CategoryHerbs,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          4,
		Name:        "Frida Kahlo Watermelon",
		Price:       price("7.50"),
		Description: "A tribute pop bursting with watermelon flavor and embedded wildflower seeds.",
		GrowsInto:   "Mexican Wildflowers",
		Colors:      []string{"#ff6b6b", "#1a1a1a"},
		Category:    CategoryFlowers,
		InStock:     true,
	},
	{
		ID:          5,
		Name:        "Rosemary & Mint",
		Price:       price("8.00"),
		Description: "Cool mint layered over woodsy rosemary. The stick grows a kitchen staple.",
		GrowsInto:   "Rosemary",
		Colors:      []string{"#4a7c59", "#9fd8cb"},
		Category:    CategoryHerbs,
		InStock:     true,
	},
	{
		ID:          6,
		Name:        "Champagne & Chamomile",
		Price:       price("8.50"),
		Description: "Celebration-worthy sparkling candy with gentle chamomile seeds inside.",
		GrowsInto:   "German Chamomile",
		Colors:      []string{"#f3e5ab", "#fdfbf6"},
		Category:    CategoryFlowers,
		InStock:     false,
	},
	{
		ID:          7,
		Name:        "Garden Lover's 8 Pack",
		Price:       price("20.00"),
		Description: "Eight assorted lollipops spanning our herb and flower collections.",
		GrowsInto:   "Assorted Herbs & Flowers",
		Colors:      []string{"#4ecdc4", "#ff6b6b", "#b19cd9", "#f9c74f"},
		Category:    CategoryBundles,
		InStock:     true,
		Featured:    true,
	},
	{
		ID:          8,
		Name:        "Watering Can-dy 20 Pack",
		Price:       price("50.00"),
		Description: "Twenty pops in a keepsake watering-can tin. The party favor that keeps growing.",
		GrowsInto:   "Assorted Herbs & Flowers",
		Colors:      []string{"#45b7d1", "#fdfbf6"},
		Category:    CategoryBundles,
		InStock:     true,
	},
	{
		ID:          9,
		Name:        "Thyme & Honey",
		Price:       price("8.00"),
		Description: "Raw honey sweetness with a savory thyme edge and thyme seeds in the stick.",
		GrowsInto:   "Common Thyme",
		Colors:      []string{"#c9a96e", "#f4f0e6"},
		Category:    CategoryHerbs,
		InStock:     true,
	},
	{
		ID:          10,
		Name:        "Wedding Favor 48 Pack",
		Price:       price("110.00"),
		Description: "Forty-eight individually wrapped pops for weddings and large events. Ships free.",
		GrowsInto:   "Assorted Herbs & Flowers",
		Colors:      []string{"#fdfbf6", "#b19cd9"},
		Category:    CategoryBundles,
		InStock:     true,
	},
}
