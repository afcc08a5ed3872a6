package seed

import "luxe-jewelry-api/internal/domain"

// sampleProducts is the canonical catalog used on first provisioning. Each
// model image was hand-picked to show the same piece as the product image.
var sampleProducts = []domain.Product{
	{
		Name:          "Elegant Diamond Earrings",
		Description:   "Exquisite diamond earrings crafted with precision and elegance. These stunning pieces feature premium diamonds set in 18k gold, perfect for special occasions or adding luxury to everyday wear.",
		Price:         2500.00,
		Category:      "Earrings",
		ImageURL:      "https://images.unsplash.com/photo-1720686615374-ea04dac6a66e",
		ModelImageURL: "https://images.unsplash.com/photo-1616121341778-0dd435d03d23",
		MaterialDetails: map[string]string{
			"material":  "18k Gold",
			"gemstones": "Natural Diamonds",
			"weight":    "3.2g",
			"origin":    "Switzerland",
		},
		IsFeatured: true,
	},
	{
		Name:          "Premium Gold Ring",
		Description:   "A timeless gold ring with sophisticated design, perfect for special occasions or everyday luxury. Crafted with attention to detail and premium materials.",
		Price:         1800.00,
		Category:      "Rings",
		ImageURL:      "https://images.unsplash.com/photo-1602751584547-5fb8e6c21740",
		ModelImageURL: "https://images.pexels.com/photos/7631686/pexels-photo-7631686.jpeg",
		MaterialDetails: map[string]string{
			"material":  "18k Yellow Gold",
			"gemstones": "None",
			"weight":    "5.8g",
			"origin":    "Italy",
		},
		IsFeatured: true,
	},
	{
		Name:          "Diamond Eternity Ring",
		Description:   "Stunning diamond eternity ring with carefully selected diamonds, symbolizing everlasting love. Each diamond is hand-selected for maximum brilliance and fire.",
		Price:         3200.00,
		Category:      "Rings",
		ImageURL:      "https://images.unsplash.com/photo-1591210244853-ea68b6126edf",
		ModelImageURL: "https://images.pexels.com/photos/2740658/pexels-photo-2740658.jpeg",
		MaterialDetails: map[string]string{
			"material":  "18k White Gold",
			"gemstones": "Premium Diamonds",
			"weight":    "4.1g",
			"origin":    "Belgium",
		},
		IsFeatured: true,
	},
	{
		Name:          "Heart Pendant Necklace",
		Description:   "Delicate heart pendant necklace in sterling silver, perfect for expressing love and affection. The elegant design makes it suitable for any occasion.",
		Price:         950.00,
		Category:      "Necklaces",
		ImageURL:      "https://images.unsplash.com/photo-1589128530085-7e772389eb7a",
		ModelImageURL: "https://images.pexels.com/photos/6153885/pexels-photo-6153885.jpeg",
		MaterialDetails: map[string]string{
			"material":  "Sterling Silver",
			"gemstones": "None",
			"weight":    "2.3g",
			"origin":    "United Kingdom",
		},
	},
	{
		Name:          "Minimalist Diamond Necklace",
		Description:   "Sophisticated minimalist necklace with a single diamond pendant, embodying modern elegance. The perfect piece for the contemporary woman.",
		Price:         1200.00,
		Category:      "Necklaces",
		ImageURL:      "https://images.unsplash.com/photo-1658729565278-7c09292d7184",
		ModelImageURL: "https://images.pexels.com/photos/28664773/pexels-photo-28664773.jpeg",
		MaterialDetails: map[string]string{
			"material":  "18k Gold",
			"gemstones": "Single Diamond",
			"weight":    "1.8g",
			"origin":    "France",
		},
		IsFeatured: true,
	},
	{
		Name:          "Wedding Ring Set",
		Description:   "Perfectly matched wedding ring set crafted in premium gold, designed for couples who appreciate luxury. Each ring complements the other perfectly.",
		Price:         2800.00,
		Category:      "Wedding Rings",
		ImageURL:      "https://images.unsplash.com/photo-1717605877844-b506a1f5b914",
		ModelImageURL: "https://images.unsplash.com/photo-1623726564529-f07ede3b34be",
		MaterialDetails: map[string]string{
			"material":  "18k Gold",
			"gemstones": "None",
			"weight":    "12.5g",
			"origin":    "Italy",
		},
		IsFeatured: true,
	},
	{
		Name:          "Classic Silver Ring",
		Description:   "Timeless silver ring with elegant design, suitable for any occasion and perfect as a gift. The classic styling ensures it never goes out of fashion.",
		Price:         650.00,
		Category:      "Rings",
		ImageURL:      "https://images.unsplash.com/photo-1593554466439-3c9978dd302c",
		ModelImageURL: "https://images.unsplash.com/photo-1558882257-af20d5828286",
		MaterialDetails: map[string]string{
			"material":  "Sterling Silver",
			"gemstones": "None",
			"weight":    "3.7g",
			"origin":    "Denmark",
		},
	},
	{
		Name:          "Luxury Ring Collection",
		Description:   "Exclusive collection of premium rings with precious stones, representing the pinnacle of luxury jewelry. Each piece is a masterwork of craftsmanship.",
		Price:         4500.00,
		Category:      "Rings",
		ImageURL:      "https://images.unsplash.com/photo-1543295204-2ae345412549",
		ModelImageURL: "https://images.pexels.com/photos/16971727/pexels-photo-16971727.jpeg",
		MaterialDetails: map[string]string{
			"material":  "18k Gold",
			"gemstones": "Sapphires & Diamonds",
			"weight":    "8.9g",
			"origin":    "Switzerland",
		},
		IsFeatured: true,
	},
}

// Backfill lookup tables for records seeded before model images and material
// details existed. Indexed by record position modulo table size.
var modelImageURLs = []string{
	"https://images.unsplash.com/photo-1616121341778-0dd435d03d23",
	"https://images.pexels.com/photos/7631686/pexels-photo-7631686.jpeg",
	"https://images.pexels.com/photos/2740658/pexels-photo-2740658.jpeg",
	"https://images.pexels.com/photos/6153885/pexels-photo-6153885.jpeg",
	"https://images.pexels.com/photos/28664773/pexels-photo-28664773.jpeg",
	"https://images.unsplash.com/photo-1623726564529-f07ede3b34be",
	"https://images.unsplash.com/photo-1558882257-af20d5828286",
	"https://images.pexels.com/photos/16971727/pexels-photo-16971727.jpeg",
}

var materialDetailSets = []map[string]string{
	{"material": "18k Gold", "gemstones": "Natural Diamonds", "weight": "3.2g", "origin": "Switzerland"},
	{"material": "18k Yellow Gold", "gemstones": "None", "weight": "5.8g", "origin": "Italy"},
	{"material": "18k White Gold", "gemstones": "Premium Diamonds", "weight": "4.1g", "origin": "Belgium"},
	{"material": "Sterling Silver", "gemstones": "None", "weight": "2.3g", "origin": "United Kingdom"},
	{"material": "18k Gold", "gemstones": "Single Diamond", "weight": "1.8g", "origin": "France"},
	{"material": "18k Gold", "gemstones": "None", "weight": "12.5g", "origin": "Italy"},
	{"material": "Sterling Silver", "gemstones": "None", "weight": "3.7g", "origin": "Denmark"},
	{"material": "18k Gold", "gemstones": "Sapphires & Diamonds", "weight": "8.9g", "origin": "Switzerland"},
}
