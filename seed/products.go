// Package seed holds the initial product catalog and loads it into Mongo
// on first run.
package seed

import (
	"context"
	"time"

	"fleur-api/logger"
	"fleur-api/models"
	"fleur-api/repositories"
)

// Products is the launch catalog. Product ids are stable slugs so external
// references (reviews, orders, AI recommendations) survive reseeding.
func Products() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:               "prod_white_rose_musk",
			Name:             "White Rose Musk",
			Slug:             "white-rose-musk",
			Description:      "An elegant floral aroma that captures the essence of fresh white roses blended with soft musk. Perfect for creating a sophisticated and romantic atmosphere in bedrooms and living spaces.",
			ShortDescription: "Elegant floral aroma with fresh roses and soft musk",
			Price:            520, OriginalPrice: 650, DiscountPercent: 20,
			Category: "Home Scents", Subcategory: "Bedroom Scents",
			Size: "100ml", ScentFamily: "Floral",
			Notes:  []string{"White Rose", "Musk", "Green Notes", "Jasmine"},
			Image:  "https://images.unsplash.com/photo-1761928299605-7b0f327613b8?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1761928299605-7b0f327613b8?w=800&q=80", "https://images.unsplash.com/photo-1652430627049-a29818b61cb5?w=800&q=80"},
			InStock: true, Rating: 4.8, ReviewsCount: 124, CreatedAt: now,
		},
		{
			ID:               "prod_bleu_sport",
			Name:             "Bleu Sport",
			Slug:             "bleu-sport",
			Description:      "A fresh aquatic sporty fragrance designed for performance spaces. This invigorating scent combines ocean breeze with energetic citrus notes, perfect for gyms, offices, and active lifestyle spaces.",
			ShortDescription: "Fresh aquatic sporty fragrance for performance spaces",
			Price:            385, OriginalPrice: 550, DiscountPercent: 30,
			Category: "Office Scents", Subcategory: "Boardroom Scents",
			Size: "100ml", ScentFamily: "Fresh",
			Notes:  []string{"Ocean Breeze", "Citrus", "Mint", "Cedar"},
			Image:  "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&q=80"},
			InStock: true, Rating: 4.6, ReviewsCount: 89, CreatedAt: now,
		},
		{
			ID:               "prod_fleur_enchante",
			Name:             "Fleur Enchanté",
			Slug:             "fleur-enchante",
			Description:      "An enchanting pure aroma oil that weaves a spell of floral magic. This captivating blend features exotic flowers and mysterious undertones that create an atmosphere of wonder and elegance.",
			ShortDescription: "Enchanting floral fragrance for diffusers",
			Price:            456.50, OriginalPrice: 550, DiscountPercent: 17,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Floral",
			Notes:  []string{"Exotic Flowers", "Vanilla", "Amber", "Pink Pepper"},
			Image:  "https://images.unsplash.com/photo-1596438459194-f275867d019d?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1596438459194-f275867d019d?w=800&q=80"},
			InStock: true, Rating: 4.9, ReviewsCount: 156, CreatedAt: now,
		},
		{
			ID:               "prod_white_mulberry",
			Name:             "White Mulberry",
			Slug:             "white-mulberry",
			Description:      "A sweet fruity gourmand fragrance that delights the senses with the luscious sweetness of ripe mulberries. This indulgent scent creates a warm and inviting atmosphere, perfect for cozy spaces.",
			ShortDescription: "Sweet fruity gourmand fragrance",
			Price:            382.50, OriginalPrice: 450, DiscountPercent: 15,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Fruity",
			Notes:  []string{"Mulberry", "Vanilla", "Caramel", "White Tea"},
			Image:  "https://images.unsplash.com/photo-1615485290382-441e4d049cb5?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1615485290382-441e4d049cb5?w=800&q=80"},
			InStock: true, Rating: 4.7, ReviewsCount: 98, CreatedAt: now,
		},
		{
			ID:               "prod_elegance",
			Name:             "Elegance",
			Slug:             "elegance",
			Description:      "A sophisticated signature fragrance that embodies pure elegance and refinement. This premium blend features rare ingredients that create an aura of luxury and distinction, ideal for special occasions.",
			ShortDescription: "Sophisticated signature fragrance",
			Price:            350, OriginalPrice: 580, DiscountPercent: 40,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Luxury",
			Notes:  []string{"Oud", "Rose", "Saffron", "Sandalwood"},
			Image:  "https://images.unsplash.com/photo-1541643600914-78b084683601?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1541643600914-78b084683601?w=800&q=80"},
			InStock: true, Rating: 4.9, ReviewsCount: 203, CreatedAt: now,
		},
		{
			ID:               "prod_victoria_royale",
			Name:             "Victoria Royale",
			Slug:             "victoria-royale",
			Description:      "A majestic royal fragrance fit for royalty. This opulent blend combines precious ingredients to create an atmosphere of grandeur and sophistication.",
			ShortDescription: "Majestic royal fragrance",
			Price:            300, OriginalPrice: 520, DiscountPercent: 42,
			Category: "Home Scents", Subcategory: "Bedroom Scents",
			Size: "100ml", ScentFamily: "Luxury",
			Notes:  []string{"Royal Oud", "Iris", "Bergamot", "Musk"},
			Image:  "https://images.unsplash.com/photo-1588405748880-12d1d2a59f75?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1588405748880-12d1d2a59f75?w=800&q=80"},
			InStock: true, Rating: 4.8, ReviewsCount: 167, CreatedAt: now,
		},
		{
			ID:               "prod_coorg_mandarin",
			Name:             "Coorg Mandarin",
			Slug:             "coorg-mandarin",
			Description:      "A vibrant citrus burst inspired by the lush mandarin orchards of Coorg. This refreshing fragrance captures the zesty freshness of sun-ripened mandarins with hints of green leaves and spice.",
			ShortDescription: "Vibrant citrus mandarin freshness",
			Price:            351, OriginalPrice: 450, DiscountPercent: 22,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Citrus",
			Notes:  []string{"Mandarin", "Orange Blossom", "Ginger", "Green Tea"},
			Image:  "https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1611080626919-7cf5a9dbab5b?w=800&q=80"},
			InStock: true, Rating: 4.6, ReviewsCount: 112, CreatedAt: now,
		},
		{
			ID:               "prod_sandalwood_tranquility",
			Name:             "Sandalwood Tranquility",
			Slug:             "sandalwood-tranquility",
			Description:      "A deeply calming woody fragrance featuring premium Indian sandalwood. This meditative scent promotes peace and tranquility, perfect for meditation spaces, bedrooms, and spa environments.",
			ShortDescription: "Calming woody sandalwood essence",
			Price:            300, OriginalPrice: 499, DiscountPercent: 40,
			Category: "Home Scents", Subcategory: "Bedroom Scents",
			Size: "100ml", ScentFamily: "Woody",
			Notes:  []string{"Indian Sandalwood", "Cedarwood", "Vanilla", "White Musk"},
			Image:  "https://images.unsplash.com/photo-1602928321679-560bb453f190?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1602928321679-560bb453f190?w=800&q=80"},
			InStock: true, Rating: 4.9, ReviewsCount: 245, CreatedAt: now,
		},
		{
			ID:               "prod_ocean_secrets",
			Name:             "Ocean Secrets",
			Slug:             "ocean-secrets",
			Description:      "Dive into the mysterious depths of the ocean with this aquatic masterpiece. A bestselling fragrance that captures the essence of sea breeze, marine notes, and hidden treasures of the deep.",
			ShortDescription: "Mysterious aquatic ocean fragrance",
			Price:            300, OriginalPrice: 499, DiscountPercent: 40,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Fresh",
			Notes:  []string{"Sea Salt", "Marine Accord", "Driftwood", "White Musk"},
			Image:  "https://images.unsplash.com/photo-1630985857549-2190fa06f44f?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1630985857549-2190fa06f44f?w=800&q=80"},
			InStock: true, IsBestseller: true, Rating: 4.9, ReviewsCount: 312, CreatedAt: now,
		},
		{
			ID:               "prod_mystic_whiff",
			Name:             "Mystic Whiff",
			Slug:             "mystic-whiff",
			Description:      "A mysterious and enchanting fragrance that captivates the senses with its otherworldly charm. This unique blend creates an atmosphere of intrigue and wonder, for those who dare to be different.",
			ShortDescription: "Mysterious enchanting aroma",
			Price:            250, OriginalPrice: 500, DiscountPercent: 50,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Luxury",
			Notes:  []string{"Incense", "Amber", "Myrrh", "Dark Vanilla"},
			Image:  "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?w=800&q=80"},
			InStock: true, Rating: 4.7, ReviewsCount: 134, CreatedAt: now,
		},
		{
			ID:               "prod_musk_oudh",
			Name:             "Musk Oudh",
			Slug:             "musk-oudh",
			Description:      "A luxurious blend of precious oudh and sensual musk. This opulent fragrance is for those who appreciate the finest things in life, creating an atmosphere of timeless elegance.",
			ShortDescription: "Luxurious oudh and musk blend",
			Price:            550, OriginalPrice: 650, DiscountPercent: 15,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Woody",
			Notes:  []string{"Premium Oudh", "White Musk", "Amber", "Rose"},
			Image:  "https://images.unsplash.com/photo-1594035910387-fea47794261f?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1594035910387-fea47794261f?w=800&q=80"},
			InStock: true, IsNew: true, Rating: 4.8, ReviewsCount: 67, CreatedAt: now,
		},
		{
			ID:               "prod_morning_mist",
			Name:             "Morning Mist",
			Slug:             "morning-mist",
			Description:      "Wake up to the refreshing essence of morning dew and fresh air. This crisp, clean fragrance captures the magical moment when the world awakens.",
			ShortDescription: "Fresh morning dew essence",
			Price:            280, OriginalPrice: 550, DiscountPercent: 49,
			Category: "Home Scents", Subcategory: "Bedroom Scents",
			Size: "100ml", ScentFamily: "Fresh",
			Notes:  []string{"Morning Dew", "Fresh Linen", "White Tea", "Bamboo"},
			Image:  "https://images.unsplash.com/photo-1470252649378-9c29740c9fa8?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1470252649378-9c29740c9fa8?w=800&q=80"},
			InStock: true, Rating: 4.6, ReviewsCount: 189, CreatedAt: now,
		},
		{
			ID:               "prod_lavender_bliss",
			Name:             "Lavender Bliss",
			Slug:             "lavender-bliss",
			Description:      "Experience the calming embrace of French lavender fields. This soothing fragrance promotes relaxation and peaceful sleep, the perfect companion for unwinding after a long day.",
			ShortDescription: "Calming French lavender essence",
			Price:            280, OriginalPrice: 450, DiscountPercent: 38,
			Category: "Home Scents", Subcategory: "Bedroom Scents",
			Size: "100ml", ScentFamily: "Floral",
			Notes:  []string{"French Lavender", "Chamomile", "Tonka Bean", "Soft Musk"},
			Image:  "https://images.unsplash.com/photo-1644409496856-a92543edbc64?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1644409496856-a92543edbc64?w=800&q=80"},
			InStock: true, Rating: 4.8, ReviewsCount: 276, CreatedAt: now,
		},
		{
			ID:               "prod_jasmine_neroli",
			Name:             "Jasmine Neroli",
			Slug:             "jasmine-neroli",
			Description:      "A romantic floral duet of jasmine and neroli that enchants the senses. This elegant fragrance brings the beauty of Mediterranean gardens into your space.",
			ShortDescription: "Romantic jasmine and neroli blend",
			Price:            250, OriginalPrice: 370, DiscountPercent: 32,
			Category: "Home Scents", Subcategory: "Bedroom Scents",
			Size: "100ml", ScentFamily: "Floral",
			Notes:  []string{"Night Jasmine", "Neroli", "Orange Blossom", "Ylang Ylang"},
			Image:  "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=800&q=80"},
			InStock: true, Rating: 4.7, ReviewsCount: 145, CreatedAt: now,
		},
		{
			ID:               "prod_fleur_rose",
			Name:             "Fleur Rose",
			Slug:             "fleur-rose",
			Description:      "The signature rose fragrance from Fleur Fragrances. This exquisite blend captures the essence of a thousand roses in full bloom, a timeless classic that brings elegance to any space.",
			ShortDescription: "Signature rose fragrance",
			Price:            280, OriginalPrice: 520, DiscountPercent: 46,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Floral",
			Notes:  []string{"Damask Rose", "Bulgarian Rose", "Peony", "Pink Pepper"},
			Image:  "https://images.unsplash.com/photo-1729438857360-bc52f0b587d9?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1729438857360-bc52f0b587d9?w=800&q=80"},
			InStock: true, Rating: 4.9, ReviewsCount: 198, CreatedAt: now,
		},
		{
			ID:               "prod_first_rain",
			Name:             "First Rain",
			Slug:             "first-rain",
			Description:      "Capture the magical scent of the first monsoon rain on parched earth. This unique fragrance, known as Petrichor, evokes memories of childhood and the joy of dancing in the rain.",
			ShortDescription: "Petrichor monsoon rain essence",
			Price:            300, OriginalPrice: 550, DiscountPercent: 45,
			Category: "Home Scents", Subcategory: "Living Room Scents",
			Size: "100ml", ScentFamily: "Fresh",
			Notes:  []string{"Petrichor", "Wet Earth", "Green Leaves", "Ozone"},
			Image:  "https://images.unsplash.com/photo-1534274988757-a28bf1a57c17?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1534274988757-a28bf1a57c17?w=800&q=80"},
			InStock: true, Rating: 4.8, ReviewsCount: 234, CreatedAt: now,
		},
		{
			ID:               "prod_jasmine_bloom",
			Name:             "Jasmine Bloom",
			Slug:             "jasmine-bloom",
			Description:      "Pure jasmine essence that transports you to moonlit gardens where jasmine blooms fill the air with intoxicating sweetness. A classic Indian favorite that brings peace and serenity.",
			ShortDescription: "Pure jasmine essence",
			Price:            250, OriginalPrice: 370, DiscountPercent: 32,
			Category: "Home Scents", Subcategory: "Bedroom Scents",
			Size: "100ml", ScentFamily: "Floral",
			Notes:  []string{"Indian Jasmine", "Tuberose", "White Florals", "Sandalwood"},
			Image:  "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=800&q=80",
			Images: []string{"https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=800&q=80"},
			InStock: true, Rating: 4.7, ReviewsCount: 156, CreatedAt: now,
		},
	}
}

// EnsureSeeded loads the launch catalog when the products collection is
// empty. It reports how many products exist afterwards.
func EnsureSeeded(ctx context.Context, repo *repositories.ProductRepository) (int64, error) {
	count, err := repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return count, nil
	}

	products := Products()
	if err := repo.InsertMany(ctx, products); err != nil {
		return 0, err
	}
	logger.Log.Infof("seeded %d products", len(products))
	return int64(len(products)), nil
}
