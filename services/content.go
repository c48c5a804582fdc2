package services

// Static brand content served by the marketing endpoints. Edited by the
// content team alongside releases rather than stored in Mongo.

type PortfolioClient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Logo        string `json:"logo"`
	Description string `json:"description"`
	Locations   int    `json:"locations"`
}

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Avatar   string `json:"avatar"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Product  string `json:"product"`
	Verified bool   `json:"verified"`
}

type BrandValue struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type BrandStory struct {
	HeritageYears int            `json:"heritage_years"`
	Tagline       string         `json:"tagline"`
	Mission       string         `json:"mission"`
	Story         string         `json:"story"`
	Values        []BrandValue   `json:"values"`
	Stats         map[string]int `json:"stats"`
}

type SustainabilityInitiative struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Impact      string `json:"impact"`
}

type Certification struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type Sustainability struct {
	Hero           map[string]string          `json:"hero"`
	Initiatives    []SustainabilityInitiative `json:"initiatives"`
	Certifications []Certification            `json:"certifications"`
	Stats          map[string]int             `json:"stats"`
}

type GiftingPackage struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Tier        string   `json:"tier"`
	Description string   `json:"description"`
	PriceRange  string   `json:"price_range"`
	MinQuantity int      `json:"min_quantity"`
	Includes    []string `json:"includes"`
	BestFor     string   `json:"best_for"`
	Image       string   `json:"image"`
}

type GiftingBenefit struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type CorporateGifting struct {
	Packages []GiftingPackage `json:"packages"`
	Benefits []GiftingBenefit `json:"benefits"`
}

// ContentService exposes the static marketing content.
type ContentService struct{}

func NewContentService() *ContentService { return &ContentService{} }

func (s *ContentService) Portfolio() []PortfolioClient {
	return []PortfolioClient{
		{ID: "client_taj", Name: "Taj Hotels", Category: "Luxury Hospitality", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/8/89/Taj_Hotels_logo.svg/200px-Taj_Hotels_logo.svg.png", Description: "Premium HVAC scenting solutions for Taj properties across India", Locations: 15},
		{ID: "client_radisson", Name: "Radisson", Category: "Luxury Hospitality", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/9/9a/Radisson_logo.svg/200px-Radisson_logo.svg.png", Description: "Custom fragrance experiences for Radisson hotels", Locations: 8},
		{ID: "client_marriott", Name: "Courtyard by Marriott", Category: "Luxury Hospitality", Logo: "https://upload.wikimedia.org/wikipedia/commons/thumb/4/44/Marriott_Logo.svg/200px-Marriott_Logo.svg.png", Description: "Signature scenting for lobbies and common areas", Locations: 12},
		{ID: "client_lodi", Name: "The Lodhi", Category: "Ultra-Luxury", Logo: "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=200&h=100&fit=crop", Description: "Bespoke fragrance development for exclusive suites", Locations: 1},
		{ID: "client_oberoi", Name: "The Oberoi Group", Category: "Luxury Hospitality", Logo: "https://upload.wikimedia.org/wikipedia/en/thumb/3/3a/The_Oberoi_Group_Logo.svg/200px-The_Oberoi_Group_Logo.svg.png", Description: "Premium aroma solutions for Oberoi properties", Locations: 6},
		{ID: "client_corporate", Name: "Leading Corporates", Category: "Corporate Offices", Logo: "https://images.unsplash.com/photo-1486406146926-c627a92ad1ab?w=200&h=100&fit=crop", Description: "Office scenting for Fortune 500 companies", Locations: 50},
	}
}

func (s *ContentService) Testimonials() []Testimonial {
	return []Testimonial{
		{ID: "test_1", Name: "Priya Sharma", Title: "Interior Designer, Mumbai", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=100&h=100&fit=crop", Rating: 5, Text: "Fleur Fragrances transformed my home. The Ocean Secrets brings such a calming energy to my living space. The quality is unmatched, truly luxury you can experience every day.", Product: "Ocean Secrets", Verified: true},
		{ID: "test_2", Name: "Rajesh Menon", Title: "Hotel General Manager", Avatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop", Rating: 5, Text: "We've been using Fleur's HVAC solutions for 5 years. Our guests consistently compliment the signature scent in our lobby. It's become part of our brand identity.", Product: "Corporate Solutions", Verified: true},
		{ID: "test_3", Name: "Ananya Patel", Title: "Wellness Entrepreneur, Bangalore", Avatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=100&h=100&fit=crop", Rating: 5, Text: "The Lavender Bliss has become essential for my evening routine. The fragrance is so authentic, you can tell it's made with premium ingredients. Highly recommend!", Product: "Lavender Bliss", Verified: true},
		{ID: "test_4", Name: "Vikram Singh", Title: "Luxury Collector, Delhi", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=100&h=100&fit=crop", Rating: 5, Text: "As someone who collects premium fragrances from around the world, I was impressed by Musk Oudh. It rivals international brands at a fraction of the price. True Indian craftsmanship.", Product: "Musk Oudh", Verified: true},
		{ID: "test_5", Name: "Dr. Meera Krishnan", Title: "Aromatherapist, Chennai", Avatar: "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=100&h=100&fit=crop", Rating: 5, Text: "I recommend Fleur to all my clients. Their Sandalwood Tranquility is perfect for meditation spaces. The quality of oils is pharmaceutical grade. Outstanding!", Product: "Sandalwood Tranquility", Verified: true},
	}
}

func (s *ContentService) BrandStory() BrandStory {
	return BrandStory{
		HeritageYears: 10,
		Tagline:       "Luxury Heritage Fragrance for Modern India",
		Mission:       "Crafted in India, Trusted by Luxury Hotels — Now for You",
		Story:         "For over a decade, Fleur Fragrances has been the secret behind the signature scents of India's most prestigious luxury hotels and corporate spaces. From the grand lobbies of Taj to the executive suites of Fortune 500 companies, our fragrances have created memorable experiences for millions. Now, we bring this same luxury heritage directly to you with premium, authentic fragrances that celebrate Indian craftsmanship while embracing modern sophistication.",
		Values: []BrandValue{
			{Title: "Heritage", Description: "10+ years of expertise serving luxury hospitality"},
			{Title: "Authenticity", Description: "Premium, natural ingredients sourced globally"},
			{Title: "Sustainability", Description: "Eco-conscious practices and refillable bottles"},
			{Title: "Innovation", Description: "AI-powered personalization and modern experiences"},
		},
		Stats: map[string]int{
			"years_experience":   10,
			"luxury_hotels":      40,
			"corporate_clients":  100,
			"happy_customers":    50000,
			"fragrances_crafted": 200,
		},
	}
}

func (s *ContentService) Sustainability() Sustainability {
	return Sustainability{
		Hero: map[string]string{
			"title":    "Crafted with Care, Designed for Tomorrow",
			"subtitle": "Our commitment to sustainable luxury goes beyond fragrance. It's woven into everything we do.",
		},
		Initiatives: []SustainabilityInitiative{
			{ID: "refillable", Title: "Refillable Bottles", Description: "Our signature bottles are designed for longevity. Return them for refills at 30% off, reducing waste while saving you money.", Icon: "recycle", Impact: "50,000+ bottles refilled"},
			{ID: "natural", Title: "Natural Ingredients", Description: "We source premium essential oils from sustainable farms worldwide, ensuring fair trade practices and ecological balance.", Icon: "leaf", Impact: "95% natural ingredients"},
			{ID: "packaging", Title: "Eco-Friendly Packaging", Description: "Our packaging uses recycled materials and soy-based inks. Every box is plastic-free and 100% recyclable.", Icon: "package", Impact: "Zero single-use plastic"},
			{ID: "carbon", Title: "Carbon Neutral Operations", Description: "We offset our carbon footprint through verified reforestation projects in the Western Ghats.", Icon: "globe", Impact: "10,000 trees planted"},
			{ID: "community", Title: "Community Support", Description: "We partner with local artisan communities for packaging, supporting traditional craftsmanship and fair wages.", Icon: "heart", Impact: "200+ artisan families supported"},
			{ID: "cruelty_free", Title: "Cruelty-Free Always", Description: "No animal testing, ever. Our fragrances are certified cruelty-free and vegan-friendly.", Icon: "check-circle", Impact: "100% cruelty-free"},
		},
		Certifications: []Certification{
			{Name: "PETA Certified", Description: "Cruelty-Free"},
			{Name: "FSC Certified", Description: "Responsible Forestry"},
			{Name: "Green Business", Description: "Eco-Certified Operations"},
		},
		Stats: map[string]int{
			"bottles_refilled":      50000,
			"trees_planted":         10000,
			"plastic_eliminated_kg": 5000,
			"artisan_families":      200,
		},
	}
}

func (s *ContentService) CorporateGifting() CorporateGifting {
	return CorporateGifting{
		Packages: []GiftingPackage{
			{ID: "gift_starter", Name: "Starter Collection", Tier: "Bronze", Description: "Perfect for small teams and departments. A curated selection of our bestselling fragrances.", PriceRange: "₹15,000 - ₹25,000", MinQuantity: 10, Includes: []string{"Selection of 3 premium fragrances (100ml each)", "Custom gift boxes with your branding", "Personalized message cards", "Free delivery within India"}, BestFor: "Employee appreciation, Festive gifting, Team rewards", Image: "https://images.unsplash.com/photo-1549465220-1a8b9238cd48?w=800&q=80"},
			{ID: "gift_premium", Name: "Premium Executive", Tier: "Silver", Description: "Elevate your corporate gifting with our signature luxury collection. Ideal for clients and senior management.", PriceRange: "₹35,000 - ₹50,000", MinQuantity: 20, Includes: []string{"Selection of 5 luxury fragrances (100ml each)", "Premium wooden gift boxes", "Elegant silk ribbons and tissue", "Engraved brass name plates", "White-glove delivery service"}, BestFor: "Client appreciation, Executive gifts, Board members", Image: "https://images.unsplash.com/photo-1513201099705-a9746e1e201f?w=800&q=80"},
			{ID: "gift_luxe", Name: "Luxe Signature", Tier: "Gold", Description: "The ultimate corporate gifting experience. Bespoke fragrances and white-glove service for the most discerning recipients.", PriceRange: "₹75,000 - ₹1,50,000", MinQuantity: 25, Includes: []string{"Full collection of 8 signature fragrances", "Handcrafted leather gift cases", "Custom fragrance blending option", "Personal fragrance consultation", "Dedicated account manager", "Priority delivery with tracking"}, BestFor: "VIP clients, C-Suite executives, Major partnerships", Image: "https://images.unsplash.com/photo-1607083206869-4c7672e72a8a?w=800&q=80"},
			{ID: "gift_custom", Name: "Bespoke Enterprise", Tier: "Platinum", Description: "Completely customized gifting solutions for large enterprises. Create a unique olfactory identity for your brand.", PriceRange: "Custom pricing", MinQuantity: 100, Includes: []string{"Custom fragrance development", "Exclusive private label options", "Complete branding integration", "Luxury packaging design", "Global shipping coordination", "24/7 dedicated support", "Event integration services"}, BestFor: "Large enterprises, Multi-national gifting, Brand partnerships", Image: "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=800&q=80"},
		},
		Benefits: []GiftingBenefit{
			{Icon: "gift", Title: "Luxury Presentation", Description: "Premium packaging that reflects your brand's prestige"},
			{Icon: "users", Title: "Bulk Discounts", Description: "Significant savings on orders of 50+ units"},
			{Icon: "palette", Title: "Full Customization", Description: "Custom branding, messaging, and packaging"},
			{Icon: "truck", Title: "Pan-India Delivery", Description: "Free shipping across India with tracking"},
			{Icon: "award", Title: "Quality Guarantee", Description: "Same premium quality trusted by luxury hotels"},
			{Icon: "headphones", Title: "Dedicated Support", Description: "Personal account manager for large orders"},
		},
	}
}
