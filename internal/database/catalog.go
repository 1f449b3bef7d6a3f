package database

import "foodzy/internal/model"

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

// Catalog is the fixed product seed. It is configuration data: the rows
// are upserted by id at startup, so redeploys refresh the catalogue
// without touching order history (order items hold their own snapshots).
var Catalog = []model.Product{
	{
		ID:            "1",
		Name:          "Fresh organic villa farm lemon 500gm pack",
		Description:   "Fresh organic lemons",
		Price:         28.85,
		OriginalPrice: floatPtr(32.8),
		Image:         "/images/products/lemon.png",
		Category:      "Fruits",
		Brand:         "NestFood",
		Rating:        floatPtr(4.0),
		ReviewCount:   75,
		Tag:           strPtr(model.TagHot),
		Items:         1,
	},
	{
		ID:            "2",
		Name:          "Best snakes with hazel nut pack 200gm",
		Description:   "Premium hazelnuts",
		Price:         52.85,
		OriginalPrice: floatPtr(55.8),
		Image:         "/images/products/hazelnut.png",
		Category:      "Snacks",
		Brand:         "Stouffer",
		Rating:        floatPtr(3.5),
		ReviewCount:   50,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
	{
		ID:            "3",
		Name:          "organic fresh venilafarm watermelon",
		Description:   "Fresh organic watermelon",
		Price:         48.85,
		OriginalPrice: floatPtr(52.8),
		Image:         "/images/products/watermelon.png",
		Category:      "Fruits",
		Brand:         "Starkist",
		Rating:        floatPtr(4.0),
		ReviewCount:   60,
		Tag:           strPtr(model.TagNew),
		Items:         1,
	},
	{
		ID:            "4",
		Name:          "fresh orange apple 1 kg",
		Description:   "Fresh organic apples",
		Price:         17.85,
		OriginalPrice: floatPtr(19.8),
		Image:         "/images/products/apple.png",
		Category:      "Fruits",
		Brand:         "NestFood",
		Rating:        floatPtr(4.0),
		ReviewCount:   80,
		Items:         1,
	},
	{
		ID:            "5",
		Name:          "Blue Diamond Almonds Lightly Salted Vegetables",
		Description:   "Premium lightly salted almonds, perfect for snacking",
		Price:         23.85,
		OriginalPrice: floatPtr(25.8),
		Image:         "/images/products/blue-diamond-almonds.png",
		Category:      "Snacks",
		Brand:         "Blue Diamond",
		Rating:        floatPtr(4.0),
		ReviewCount:   45,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
	{
		ID:            "6",
		Name:          "Chobani Complete Vanilla Greek Yogurt",
		Description:   "Creamy vanilla Greek yogurt with complete nutrition",
		Price:         54.85,
		OriginalPrice: floatPtr(55.8),
		Image:         "/images/products/mighty-muffin.png",
		Category:      "Dairy",
		Brand:         "Chobani",
		Rating:        floatPtr(4.0),
		ReviewCount:   30,
		Items:         1,
	},
	{
		ID:            "7",
		Name:          "Canada Dry Ginger Ale - 2 L Bottle - 200ml - 400g",
		Description:   "Refreshing ginger ale beverage",
		Price:         32.85,
		OriginalPrice: floatPtr(35.8),
		Image:         "/images/products/pistachio-butter.png",
		Category:      "Beverages",
		Brand:         "Canada Dry",
		Rating:        floatPtr(4.0),
		ReviewCount:   25,
		Items:         1,
	},
	{
		ID:            "8",
		Name:          "Encore Seafoods Stuffed Alaskan Salmon",
		Description:   "Premium stuffed Alaskan salmon",
		Price:         35.85,
		OriginalPrice: floatPtr(57.8),
		Image:         "/images/products/yuya-niacin.png",
		Category:      "Seafood",
		Brand:         "Encore Seafoods",
		Rating:        floatPtr(4.0),
		ReviewCount:   15,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
	{
		ID:            "9",
		Name:          "Gorton's Beer Battered Fish Fillets with soft paper",
		Description:   "Crispy beer battered fish fillets",
		Price:         23.85,
		OriginalPrice: floatPtr(25.0),
		Image:         "/images/products/cafe-altura.png",
		Category:      "Seafood",
		Brand:         "Gorton's",
		Rating:        floatPtr(4.0),
		ReviewCount:   70,
		Tag:           strPtr(model.TagHot),
		Items:         1,
	},
	{
		ID:            "10",
		Name:          "Haagen-Dazs Caramel Cone Ice Cream Ketchup",
		Description:   "Rich caramel cone ice cream",
		Price:         22.85,
		OriginalPrice: floatPtr(24.8),
		Image:         "/images/products/pukka-latte.png",
		Category:      "Desserts",
		Brand:         "Haagen-Dazs",
		Rating:        floatPtr(2.0),
		ReviewCount:   10,
		Items:         1,
	},
	{
		ID:            "11",
		Name:          "All Natural Italian-Style Chicken Meatballs",
		Description:   "All natural Italian-style chicken meatballs, perfect for your favorite pasta dishes",
		Price:         19.50,
		OriginalPrice: floatPtr(30.00),
		Image:         "/images/products/chicken-meatballs.png",
		Category:      "Meats",
		Brand:         "Hodo Foods",
		Rating:        floatPtr(4.5),
		ReviewCount:   120,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
	{
		ID:            "12",
		Name:          "Angie's Boomchickapop Sweet and Salty",
		Description:   "Sweet and salty popcorn snack, perfectly balanced flavor",
		Price:         4.99,
		OriginalPrice: floatPtr(6.99),
		Image:         "/images/products/boomchickapop.png",
		Category:      "Snacks",
		Brand:         "Angie's",
		Rating:        floatPtr(4.3),
		ReviewCount:   85,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
	{
		ID:            "13",
		Name:          "Foster Farms Takeout Crispy Classic",
		Description:   "Crispy classic chicken strips, restaurant quality at home",
		Price:         12.99,
		OriginalPrice: floatPtr(16.99),
		Image:         "/images/products/foster-farms.png",
		Category:      "Meats",
		Brand:         "Foster Farms",
		Rating:        floatPtr(4.6),
		ReviewCount:   150,
		Tag:           strPtr(model.TagHot),
		Items:         1,
	},
	{
		ID:            "14",
		Name:          "Blue Diamond Almonds Lightly Salted",
		Description:   "Premium lightly salted almonds, perfect for snacking",
		Price:         8.99,
		OriginalPrice: floatPtr(10.59),
		Image:         "/images/products/blue-diamond-almonds.png",
		Category:      "Snacks",
		Brand:         "Blue Diamond",
		Rating:        floatPtr(4.4),
		ReviewCount:   95,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
	{
		ID:            "15",
		Name:          "Seeds of Change Organic Quinoa, Brown, & Red Rice",
		Description:   "Premium organic quinoa mixed with brown and red rice, perfect for healthy meals",
		Price:         32.85,
		OriginalPrice: floatPtr(33.8),
		Image:         "/images/products/quinoa-mix.png",
		Category:      "Grains",
		Brand:         "Seeds of Change",
		Rating:        floatPtr(4.0),
		ReviewCount:   90,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
	{
		ID:            "16",
		Name:          "Fresh Organic Vegetable Mix",
		Description:   "Fresh organic mix of kale, cucumber, and carrots, perfect for salads",
		Price:         12.99,
		OriginalPrice: floatPtr(15.99),
		Image:         "/images/products/vegetable-mix.png",
		Category:      "Vegetables",
		Brand:         "NestFood",
		Rating:        floatPtr(4.5),
		ReviewCount:   65,
		Tag:           strPtr(model.TagHot),
		Items:         1,
	},
	{
		ID:            "17",
		Name:          "Fresh Citrus Mix",
		Description:   "Fresh mix of oranges and lemons, bursting with vitamin C",
		Price:         18.85,
		OriginalPrice: floatPtr(22.50),
		Image:         "/images/products/citrus-mix.png",
		Category:      "Fruits",
		Brand:         "NestFood",
		Rating:        floatPtr(4.3),
		ReviewCount:   55,
		Tag:           strPtr(model.TagNew),
		Items:         1,
	},
	{
		ID:            "18",
		Name:          "Fresh Green Peas",
		Description:   "Fresh organic green peas, perfect for soups and side dishes",
		Price:         9.99,
		OriginalPrice: floatPtr(12.99),
		Image:         "/images/products/green-peas.png",
		Category:      "Vegetables",
		Brand:         "NestFood",
		Rating:        floatPtr(4.2),
		ReviewCount:   40,
		Tag:           strPtr(model.TagSale),
		Items:         1,
	},
}
