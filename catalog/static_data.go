package catalog

import (
	"time"

	"github.com/Lounge-Area/fivemshop/models"
)

// staticTime is the synthetic timestamp assigned to all snapshot rows.
// The remote backend assigns real timestamps; the snapshot is fixed at
// build time.
var staticTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// staticCategories is the embedded category snapshot served in
// fallback mode. Subcategory counts are not baked in here; they are
// derived from the product snapshot at resolution time.
var staticCategories = []models.Category{
	{
		ID: "tools", Name: "Tools", Icon: "wrench", CreatedAt: staticTime,
		Subcategories: []models.Subcategory{
			{ID: "hand-tools", Name: "Hand Tools", CategoryID: "tools", CreatedAt: staticTime},
			{ID: "power-tools", Name: "Power Tools", CategoryID: "tools", CreatedAt: staticTime},
			{ID: "automotive-tools", Name: "Automotive Tools", CategoryID: "tools", CreatedAt: staticTime},
			{ID: "construction-tools", Name: "Construction Tools", CategoryID: "tools", CreatedAt: staticTime},
		},
	},
	{
		ID: "food", Name: "Food", Icon: "apple", CreatedAt: staticTime,
		Subcategories: []models.Subcategory{
			{ID: "beverages", Name: "Beverages", CategoryID: "food", CreatedAt: staticTime},
			{ID: "snacks", Name: "Snacks", CategoryID: "food", CreatedAt: staticTime},
			{ID: "fresh-produce", Name: "Fresh Produce", CategoryID: "food", CreatedAt: staticTime},
			{ID: "canned-goods", Name: "Canned Goods", CategoryID: "food", CreatedAt: staticTime},
			{ID: "dairy", Name: "Dairy", CategoryID: "food", CreatedAt: staticTime},
		},
	},
	{
		ID: "electronics", Name: "Electronics", Icon: "smartphone", CreatedAt: staticTime,
		Subcategories: []models.Subcategory{
			{ID: "smartphones", Name: "Smartphones", CategoryID: "electronics", CreatedAt: staticTime},
			{ID: "computers", Name: "Computers", CategoryID: "electronics", CreatedAt: staticTime},
			{ID: "gaming", Name: "Gaming", CategoryID: "electronics", CreatedAt: staticTime},
			{ID: "audio-equipment", Name: "Audio Equipment", CategoryID: "electronics", CreatedAt: staticTime},
			{ID: "smart-home", Name: "Smart Home", CategoryID: "electronics", CreatedAt: staticTime},
		},
	},
}

// staticProducts is the embedded product snapshot served in fallback
// mode. No ShopID values: shop-scoped features are unavailable without
// the remote backend.
var staticProducts = []models.Product{
	{ID: "ht001", Name: "Professional Hammer Set", Price: 89.99, CategoryID: "tools", SubcategoryID: strPtr("hand-tools"),
		Description: "Complete set of professional hammers for various tasks",
		ImageURL:    "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg",
		InStock:     true, StockQuantity: 25, Tags: []string{"hammer", "professional", "construction"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "ht002", Name: "Screwdriver Kit (24-piece)", Price: 34.99, CategoryID: "tools", SubcategoryID: strPtr("hand-tools"),
		Description: "Complete screwdriver set with magnetic tips",
		ImageURL:    "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg",
		InStock:     true, StockQuantity: 40, Tags: []string{"screwdriver", "kit", "magnetic"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "pt001", Name: "Cordless Drill Pro", Price: 199.99, CategoryID: "tools", SubcategoryID: strPtr("power-tools"),
		Description: "High-performance cordless drill with 2 batteries",
		ImageURL:    "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg",
		InStock:     true, StockQuantity: 12, Tags: []string{"drill", "cordless", "professional"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "pt002", Name: "Electric Circular Saw", Price: 159.99, CategoryID: "tools", SubcategoryID: strPtr("power-tools"),
		Description: "Precision circular saw for wood cutting",
		ImageURL:    "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg",
		InStock:     false, StockQuantity: 0, Tags: []string{"saw", "electric", "cutting"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "at001", Name: "Socket Wrench Set", Price: 74.99, CategoryID: "tools", SubcategoryID: strPtr("automotive-tools"),
		Description: "72-tooth ratchet set for automotive work",
		ImageURL:    "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg",
		InStock:     true, StockQuantity: 18, Tags: []string{"wrench", "automotive", "ratchet"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "ct001", Name: "Concrete Mixer Bucket", Price: 129.99, CategoryID: "tools", SubcategoryID: strPtr("construction-tools"),
		Description: "Heavy-duty mixing bucket for construction sites",
		ImageURL:    "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg",
		InStock:     true, StockQuantity: 7, Tags: []string{"construction", "mixing", "heavy-duty"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "bv001", Name: "Energy Drink Pack (12)", Price: 24.99, CategoryID: "food", SubcategoryID: strPtr("beverages"),
		Description: "Premium energy drinks for sustained energy",
		ImageURL:    "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg",
		InStock:     true, StockQuantity: 60, Tags: []string{"energy", "drinks", "pack"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "bv002", Name: "Craft Beer Selection", Price: 18.99, CategoryID: "food", SubcategoryID: strPtr("beverages"),
		Description: "Local craft beer variety pack",
		ImageURL:    "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg",
		InStock:     true, StockQuantity: 35, Tags: []string{"beer", "craft", "local"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "sn001", Name: "Mixed Nuts Premium", Price: 12.99, CategoryID: "food", SubcategoryID: strPtr("snacks"),
		Description: "Roasted and salted premium nut mix",
		ImageURL:    "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg",
		InStock:     true, StockQuantity: 80, Tags: []string{"nuts", "snack", "premium"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "sn002", Name: "Potato Chips Family Size", Price: 5.99, CategoryID: "food", SubcategoryID: strPtr("snacks"),
		Description: "Crispy salted potato chips, family size bag",
		ImageURL:    "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg",
		InStock:     false, StockQuantity: 0, Tags: []string{"chips", "snack", "salted"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "fp001", Name: "Organic Apples (1kg)", Price: 4.49, CategoryID: "food", SubcategoryID: strPtr("fresh-produce"),
		Description: "Fresh organic apples from local farms",
		ImageURL:    "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg",
		InStock:     true, StockQuantity: 50, Tags: []string{"fruit", "organic", "fresh"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "cg001", Name: "Canned Tomato Soup", Price: 2.49, CategoryID: "food", SubcategoryID: strPtr("canned-goods"),
		Description: "Classic tomato soup, ready to heat",
		ImageURL:    "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg",
		InStock:     true, StockQuantity: 120, Tags: []string{"canned", "soup"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "dy001", Name: "Whole Milk (1L)", Price: 1.99, CategoryID: "food", SubcategoryID: strPtr("dairy"),
		Description: "Fresh whole milk from local dairies",
		ImageURL:    "https://images.pexels.com/photos/544961/pexels-photo-544961.jpeg",
		InStock:     true, StockQuantity: 45, Tags: []string{"dairy", "milk", "fresh"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "sp001", Name: "Smartphone X Pro", Price: 899.99, CategoryID: "electronics", SubcategoryID: strPtr("smartphones"),
		Description: "Flagship smartphone with triple camera",
		ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
		InStock:     true, StockQuantity: 8, Tags: []string{"phone", "flagship", "camera"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "sp002", Name: "Budget Smartphone Lite", Price: 149.99, CategoryID: "electronics", SubcategoryID: strPtr("smartphones"),
		Description: "Reliable entry-level smartphone",
		ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
		InStock:     true, StockQuantity: 30, Tags: []string{"phone", "budget"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "cp001", Name: "Gaming Laptop 15\"", Price: 1299.99, CategoryID: "electronics", SubcategoryID: strPtr("computers"),
		Description: "High-refresh laptop for gaming and work",
		ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
		InStock:     true, StockQuantity: 5, Tags: []string{"laptop", "gaming", "computer"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "sh001", Name: "Smart Home Hub", Price: 129.99, CategoryID: "electronics", SubcategoryID: strPtr("smart-home"),
		Description: "Voice-controlled hub for smart home devices",
		ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
		InStock:     false, StockQuantity: 0, Tags: []string{"smart-home", "hub", "voice"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "gm001", Name: "Gaming Controller Elite", Price: 59.99, CategoryID: "electronics", SubcategoryID: strPtr("gaming"),
		Description: "Wireless controller with customizable paddles",
		ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
		InStock:     true, StockQuantity: 22, Tags: []string{"gaming", "controller", "wireless"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "au001", Name: "Bluetooth Headphones", Price: 79.99, CategoryID: "electronics", SubcategoryID: strPtr("audio-equipment"),
		Description: "Over-ear headphones with noise cancellation",
		ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
		InStock:     true, StockQuantity: 15, Tags: []string{"audio", "bluetooth", "headphones"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
	{ID: "au002", Name: "Portable Speaker Mini", Price: 39.99, CategoryID: "electronics", SubcategoryID: strPtr("audio-equipment"),
		Description: "Compact waterproof bluetooth speaker",
		ImageURL:    "https://images.pexels.com/photos/404280/pexels-photo-404280.jpeg",
		InStock:     false, StockQuantity: 0, Tags: []string{"audio", "speaker", "portable"},
		CreatedAt: staticTime, UpdatedAt: staticTime},
}

// StaticCategories returns a copy of the embedded category snapshot.
func StaticCategories() []models.Category {
	out := make([]models.Category, len(staticCategories))
	copy(out, staticCategories)
	for i := range out {
		subs := make([]models.Subcategory, len(out[i].Subcategories))
		copy(subs, out[i].Subcategories)
		out[i].Subcategories = subs
	}
	return out
}

// StaticProducts returns a copy of the embedded product snapshot.
func StaticProducts() []models.Product {
	out := make([]models.Product, len(staticProducts))
	copy(out, staticProducts)
	return out
}

func strPtr(s string) *string {
	return &s
}
