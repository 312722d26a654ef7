// Package seed produces the deterministic catalog served in memory mode.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/fekuna/omnipos-storefront/internal/model"
	"github.com/shopspring/decimal"
)

type Catalog struct {
	Products  []model.Product
	Shops     []model.Shop
	Medicines []model.Medicine
	Orders    []model.Order
}

// TotalFunc prices an order from its items.
type TotalFunc func(items []model.OrderItem) decimal.Decimal

var (
	productNames = []string{
		"Premium Wireless Earbuds", "Ultra HD Smart TV 55\"", "Men's Casual Cotton T-Shirt",
		"Women's Yoga Leggings", "Stainless Steel Kitchen Knife Set", "Organic Coffee Beans",
		"Professional Gaming Mouse", "Bamboo Cutting Board", "Essential Oil Diffuser",
		"Ceramic Plant Pot", "Bluetooth Wireless Speaker", "Anti-Aging Face Cream",
		"Adjustable Laptop Stand", "Cotton Bed Sheets", "Fitness Activity Tracker",
	}
	productCategories = []string{
		"audio", "electronics", "men", "women", "kitchen", "food", "laptops", "kitchen",
		"decor", "decor", "audio", "other", "laptops", "furniture", "smartphones",
	}
	brands = []string{"Acme", "Zenith", "Orbit", "Nordic", "Lumen"}

	shopNames = []string{
		"TechHub Store", "Fashion Outlet", "Home Essentials", "Kitchen Paradise", "Beauty Secrets",
		"Sports Center", "Book Haven", "Pet Supplies Plus", "Garden World", "Kids Wonderland",
	}
	cities = []string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"}

	medicineNames = []string{
		"Paracetamol Tablets", "Ibuprofen Pain Relief", "Vitamin C Supplements", "Allergy Relief Capsules",
		"Cough Syrup", "Multivitamin Tablets", "Calcium & Vitamin D Tablets", "First Aid Antiseptic Cream",
		"Cold & Flu Tablets", "Digestive Health Capsules",
	}
	medicineCategories = []string{"Pain Relief", "Vitamins", "Cold & Flu", "First Aid", "Digestive Health"}
)

const (
	productDescription  = "This is a high-quality product designed for maximum performance and comfort. Made with premium materials and built to last."
	shopDescription     = "We are a leading retailer specializing in high-quality products at competitive prices."
	medicineDescription = "High-quality healthcare product for your wellbeing. Always read the label and follow the instructions."
)

// Generate builds the same catalog for the same seed and reference time.
func Generate(seed int64, now time.Time, total TotalFunc) Catalog {
	r := rand.New(rand.NewSource(seed))
	c := Catalog{
		Products:  products(r, now, 60),
		Shops:     shops(r, now, 20),
		Medicines: medicines(r, now, 30),
	}
	c.Orders = orders(r, now, 10, c.Products, total)
	return c
}

func products(r *rand.Rand, now time.Time, n int) []model.Product {
	out := make([]model.Product, n)
	for i := range out {
		created := now.Add(-time.Duration(r.Intn(90*24)) * time.Hour)
		p := model.Product{
			BaseModel:   model.BaseModel{ID: fmt.Sprintf("product-%d", i+1), CreatedAt: created, UpdatedAt: created},
			Name:        productNames[i%len(productNames)],
			Description: productDescription,
			Category:    productCategories[i%len(productCategories)],
			Price:       decimal.NewFromInt(int64(r.Intn(200) + 10)),
			Rating:      float64(20+r.Intn(31)) / 10,
			Upvotes:     r.Intn(1000),
			Stock:       r.Intn(50) + 1,
			ImageURL:    fmt.Sprintf("https://images.example.com/products/%d.jpg", i%len(productNames)+1),
		}
		if r.Intn(10) == 0 {
			p.Stock = 0
		}
		if r.Intn(5) > 0 {
			b := brands[r.Intn(len(brands))]
			p.Brand = &b
		}
		out[i] = p
	}
	return out
}

func shops(r *rand.Rand, now time.Time, n int) []model.Shop {
	out := make([]model.Shop, n)
	for i := range out {
		out[i] = model.Shop{
			BaseModel:    model.BaseModel{ID: fmt.Sprintf("shop-%d", i+1), CreatedAt: now, UpdatedAt: now},
			Name:         shopNames[i%len(shopNames)],
			AvatarURL:    fmt.Sprintf("https://images.example.com/shops/%d.jpg", i%len(shopNames)+1),
			Address:      fmt.Sprintf("%d Main St", r.Intn(100)+1),
			City:         cities[r.Intn(len(cities))],
			ProductCount: r.Intn(100) + 10,
			Followers:    r.Intn(1000) + 100,
			Rating:       float64(20+r.Intn(31)) / 10,
			Description:  shopDescription,
		}
		out[i].Address += ", " + out[i].City + ", Australia"
	}
	return out
}

func medicines(r *rand.Rand, now time.Time, n int) []model.Medicine {
	out := make([]model.Medicine, n)
	for i := range out {
		out[i] = model.Medicine{
			BaseModel:            model.BaseModel{ID: fmt.Sprintf("medicine-%d", i+1), CreatedAt: now, UpdatedAt: now},
			Name:                 medicineNames[i%len(medicineNames)],
			ImageURL:             fmt.Sprintf("https://images.example.com/medicines/%d.jpg", i%len(medicineNames)+1),
			Price:                decimal.NewFromInt(int64(r.Intn(30) + 5)),
			Category:             medicineCategories[r.Intn(len(medicineCategories))],
			Description:          medicineDescription,
			InStock:              r.Float64() > 0.1,
			RequiresPrescription: r.Float64() > 0.7,
		}
	}
	return out
}

func orders(r *rand.Rand, now time.Time, n int, catalog []model.Product, total TotalFunc) []model.Order {
	out := make([]model.Order, n)
	for i := range out {
		date := now.Add(-time.Duration(r.Intn(30)) * 24 * time.Hour)
		items := make([]model.OrderItem, r.Intn(4)+1)
		for j := range items {
			p := catalog[r.Intn(len(catalog))]
			items[j] = model.OrderItem{
				ID:        fmt.Sprintf("item-%d", j+1),
				ProductID: p.ID,
				Name:      p.Name,
				Price:     p.Price,
				Quantity:  r.Intn(3) + 1,
			}
		}
		o := model.Order{
			BaseModel: model.BaseModel{ID: fmt.Sprintf("order-%d", i+1), CreatedAt: date, UpdatedAt: date},
			Date:      date,
			Status:    model.OrderStatuses[r.Intn(len(model.OrderStatuses))],
			Items:     items,
		}
		if total != nil {
			o.TotalAmount = total(items)
		}
		out[i] = o
	}
	return out
}
