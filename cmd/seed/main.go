package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Modeva-Ecommerce/modeva-analytics-backend/config"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/models"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/repository"
	"github.com/Modeva-Ecommerce/modeva-analytics-backend/services"
)

func init() {
	_ = godotenv.Load()
}

type catalogueItem struct {
	name     string
	price    float64
	category string
	image    string
}

var catalogue = []catalogueItem{
	{"Linen Wrap Dress", 89.00, "dresses", "modeva/products/linen-wrap-dress"},
	{"Silk Slip Dress", 129.00, "dresses", "modeva/products/silk-slip-dress"},
	{"Pleated Midi Skirt", 64.50, "skirts", "modeva/products/pleated-midi-skirt"},
	{"Denim Mini Skirt", 45.00, "skirts", "modeva/products/denim-mini-skirt"},
	{"Oversized Blazer", 149.99, "outerwear", "modeva/products/oversized-blazer"},
	{"Wool Trench Coat", 239.00, "outerwear", "modeva/products/wool-trench-coat"},
	{"Cropped Knit Cardigan", 58.00, "knitwear", "modeva/products/cropped-knit-cardigan"},
	{"Ribbed Turtleneck", 39.90, "knitwear", "modeva/products/ribbed-turtleneck"},
	{"High-Rise Wide Jeans", 79.00, "denim", "modeva/products/high-rise-wide-jeans"},
	{"Straight Leg Jeans", 72.00, "denim", "modeva/products/straight-leg-jeans"},
	{"Poplin Shirt", 49.00, "tops", "modeva/products/poplin-shirt"},
	{"Satin Camisole", 34.00, "tops", "modeva/products/satin-camisole"},
	{"Leather Ankle Boots", 159.00, "shoes", "modeva/products/leather-ankle-boots"},
	{"Strappy Sandals", 69.00, "shoes", "modeva/products/strappy-sandals"},
	{"Woven Tote Bag", 55.00, "accessories", "modeva/products/woven-tote-bag"},
}

var (
	sizes    = []string{"XS", "S", "M", "L", "XL"}
	colors   = []string{"black", "ivory", "sand", "olive", "navy"}
	statuses = []models.OrderStatus{
		models.OrderStatusDelivered, models.OrderStatusDelivered, models.OrderStatusDelivered,
		models.OrderStatusShipped, models.OrderStatusShipped,
		models.OrderStatusProcessing,
		models.OrderStatusConfirmed,
		models.OrderStatusPending,
		models.OrderStatusCancelled,
		models.OrderStatusRefunded,
	}
)

// Seeds a storefront dataset and a CMS super admin, then prints a bearer token
// for the analytics endpoints.
// Usage: go run ./cmd/seed -email admin@modeva.com -days 400
func main() {
	email := flag.String("email", "admin@modeva.com", "super admin email")
	name := flag.String("name", "Modeva Admin", "super admin name")
	days := flag.Int("days", 400, "days of order history to generate")
	customers := flag.Int("customers", 250, "storefront customers to generate")
	reset := flag.Bool("reset", false, "drop the orders, users and products collections first")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA ANALYTICS - Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}

	config.ConnectMongo(cfg)
	config.InitCmsDB(cfg)
	defer config.CloseDB()
	log.Println("✓ Connected to databases")

	ctx := context.Background()
	db := config.StoreDB
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	now := time.Now().UTC()

	if *reset {
		for _, coll := range []string{repository.OrdersCollection, repository.UsersCollection, repository.ProductsCollection} {
			if err := db.Collection(coll).Drop(ctx); err != nil {
				log.Fatalf("Failed to drop %s: %v", coll, err)
			}
		}
		log.Println("✓ Dropped storefront collections")
	}

	products := seedProducts(ctx, db, now, *days)
	log.Printf("✓ Inserted %d products", len(products))

	users := seedUsers(ctx, db, rng, now, *days, *customers, *email, *name)
	log.Printf("✓ Inserted %d customers", len(users))

	orders := seedOrders(ctx, db, rng, now, *days, products, users)
	log.Printf("✓ Inserted %d orders", orders)

	if err := repository.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}
	log.Println("✓ Indexes ensured")

	// CMS admin and session
	if err := config.MigrateCMS(config.CmsGorm); err != nil {
		log.Fatalf("Failed to migrate CMS tables: %v", err)
	}

	admin, err := services.NewAdminService(config.CmsGorm).EnsureAdmin(ctx, *email, *name, models.AdminRoleSuperAdmin)
	if err != nil {
		log.Fatalf("Failed to create super admin: %v", err)
	}

	jwtService, err := services.NewJWTService(cfg.JWTSecret, cfg.JWTTokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	token, err := jwtService.GenerateAdminJWT(admin.ID.String(), admin.Email)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}
	sessions := services.NewAdminSessionService(config.CmsGorm)
	// earlier seed tokens stop working
	if err := sessions.DeactivateSessions(ctx, admin.ID); err != nil {
		log.Fatalf("Failed to revoke previous sessions: %v", err)
	}
	if _, err := sessions.CreateSession(ctx, admin.ID, token, "127.0.0.1", "modeva-seed", cfg.JWTTokenTTL); err != nil {
		log.Fatalf("Failed to create session: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Seed Completed Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("Admin: %s (%s)\n", admin.Email, admin.Role)
	fmt.Printf("Token: %s\n", token)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Printf("2. curl -H 'Authorization: Bearer %s' 'http://localhost:%s/api/admin/analytics?timeRange=30d'\n", token, cfg.Port)
	fmt.Println()
}

func seedProducts(ctx context.Context, db *mongo.Database, now time.Time, days int) []models.Product {
	products := make([]models.Product, len(catalogue))
	docs := make([]interface{}, len(catalogue))
	for i, item := range catalogue {
		products[i] = models.Product{
			ID:        primitive.NewObjectID(),
			Name:      item.name,
			Price:     item.price,
			Stock:     20 + i*7%50,
			Category:  item.category,
			Image:     item.image,
			CreatedAt: now.AddDate(0, 0, -days-30),
			UpdatedAt: now,
		}
		docs[i] = products[i]
	}
	if _, err := db.Collection(repository.ProductsCollection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert products: %v", err)
	}
	return products
}

func seedUsers(ctx context.Context, db *mongo.Database, rng *rand.Rand, now time.Time, days, count int, adminEmail, adminName string) []models.User {
	users := make([]models.User, 0, count+1)
	for i := 0; i < count; i++ {
		users = append(users, models.User{
			ID:        primitive.NewObjectID(),
			Name:      fmt.Sprintf("Customer %03d", i+1),
			Email:     fmt.Sprintf("customer%03d@example.com", i+1),
			CreatedAt: randomTime(rng, now, days),
		})
	}

	// Storefront account for OIDC sign-in
	_, err := db.Collection(repository.UsersCollection).UpdateOne(ctx,
		bson.M{"email": adminEmail},
		bson.M{
			"$set":         bson.M{"isAdmin": true, "name": adminName},
			"$setOnInsert": bson.M{"createdAt": now.AddDate(0, 0, -days)},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Fatalf("Failed to upsert admin account: %v", err)
	}

	docs := make([]interface{}, len(users))
	for i := range users {
		docs[i] = users[i]
	}
	if len(docs) > 0 {
		if _, err := db.Collection(repository.UsersCollection).InsertMany(ctx, docs); err != nil {
			log.Fatalf("Failed to insert users: %v", err)
		}
	}
	return users
}

func seedOrders(ctx context.Context, db *mongo.Database, rng *rand.Rand, now time.Time, days int, products []models.Product, users []models.User) int {
	if len(users) == 0 {
		return 0
	}

	var docs []interface{}
	for d := days; d >= 0; d-- {
		// busier towards the present so trends read as growth
		perDay := 1 + rng.Intn(3) + (days-d)*4/max(days, 1)
		for j := 0; j < perDay; j++ {
			createdAt := now.AddDate(0, 0, -d).Add(-time.Duration(rng.Intn(86400)) * time.Second)
			if !createdAt.Before(now) {
				continue
			}
			buyer := users[rng.Intn(len(users))]

			lines := 1 + rng.Intn(3)
			items := make([]models.OrderItem, 0, lines)
			total := 0.0
			for k := 0; k < lines; k++ {
				p := products[rng.Intn(len(products))]
				qty := 1 + rng.Intn(2)
				items = append(items, models.OrderItem{
					ProductID: p.ID,
					Name:      p.Name,
					Price:     p.Price,
					Quantity:  qty,
					Size:      sizes[rng.Intn(len(sizes))],
					Color:     colors[rng.Intn(len(colors))],
				})
				total += p.Price * float64(qty)
			}

			docs = append(docs, models.Order{
				ID:          primitive.NewObjectID(),
				OrderNumber: fmt.Sprintf("MOD-%s-%04d", createdAt.Format("20060102"), j+1),
				UserID:      buyer.ID,
				Items:       items,
				TotalAmount: float64(int(total*100+0.5)) / 100,
				Status:      statuses[rng.Intn(len(statuses))],
				CreatedAt:   createdAt,
				UpdatedAt:   createdAt,
			})
		}
	}

	if len(docs) == 0 {
		return 0
	}
	if _, err := db.Collection(repository.OrdersCollection).InsertMany(ctx, docs); err != nil {
		log.Fatalf("Failed to insert orders: %v", err)
	}
	return len(docs)
}

func randomTime(rng *rand.Rand, now time.Time, days int) time.Time {
	return now.Add(-time.Duration(rng.Int63n(int64(days)*int64(24*time.Hour) + 1)))
}
