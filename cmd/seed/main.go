package main

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"tiktok-shop/pkg/config"
	"tiktok-shop/pkg/database"
	"tiktok-shop/pkg/jwt"
	"tiktok-shop/pkg/logger"
	"tiktok-shop/pkg/models"
	"tiktok-shop/pkg/money"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type seedUser struct {
	email    string
	username string
	role     models.UserRole
	shop     string
	bank     *models.BankingProfile
	balance  money.Amount
}

var seedUsers = []seedUser{
	{email: "admin@shop.test", username: "admin", role: models.RoleAdmin},
	{
		email: "linh@shop.test", username: "linh_crafts", role: models.RoleSeller, shop: "Linh Crafts",
		bank:    &models.BankingProfile{BankName: "Vietcombank", AccountNumber: "0071000123456", AccountName: "NGUYEN THUY LINH"},
		balance: money.FromMajor(1500000),
	},
	// No banking profile, so withdrawals answer 404 until one is saved.
	{email: "minh@shop.test", username: "minh_tech", role: models.RoleSeller, shop: "Minh Tech"},
	{email: "an@shop.test", username: "an_buyer", role: models.RoleCustomer},
	{email: "bao@shop.test", username: "bao_buyer", role: models.RoleCustomer},
}

func main() {
	var (
		password  = flag.String("password", "password123", "password for every seeded user")
		withToken = flag.Bool("tokens", true, "print a bearer token per user")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithLevel(cfg.LogLevel)
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	users, err := seedDatabase(db, *password, log)
	if err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	if *withToken {
		jwtService := jwt.NewService(cfg.JWTSecret)
		for _, u := range users {
			token, err := jwtService.GenerateToken(u.ID, string(u.Role))
			if err != nil {
				log.Error("Failed to sign token for %s: %v", u.Username, err)
				continue
			}
			fmt.Printf("%-12s %-8s %s\n", u.Username, u.Role, token)
		}
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, password string, log *logger.Logger) ([]models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	users := make([]models.User, 0, len(seedUsers))
	sellerIDs := make(map[string]string)
	var customerIDs []string

	for _, su := range seedUsers {
		user, created, err := ensureUser(db, su, string(hash))
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
		if !created {
			log.Info("User %s already exists, skipping", su.username)
		} else {
			log.Info("Created user: %s (%s)", su.username, su.role)
		}

		switch su.role {
		case models.RoleCustomer:
			customerIDs = append(customerIDs, user.ID)
		case models.RoleSeller:
			sellerID, err := ensureSeller(db, user.ID, su)
			if err != nil {
				return nil, err
			}
			sellerIDs[su.username] = sellerID
		}
	}

	if len(customerIDs) < 2 {
		return users, nil
	}

	orders := []models.Order{
		sampleOrder(customerIDs[0], models.OrderDelivered, models.OrderItem{SellerID: sellerIDs["linh_crafts"], ProductID: "mug-01", ProductName: "Glazed mug", Price: int64(money.FromMajor(120000)), Quantity: 2}),
		sampleOrder(customerIDs[1], models.OrderDelivered, models.OrderItem{SellerID: sellerIDs["linh_crafts"], ProductID: "vase-02", ProductName: "Bamboo vase", Price: int64(money.FromMajor(350000)), Quantity: 1}),
		sampleOrder(customerIDs[0], models.OrderShipped,
			models.OrderItem{SellerID: sellerIDs["linh_crafts"], ProductID: "mug-01", ProductName: "Glazed mug", Price: int64(money.FromMajor(120000)), Quantity: 1},
			models.OrderItem{SellerID: sellerIDs["minh_tech"], ProductID: "cable-usb-c", ProductName: "USB-C cable", Price: int64(money.FromMajor(89000)), Quantity: 3},
		),
		sampleOrder(customerIDs[1], models.OrderProcessing, models.OrderItem{SellerID: sellerIDs["minh_tech"], ProductID: "hub-7p", ProductName: "7-port hub", Price: int64(money.FromMajor(450000)), Quantity: 1}),
		sampleOrder(customerIDs[0], models.OrderPending, models.OrderItem{SellerID: sellerIDs["minh_tech"], ProductID: "cable-usb-c", ProductName: "USB-C cable", Price: int64(money.FromMajor(89000)), Quantity: 1}),
		sampleOrder(customerIDs[1], models.OrderCancelled, models.OrderItem{SellerID: sellerIDs["linh_crafts"], ProductID: "vase-02", ProductName: "Bamboo vase", Price: int64(money.FromMajor(350000)), Quantity: 2}),
	}

	var existing int64
	if err := db.Model(&models.Order{}).Where("customer_id IN ?", customerIDs).Count(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	if existing > 0 {
		log.Info("Orders already seeded, skipping")
		return users, nil
	}

	for i := range orders {
		if err := db.Create(&orders[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		log.Info("Created %s order %s for %s", orders[i].Status, orders[i].ID, money.Amount(orders[i].TotalAmount))
	}

	return users, nil
}

func ensureUser(db *gorm.DB, su seedUser, passwordHash string) (*models.User, bool, error) {
	var user models.User
	err := db.Where("email = ?", su.email).First(&user).Error
	if err == nil {
		return &user, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to look up %s: %w", su.email, err)
	}

	user = models.User{
		Email:        su.email,
		Username:     su.username,
		PasswordHash: passwordHash,
		Role:         su.role,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, false, fmt.Errorf("failed to create user %s: %w", su.username, err)
	}
	return &user, true, nil
}

// ensureSeller creates the seller row, wallet and banking profile when they are missing.
func ensureSeller(db *gorm.DB, userID string, su seedUser) (string, error) {
	seller := models.Seller{UserID: userID, ShopName: su.shop}
	if err := db.Where(models.Seller{UserID: userID}).FirstOrCreate(&seller).Error; err != nil {
		return "", fmt.Errorf("failed to create seller %s: %w", su.shop, err)
	}

	wallet := models.Wallet{UserID: userID, Balance: int64(su.balance)}
	if err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "user_id"}}, DoNothing: true}).Create(&wallet).Error; err != nil {
		return "", fmt.Errorf("failed to create wallet for %s: %w", su.shop, err)
	}

	if su.bank != nil {
		bank := *su.bank
		bank.SellerID = seller.ID
		if err := db.Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "seller_id"}}, DoNothing: true}).Create(&bank).Error; err != nil {
			return "", fmt.Errorf("failed to create banking profile for %s: %w", su.shop, err)
		}
	}

	return seller.ID, nil
}

var orderClock = time.Now().UTC().Add(-72 * time.Hour)

func sampleOrder(customerID string, status models.OrderStatus, items ...models.OrderItem) models.Order {
	orderClock = orderClock.Add(3 * time.Hour)
	order := models.Order{
		CustomerID:      customerID,
		Status:          status,
		ShippingAddress: "12 Nguyen Hue, District 1, Ho Chi Minh City",
		Items:           items,
		CreatedAt:       orderClock,
		UpdatedAt:       orderClock,
	}
	order.TotalAmount = order.Total()
	return order
}
