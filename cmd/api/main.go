package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-pos-api/internal/handler"
	"go-pos-api/internal/middleware"
	"go-pos-api/internal/model"
	"go-pos-api/internal/repository"
	"go-pos-api/internal/service"
	"go-pos-api/internal/ws"
	"go-pos-api/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Shop{},
		&model.Customer{},
		&model.Supplier{},
		&model.Brand{},
		&model.Category{},
		&model.Unit{},
		&model.Product{},
		&model.Sale{},
		&model.SaleItem{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency injection (wiring layers)
	userRepo := repository.NewUserRepo(db)
	shopRepo := repository.NewShopRepo(db)
	customerRepo := repository.NewCustomerRepo(db)
	supplierRepo := repository.NewSupplierRepo(db)
	brandRepo := repository.NewBrandRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)
	unitRepo := repository.NewUnitRepo(db)
	productRepo := repository.NewProductRepo(db)
	saleRepo := repository.NewSaleRepo(db)
	dashRepo := repository.NewDashboardRepo(db)

	authService := service.NewAuthService(userRepo)
	userService := service.NewUserService(userRepo)
	shopService := service.NewShopService(shopRepo, userRepo)
	partnerService := service.NewPartnerService(customerRepo, supplierRepo)
	catalogService := service.NewCatalogService(brandRepo, categoryRepo, unitRepo)
	productService := service.NewProductService(productRepo)
	saleService := service.NewSaleService(saleRepo, wsHub)
	dashService := service.NewDashboardService(dashRepo)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	shopHandler := handler.NewShopHandler(shopService)
	partnerHandler := handler.NewPartnerHandler(partnerService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	productHandler := handler.NewProductHandler(productService)
	saleHandler := handler.NewSaleHandler(saleService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "POS Inventory API v1.0",
	})

	app.Use(logger.New())  // Request logging
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// Auth routes (no authentication required)
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)

	// All routes below require authentication
	protected := api.Group("", middleware.RequireAuth())

	// Sale workflow
	protected.Post("/sales", saleHandler.CreateSale)
	protected.Post("/sales/items", saleHandler.CreateSaleItems)
	protected.Get("/sales", saleHandler.GetSales)
	protected.Get("/sales/:id", saleHandler.GetSale)
	protected.Patch("/sales/:id", saleHandler.UpdateSale)
	protected.Delete("/sales/:id", saleHandler.DeleteSale)

	// Products
	protected.Post("/products", productHandler.CreateProduct)
	protected.Get("/products", productHandler.GetProducts)
	protected.Get("/products/:id", productHandler.GetProduct)
	protected.Patch("/products/:id", productHandler.UpdateProduct)
	protected.Delete("/products/:id", productHandler.DeleteProduct)

	// Catalog master data
	protected.Post("/brands", catalogHandler.CreateBrand)
	protected.Get("/brands", catalogHandler.GetBrands)
	protected.Get("/brands/:id", catalogHandler.GetBrand)
	protected.Patch("/brands/:id", catalogHandler.UpdateBrand)
	protected.Delete("/brands/:id", catalogHandler.DeleteBrand)

	protected.Post("/categories", catalogHandler.CreateCategory)
	protected.Get("/categories", catalogHandler.GetCategories)
	protected.Get("/categories/:id", catalogHandler.GetCategory)
	protected.Patch("/categories/:id", catalogHandler.UpdateCategory)
	protected.Delete("/categories/:id", catalogHandler.DeleteCategory)

	protected.Post("/units", catalogHandler.CreateUnit)
	protected.Get("/units", catalogHandler.GetUnits)
	protected.Get("/units/:id", catalogHandler.GetUnit)
	protected.Patch("/units/:id", catalogHandler.UpdateUnit)
	protected.Delete("/units/:id", catalogHandler.DeleteUnit)

	// Trading partners
	protected.Post("/customers", partnerHandler.CreateCustomer)
	protected.Get("/customers", partnerHandler.GetCustomers)
	protected.Get("/customers/:id", partnerHandler.GetCustomer)
	protected.Patch("/customers/:id", partnerHandler.UpdateCustomer)
	protected.Delete("/customers/:id", partnerHandler.DeleteCustomer)

	protected.Post("/suppliers", partnerHandler.CreateSupplier)
	protected.Get("/suppliers", partnerHandler.GetSuppliers)
	protected.Get("/suppliers/:id", partnerHandler.GetSupplier)
	protected.Patch("/suppliers/:id", partnerHandler.UpdateSupplier)
	protected.Delete("/suppliers/:id", partnerHandler.DeleteSupplier)

	// Shops
	protected.Post("/shops", shopHandler.CreateShop)
	protected.Get("/shops", shopHandler.GetShops)
	protected.Get("/shops/:id", shopHandler.GetShop)
	protected.Patch("/shops/:id", shopHandler.UpdateShop)
	protected.Delete("/shops/:id", shopHandler.DeleteShop)

	// User management (admin only, except attendant listing)
	protected.Get("/users/attendants", userHandler.GetAttendants)
	protected.Get("/users", userHandler.GetUsers)
	protected.Get("/users/:id", userHandler.GetUser)
	protected.Post("/users", middleware.RequireRole(string(model.RoleAdmin)), userHandler.CreateUser)
	protected.Patch("/users/:id", middleware.RequireRole(string(model.RoleAdmin)), userHandler.UpdateUser)
	protected.Delete("/users/:id", middleware.RequireRole(string(model.RoleAdmin)), userHandler.DeleteUser)

	// Dashboard
	protected.Get("/dashboard/stats", dashHandler.GetStats)
	protected.Get("/dashboard/revenue", dashHandler.GetRevenue)

	// WebSocket route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	if _, err := userRepo.FindByEmail("admin@example.com"); err == nil {
		return
	}

	admin := &model.User{
		Email:     "admin@example.com",
		Username:  "admin",
		FirstName: "Master",
		LastName:  "Administrator",
		Phone:     "0000000000",
		Image:     model.DefaultUserImage,
		Role:      model.RoleAdmin,
		Gender:    model.GenderMale,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword("admin12345"); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}

	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
	} else {
		log.Println("Admin user created: admin@example.com / admin12345")
	}
}
