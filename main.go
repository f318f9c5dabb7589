package main

import (
    "log"
    "net/http"

    "investpro/config"
    "investpro/database"
    "investpro/handlers"
    "investpro/ledger"
    "investpro/middleware"
    "investpro/utils"

    "github.com/gorilla/mux"
    "github.com/joho/godotenv"
    "github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
    // Load environment variables
    if err := godotenv.Load(); err != nil {
        log.Println("No .env file found")
    }

    cfg := config.Load()
    config.ValidateConfig(cfg)

    if err := utils.InitializeEncryption(cfg.EncryptionKey); err != nil {
        log.Fatal("Failed to initialize encryption:", err)
    }

    if err := utils.InitializeJWT(cfg.JWTSecret); err != nil {
        log.Fatal("Failed to initialize JWT:", err)
    }

    db, err := database.Initialize(cfg.DatabaseURL)
    if err != nil {
        log.Fatal("Failed to initialize database:", err)
    }

    svc := ledger.New(db, cfg)
    svc.StartAccrualScheduler()

    h := handlers.NewHandlers(db, cfg, svc)

    r := mux.NewRouter()

    // Apply global middleware
    r.Use(middleware.CORS)
    r.Use(middleware.RateLimit)

    r.Handle("/metrics", promhttp.Handler())

    // Public routes
    r.HandleFunc("/api/register", h.Register).Methods("POST")
    r.HandleFunc("/api/login", h.Login).Methods("POST")
    r.HandleFunc("/api/health", h.HealthCheck).Methods("GET")

    // Protected routes
    protected := r.PathPrefix("/api").Subrouter()
    protected.Use(middleware.JWTAuth)

    // User routes
    protected.HandleFunc("/user/profile", h.GetProfile).Methods("GET")
    protected.HandleFunc("/referral-link", h.GetReferralLink).Methods("GET")

    // Plan and investment routes
    protected.HandleFunc("/plans", h.GetPlans).Methods("GET")
    protected.HandleFunc("/plans/purchase", h.PurchasePlan).Methods("POST")
    protected.HandleFunc("/investments", h.GetInvestments).Methods("GET")

    // Recharge routes
    protected.HandleFunc("/recharges", h.RequestRecharge).Methods("POST")
    protected.HandleFunc("/recharges", h.GetRecharges).Methods("GET")

    // Withdrawal routes
    protected.HandleFunc("/withdrawals", h.RequestWithdrawal).Methods("POST")
    protected.HandleFunc("/withdrawals", h.GetWithdrawals).Methods("GET")

    // Admin routes
    adminRoutes := protected.PathPrefix("/admin").Subrouter()
    adminRoutes.Use(middleware.AdminAuth)
    adminRoutes.HandleFunc("/recharges/pending", h.GetPendingRecharges).Methods("GET")
    adminRoutes.HandleFunc("/recharges/{id}/approve", h.ApproveRecharge).Methods("POST")
    adminRoutes.HandleFunc("/recharges/{id}/reject", h.RejectRecharge).Methods("POST")
    adminRoutes.HandleFunc("/withdrawals/pending", h.GetPendingWithdrawals).Methods("GET")
    adminRoutes.HandleFunc("/withdrawals/{id}/approve", h.ApproveWithdrawal).Methods("POST")
    adminRoutes.HandleFunc("/withdrawals/{id}/reject", h.RejectWithdrawal).Methods("POST")
    adminRoutes.HandleFunc("/users/search", h.SearchUsers).Methods("GET")
    adminRoutes.HandleFunc("/users/balance-adjust", h.AdjustBalance).Methods("POST")
    adminRoutes.HandleFunc("/adjustments", h.GetBalanceAdjustments).Methods("GET")
    adminRoutes.HandleFunc("/accrual/run", h.RunAccrual).Methods("POST")

    log.Printf("Server starting on port %s", cfg.Port)
    log.Printf("Environment: %s", cfg.Environment)
    log.Fatal(http.ListenAndServe(":"+cfg.Port, r))
}
