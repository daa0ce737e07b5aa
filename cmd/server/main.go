package main

import (
	"log"
	"net/http"
	"os"

	"vastra_back_end/internal/config"
	"vastra_back_end/internal/database"
	paymenthandlers "vastra_back_end/internal/handlers/payment"
	"vastra_back_end/internal/payment"
	"vastra_back_end/internal/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
)

func main() {
	config.Load()

	gateway, err := payment.NewRazorpayGateway()
	if err != nil {
		log.Fatal("❌ Impossible d'initialiser Razorpay :", err)
	}
	paymenthandlers.Gateway = gateway
	log.Println("✅ Razorpay initialisé")

	database.ConnectDatabases()

	initOAuthProviders()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendURL()},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Vastra lancé sur le port", port)
	r.Run(":" + port)
}

func frontendURL() string {
	if url := os.Getenv("FRONTEND_URL"); url != "" {
		return url
	}
	return "http://localhost:3000"
}

func initOAuthProviders() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}

	// ✅ Configuration du store
	store := sessions.NewCookieStore([]byte(sessionSecret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false en dev, true en prod
		SameSite: http.SameSiteLaxMode,
	}

	gothic.Store = store

	// Pas de GetProviderName maison : la résolution par défaut de gothic
	// couvre la query et le contexte posé par les handlers (:provider)

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	googleClientID := os.Getenv("GOOGLE_CLIENT_ID")
	googleClientSecret := os.Getenv("GOOGLE_CLIENT_SECRET")

	if googleClientID == "" || googleClientSecret == "" {
		log.Println("⚠️ Aucun provider OAuth configuré")
		return
	}

	goth.UseProviders(google.New(
		googleClientID,
		googleClientSecret,
		baseURL+"/api/auth/google/callback",
	))
	log.Println("✅ Google OAuth activé")
}
