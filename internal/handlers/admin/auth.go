package admin

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = time.Hour

//
// 🔐 POST /api/admin/login — identifiants admin depuis l'environnement
//
func Login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	adminUser := os.Getenv("ADMIN_USERNAME")
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminUser == "" || adminPass == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Administration non configurée"})
		return
	}

	if input.Username != adminUser || input.Password != adminPass {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	claims := jwt.MapClaims{
		"username": input.Username,
		"admin":    true,
		"exp":      time.Now().Add(tokenLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie("adminToken", signed, int(tokenLifetime.Seconds()), "/", "", secure, true)

	c.JSON(http.StatusOK, gin.H{"message": "Authentification réussie"})
}

//
// ✅ GET /api/admin/check-auth — protégé par AdminAuthRequired
//
func CheckAuth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":  "Authentifié",
		"username": c.GetString("admin_username"),
	})
}
