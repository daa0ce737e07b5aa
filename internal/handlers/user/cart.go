package user

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"vastra_back_end/internal/cache"
	"vastra_back_end/internal/cart"
	"vastra_back_end/internal/checkout"
	"vastra_back_end/internal/database"
	"vastra_back_end/internal/models"
	"vastra_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type cartInput struct {
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	lines, err := cart.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	// URLs signées MinIO pour les aperçus (valides 24h)
	for i := range lines {
		if signed, err := services.SignedImageURL(ctx, lines[i].Image, 24*time.Hour); err == nil {
			lines[i].Image = signed
		}
	}

	c.JSON(http.StatusOK, gin.H{"items": lines})
}

//
// 🟢 POST /api/cart — ajoute un produit (incrément par défaut : 1)
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	inc := 1
	if input.Quantity != nil {
		if *input.Quantity <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
			return
		}
		inc = *input.Quantity
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := cart.Add(ctx, userID, productID, inc); err != nil {
		if errors.Is(err, cart.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur ajout au panier"})
		return
	}

	cache.NotifyCart(ctx, userID, "updated")
	c.JSON(http.StatusOK, gin.H{"message": "Produit ajouté au panier"})
}

//
// 🟡 PUT /api/cart — fixe la quantité (0 = retrait)
//
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil || input.Quantity == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if *input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := cart.SetQuantity(ctx, userID, productID, *input.Quantity); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Article absent du panier"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour panier"})
		return
	}

	cache.NotifyCart(ctx, userID, "updated")
	c.JSON(http.StatusOK, gin.H{"message": "Panier mis à jour"})
}

//
// ❌ DELETE /api/cart — retire un produit (idempotent)
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	var input cartInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := cart.Remove(ctx, userID, productID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression du panier"})
		return
	}

	cache.NotifyCart(ctx, userID, "updated")
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé du panier"})
}

//
// 🧹 DELETE /api/cart/clear — vide le panier (le document reste)
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := cart.Clear(ctx, userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	cache.NotifyCart(ctx, userID, "cleared")
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}

//
// 💰 GET /api/checkout/quote — total payable dérivé côté serveur.
// Sans paramètre : total du panier. Avec ?productId= (&quantity=) :
// achat direct d'un seul produit, sans passer par le panier.
//
func CheckoutQuote(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if pid := c.Query("productId"); pid != "" {
		directQuote(ctx, c, pid)
		return
	}

	lines, err := cart.Get(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       checkout.CartTotal(lines),
		"items_count": len(lines),
	})
}

func directQuote(ctx context.Context, c *gin.Context, pid string) {
	productID, err := primitive.ObjectIDFromHex(pid)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	quantity := 1
	if q := c.Query("quantity"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
			return
		}
		quantity = n
	}

	var p models.Product
	err = database.Products().FindOne(ctx, bson.M{"_id": productID}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":       checkout.ItemTotal(p.Price, p.Discount, quantity),
		"items_count": 1,
	})
}
