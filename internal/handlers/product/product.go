package product

import (
	"context"
	"net/http"
	"time"

	"vastra_back_end/internal/cache"
	"vastra_back_end/internal/database"
	"vastra_back_end/internal/models"
	"vastra_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// signProductImages remplace les clés d'objet par des URLs signées MinIO
func signProductImages(ctx context.Context, p *models.Product) {
	if signed, err := services.SignedImageURL(ctx, p.Image, 24*time.Hour); err == nil {
		p.Image = signed
	}
	for i, sub := range p.SubImages {
		if signed, err := services.SignedImageURL(ctx, sub, 24*time.Hour); err == nil {
			p.SubImages[i] = signed
		}
	}
}

//
// 🟢 GET /api/products
//
func GetAllProducts(c *gin.Context) {
	ctx := c.Request.Context()

	// ✅ Cache Redis d'abord
	products := cache.GetProductList(ctx)

	if products == nil {
		cursor, err := database.Products().Find(ctx, bson.M{})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits"})
			return
		}
		defer cursor.Close(ctx)

		products = []models.Product{}
		if err := cursor.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage produits"})
			return
		}

		cache.SetProductList(ctx, products)
	}

	for i := range products {
		signProductImages(ctx, &products[i])
	}

	c.JSON(http.StatusOK, products)
}

//
// 🟢 GET /api/products/:id
//
func GetProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx := c.Request.Context()

	var p models.Product
	err = database.Products().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produit"})
		return
	}

	signProductImages(ctx, &p)
	c.JSON(http.StatusOK, p)
}

//
// 🔎 GET /api/products/search?q=
//
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "paramètre 'q' manquant"})
		return
	}

	ctx := c.Request.Context()

	// 1️⃣ Elasticsearch en priorité
	results, err := services.SearchProducts(query)
	if err == nil && len(results) > 0 {
		for i := range results {
			if key, ok := results[i]["image"].(string); ok && key != "" {
				if signed, err := services.SignedImageURL(ctx, key, 24*time.Hour); err == nil {
					results[i]["image"] = signed
				}
			}
		}
		c.JSON(http.StatusOK, results)
		return
	}

	// 2️⃣ Fallback MongoDB : regex insensible à la casse sur nom/description
	filter := bson.M{"$or": bson.A{
		bson.M{"name": bson.M{"$regex": query, "$options": "i"}},
		bson.M{"description": bson.M{"$regex": query, "$options": "i"}},
	}}

	cursor, err := database.Products().Find(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur recherche"})
		return
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur décodage produits"})
		return
	}

	for i := range products {
		signProductImages(ctx, &products[i])
	}

	c.JSON(http.StatusOK, products)
}
