package product

import (
	"context"
	"log"
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

//
// 🟢 POST /api/products (admin, multipart)
//
func CreateProduct(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Formulaire multipart invalide"})
		return
	}

	pf, err := parseProductForm(form)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if pf.Image == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image principale manquante"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	// 🖼️ Upload image principale puis images secondaires
	imageKey, err := services.UploadImage(ctx, pf.Image)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Erreur upload image"})
		return
	}

	subImageKeys := []string{}
	for _, header := range pf.SubImages {
		key, err := services.UploadImage(ctx, header)
		if err != nil {
			log.Printf("⚠️ Erreur upload image secondaire %s: %v", header.Filename, err)
			continue
		}
		subImageKeys = append(subImageKeys, key)
	}

	now := time.Now()
	p := models.Product{
		Name:        pf.Name,
		Description: pf.Description,
		Price:       pf.Price,
		Discount:    pf.Discount,
		Image:       imageKey,
		SubImages:   subImageKeys,
		Category:    pf.Category,
		Sizes:       pf.Sizes,
		Stock:       pf.Stock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	result, err := database.Products().InsertOne(ctx, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit"})
		return
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		p.ID = oid
	}

	cache.InvalidateProductList(ctx)

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	c.JSON(http.StatusCreated, p)
}

//
// 🟡 PUT /api/products/:id (admin) — mise à jour partielle, last write wins
//
func UpdateProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Name        *string   `json:"name"`
		Description *string   `json:"description"`
		Price       *float64  `json:"price"`
		Discount    *float64  `json:"discount"`
		Category    *string   `json:"category"`
		Sizes       *[]string `json:"sizes"`
		Stock       *string   `json:"stock"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	set := bson.M{}
	if input.Name != nil {
		set["name"] = *input.Name
	}
	if input.Description != nil {
		set["description"] = *input.Description
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Discount != nil {
		set["discount"] = *input.Discount
	}
	if input.Category != nil {
		set["category"] = *input.Category
	}
	if input.Sizes != nil {
		set["sizes"] = *input.Sizes
	}
	if input.Stock != nil {
		if *input.Stock != models.StockIn && *input.Stock != models.StockOut {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Valeur de stock invalide"})
			return
		}
		set["stock"] = *input.Stock
	}

	if len(set) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Aucune donnée à mettre à jour"})
		return
	}
	set["updated_at"] = time.Now()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	res, err := database.Products().UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
		return
	}
	if res.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	cache.InvalidateProductList(ctx)

	// 🔄 Ré-indexation avec le document à jour
	var p models.Product
	if err := database.Products().FindOne(ctx, bson.M{"_id": id}).Decode(&p); err == nil {
		go services.IndexProduct(p)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour avec succès"})
}

//
// 🔴 DELETE /api/products/:id (admin)
//
func DeleteProduct(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	var p models.Product
	err = database.Products().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la suppression"})
		return
	}

	// 🗑️ Nettoyage best-effort : images MinIO puis index Elasticsearch.
	// Les paniers qui référencent encore ce produit s'auto-corrigent à la
	// prochaine lecture (la référence morte est écartée silencieusement).
	services.RemoveImage(ctx, p.Image)
	for _, sub := range p.SubImages {
		services.RemoveImage(ctx, sub)
	}
	go services.RemoveProductFromIndex(id.Hex())

	cache.InvalidateProductList(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé avec succès"})
}
