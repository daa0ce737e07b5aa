package cache

import (
	"context"
	"encoding/json"
	"time"

	"vastra_back_end/internal/database"
	"vastra_back_end/internal/models"
)

const (
	ProductListCacheTTL = 10 * time.Minute
	productListKey      = "products:all"
)

// GetProductList récupère la liste des produits depuis Redis, ou nil si absente
func GetProductList(ctx context.Context) []models.Product {
	val, err := database.Redis.Get(ctx, productListKey).Result()
	if err != nil || val == "" {
		return nil
	}

	var products []models.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil
	}
	return products
}

// SetProductList met la liste des produits en cache
func SetProductList(ctx context.Context, products []models.Product) {
	if data, err := json.Marshal(products); err == nil {
		database.Redis.Set(ctx, productListKey, data, ProductListCacheTTL)
	}
}

// InvalidateProductList invalide le cache après toute mutation du catalogue
func InvalidateProductList(ctx context.Context) {
	database.Redis.Del(ctx, productListKey)
}

// NotifyCart publie un évènement sur le canal du panier de l'utilisateur,
// consommé par les miroirs WebSocket.
func NotifyCart(ctx context.Context, userID, event string) {
	database.Redis.Publish(ctx, "cart:"+userID, event)
}
