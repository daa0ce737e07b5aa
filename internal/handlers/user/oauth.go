package user

import (
	"context"
	"net/http"
	"time"

	"vastra_back_end/internal/database"
	"vastra_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/markbates/goth/gothic"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/auth/:provider
func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	// Le provider vient du chemin, pas de la query : on le pose dans le
	// contexte sous la clé que gothic lit
	c.Request = gothic.GetContextWithProvider(c.Request, provider)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// GET /api/auth/:provider/callback
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = gothic.GetContextWithProvider(c.Request, provider)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Upsert : crée le compte au premier passage, rafraîchit le nom sinon
	filter := bson.M{"email": gothUser.Email, "provider": provider}
	update := bson.M{
		"$set":         bson.M{"name": gothUser.Name},
		"$setOnInsert": bson.M{"email": gothUser.Email, "provider": provider, "created_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	if err := database.Users().FindOneAndUpdate(ctx, filter, update, opts).Decode(&user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
		return
	}

	token := generateJWT(user)
	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"userId":   user.ID.Hex(),
		"email":    user.Email,
		"name":     user.Name,
		"provider": provider,
	})
}
