package cart

import (
	"context"
	"errors"

	"vastra_back_end/internal/database"
	"vastra_back_end/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ErrProductNotFound = errors.New("produit introuvable")
	ErrItemNotFound    = errors.New("article absent du panier")
)

// Get retourne les items du panier joints aux données produit actuelles.
// Les références vers des produits supprimés sont ignorées silencieusement.
func Get(ctx context.Context, userID string) ([]models.CartLine, error) {
	var cart models.Cart
	err := database.Carts().FindOne(ctx, bson.M{"userId": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		return []models.CartLine{}, nil
	}
	if err != nil {
		return nil, err
	}

	if len(cart.Items) == 0 {
		return []models.CartLine{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ProductID)
	}

	cursor, err := database.Products().Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make(map[string]models.Product)
	var p models.Product
	for cursor.Next(ctx) {
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		products[p.ID.Hex()] = p
		p = models.Product{}
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return Reconcile(cart.Items, products), nil
}

// Reconcile joint les items du panier avec les produits résolus, en
// conservant l'ordre des items et en écartant les références mortes.
func Reconcile(items []models.CartItem, products map[string]models.Product) []models.CartLine {
	lines := make([]models.CartLine, 0, len(items))
	for _, item := range items {
		p, ok := products[item.ProductID.Hex()]
		if !ok {
			continue // produit supprimé depuis l'ajout au panier
		}
		lines = append(lines, models.CartLine{
			ProductID: p.ID.Hex(),
			Name:      p.Name,
			Price:     p.Price,
			Discount:  p.Discount,
			Image:     p.Image,
			Category:  p.Category,
			Stock:     p.Stock,
			Quantity:  item.Quantity,
		})
	}
	return lines
}

//
// --- Constructeurs de filtres/updates (purs, testables sans Mongo) ---
//

// userFilter cible le document panier de l'utilisateur
func userFilter(userID string) bson.M {
	return bson.M{"userId": userID}
}

// itemFilter cible le panier qui contient déjà l'item
func itemFilter(userID string, productID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID, "items.productId": productID}
}

// incItemUpdate incrémente la quantité de l'item ciblé (positionnel)
func incItemUpdate(inc int) bson.M {
	return bson.M{"$inc": bson.M{"items.$.quantity": inc}}
}

// pushItemFilter cible le panier qui ne contient pas encore l'item
func pushItemFilter(userID string, productID primitive.ObjectID) bson.M {
	return bson.M{"userId": userID, "items.productId": bson.M{"$ne": productID}}
}

// pushItemUpdate ajoute une nouvelle ligne au panier
func pushItemUpdate(productID primitive.ObjectID, quantity int) bson.M {
	return bson.M{"$push": bson.M{"items": models.CartItem{ProductID: productID, Quantity: quantity}}}
}

// setQuantityUpdate fixe la quantité de l'item ciblé (positionnel)
func setQuantityUpdate(quantity int) bson.M {
	return bson.M{"$set": bson.M{"items.$.quantity": quantity}}
}

// pullItemUpdate retire l'item du tableau
func pullItemUpdate(productID primitive.ObjectID) bson.M {
	return bson.M{"$pull": bson.M{"items": bson.M{"productId": productID}}}
}

// clearItemsUpdate vide le tableau sans supprimer le document
func clearItemsUpdate() bson.M {
	return bson.M{"$set": bson.M{"items": []models.CartItem{}}}
}

// Add incrémente la quantité d'un item existant, ou l'ajoute au panier.
// Incrément atomique côté serveur : pas de lecture-modification-écriture,
// deux ajouts concurrents pour le même utilisateur ne se perdent pas.
func Add(ctx context.Context, userID string, productID primitive.ObjectID, inc int) error {
	count, err := database.Products().CountDocuments(ctx, bson.M{"_id": productID})
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrProductNotFound
	}

	for {
		// 1. L'item existe déjà → $inc positionnel
		res, err := database.Carts().UpdateOne(ctx,
			itemFilter(userID, productID), incItemUpdate(inc))
		if err != nil {
			return err
		}
		if res.MatchedCount > 0 {
			return nil
		}

		// 2. Sinon → $push avec upsert (crée le panier au premier ajout)
		_, err = database.Carts().UpdateOne(ctx,
			pushItemFilter(userID, productID), pushItemUpdate(productID, inc),
			options.Update().SetUpsert(true))
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return err
		}
		// Conflit sur l'index unique userId : un upsert concurrent a déjà
		// inséré l'item, l'incrément positionnel va maintenant matcher
	}
}

// SetQuantity fixe la quantité d'un item ; quantité 0 = suppression,
// idempotente si l'item est déjà absent.
func SetQuantity(ctx context.Context, userID string, productID primitive.ObjectID, quantity int) error {
	if quantity == 0 {
		return Remove(ctx, userID, productID)
	}

	res, err := database.Carts().UpdateOne(ctx,
		itemFilter(userID, productID), setQuantityUpdate(quantity))
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Remove retire un item du panier ; idempotent si absent.
func Remove(ctx context.Context, userID string, productID primitive.ObjectID) error {
	_, err := database.Carts().UpdateOne(ctx,
		userFilter(userID), pullItemUpdate(productID))
	return err
}

// Clear vide le panier sans supprimer le document.
func Clear(ctx context.Context, userID string) error {
	_, err := database.Carts().UpdateOne(ctx,
		userFilter(userID), clearItemsUpdate())
	return err
}
