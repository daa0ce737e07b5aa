package cart

import (
	"testing"

	"vastra_back_end/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func product(id primitive.ObjectID, name string, price, discount float64) models.Product {
	return models.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Discount: discount,
		Stock:    models.StockIn,
	}
}

func TestReconcileJoinsProductData(t *testing.T) {
	p1 := primitive.NewObjectID()
	p2 := primitive.NewObjectID()

	items := []models.CartItem{
		{ProductID: p1, Quantity: 2},
		{ProductID: p2, Quantity: 1},
	}
	products := map[string]models.Product{
		p1.Hex(): product(p1, "Kurta", 100, 20),
		p2.Hex(): product(p2, "Dupatta", 50, 0),
	}

	lines := Reconcile(items, products)

	assert.Len(t, lines, 2)
	assert.Equal(t, "Kurta", lines[0].Name)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.Equal(t, 20.0, lines[0].Discount)
	assert.Equal(t, p2.Hex(), lines[1].ProductID)
}

func TestReconcileDropsDeadReferences(t *testing.T) {
	alive := primitive.NewObjectID()
	deleted := primitive.NewObjectID()

	items := []models.CartItem{
		{ProductID: deleted, Quantity: 3},
		{ProductID: alive, Quantity: 1},
	}
	products := map[string]models.Product{
		alive.Hex(): product(alive, "Saree", 250, 0),
	}

	lines := Reconcile(items, products)

	assert.Len(t, lines, 1)
	assert.Equal(t, alive.Hex(), lines[0].ProductID)
}

func TestReconcilePreservesItemOrder(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}

	items := make([]models.CartItem, 0, len(ids))
	products := make(map[string]models.Product)
	for i, id := range ids {
		items = append(items, models.CartItem{ProductID: id, Quantity: i + 1})
		products[id.Hex()] = product(id, "P", 10, 0)
	}

	lines := Reconcile(items, products)

	assert.Len(t, lines, 3)
	for i, line := range lines {
		assert.Equal(t, ids[i].Hex(), line.ProductID)
		assert.Equal(t, i+1, line.Quantity)
	}
}

func TestReconcileEmptyCart(t *testing.T) {
	lines := Reconcile(nil, map[string]models.Product{})
	assert.Empty(t, lines)
	assert.NotNil(t, lines)
}

//
// --- Propriétés des mutations via les constructeurs purs ---
//
// applyUpdate interprète sur un tableau d'items les documents produits par
// les constructeurs (mêmes formes que côté Mongo, sur un seul document).
//

func hasItem(items []models.CartItem, pid primitive.ObjectID) bool {
	for _, it := range items {
		if it.ProductID == pid {
			return true
		}
	}
	return false
}

func applyUpdate(t *testing.T, items []models.CartItem, pid primitive.ObjectID, update bson.M) []models.CartItem {
	t.Helper()

	if inc, ok := update["$inc"].(bson.M); ok {
		delta, ok := inc["items.$.quantity"].(int)
		require.True(t, ok)
		out := append([]models.CartItem{}, items...)
		for i := range out {
			if out[i].ProductID == pid {
				out[i].Quantity += delta
			}
		}
		return out
	}

	if push, ok := update["$push"].(bson.M); ok {
		item, ok := push["items"].(models.CartItem)
		require.True(t, ok)
		return append(append([]models.CartItem{}, items...), item)
	}

	if pull, ok := update["$pull"].(bson.M); ok {
		cond, ok := pull["items"].(bson.M)
		require.True(t, ok)
		target, ok := cond["productId"].(primitive.ObjectID)
		require.True(t, ok)
		out := []models.CartItem{}
		for _, it := range items {
			if it.ProductID != target {
				out = append(out, it)
			}
		}
		return out
	}

	if set, ok := update["$set"].(bson.M); ok {
		if q, ok := set["items.$.quantity"].(int); ok {
			out := append([]models.CartItem{}, items...)
			for i := range out {
				if out[i].ProductID == pid {
					out[i].Quantity = q
				}
			}
			return out
		}
		if empty, ok := set["items"].([]models.CartItem); ok {
			return empty
		}
	}

	t.Fatalf("forme d'update inattendue: %v", update)
	return nil
}

// simulateAdd rejoue la décision de Add : incrément positionnel quand
// l'item existe, push sinon.
func simulateAdd(t *testing.T, items []models.CartItem, pid primitive.ObjectID, inc int) []models.CartItem {
	t.Helper()
	if hasItem(items, pid) {
		return applyUpdate(t, items, pid, incItemUpdate(inc))
	}
	return applyUpdate(t, items, pid, pushItemUpdate(pid, inc))
}

func TestAddTwiceAccumulatesQuantity(t *testing.T) {
	pid := primitive.NewObjectID()

	items := simulateAdd(t, nil, pid, 1)
	items = simulateAdd(t, items, pid, 1)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddThenRemoveExcludesProduct(t *testing.T) {
	kept := primitive.NewObjectID()
	removed := primitive.NewObjectID()

	items := simulateAdd(t, nil, kept, 1)
	items = simulateAdd(t, items, removed, 2)
	items = applyUpdate(t, items, removed, pullItemUpdate(removed))

	require.Len(t, items, 1)
	assert.Equal(t, kept, items[0].ProductID)
	assert.False(t, hasItem(items, removed))
}

func TestSetQuantityIsReadBack(t *testing.T) {
	pid := primitive.NewObjectID()

	items := simulateAdd(t, nil, pid, 1)
	items = applyUpdate(t, items, pid, setQuantityUpdate(5))

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestSetQuantityZeroRemovesIdempotently(t *testing.T) {
	pid := primitive.NewObjectID()
	other := primitive.NewObjectID()

	items := simulateAdd(t, nil, pid, 3)
	items = simulateAdd(t, items, other, 1)

	// Quantité 0 = retrait (même update que Remove)
	items = applyUpdate(t, items, pid, pullItemUpdate(pid))
	require.Len(t, items, 1)
	assert.False(t, hasItem(items, pid))

	// Répéter le retrait ne change rien
	again := applyUpdate(t, items, pid, pullItemUpdate(pid))
	assert.Equal(t, items, again)
}

func TestClearEmptiesItems(t *testing.T) {
	pid := primitive.NewObjectID()
	items := simulateAdd(t, nil, pid, 2)

	items = applyUpdate(t, items, pid, clearItemsUpdate())

	assert.Empty(t, items)
	assert.NotNil(t, items)
}

// Les deux filtres de Add sont exclusifs sur un même panier : le garde $ne
// du push exclut exactement l'item que l'incrément positionnel cible.
func TestAddFiltersAreMutuallyExclusive(t *testing.T) {
	pid := primitive.NewObjectID()

	withItem := itemFilter("user-1", pid)
	assert.Equal(t, "user-1", withItem["userId"])
	assert.Equal(t, pid, withItem["items.productId"])

	withoutItem := pushItemFilter("user-1", pid)
	guard, ok := withoutItem["items.productId"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, pid, guard["$ne"])
}
