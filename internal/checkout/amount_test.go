package checkout

import (
	"testing"

	"vastra_back_end/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEffectivePrice(t *testing.T) {
	assert.Equal(t, 80.0, EffectivePrice(100, 20))
	assert.Equal(t, 50.0, EffectivePrice(50, 0))
	assert.Equal(t, 99.0, EffectivePrice(99, -5)) // remise négative ignorée
}

func TestEffectivePriceDoesNotClamp(t *testing.T) {
	// Une remise ≥ prix passe sans être bornée
	assert.Equal(t, 0.0, EffectivePrice(100, 100))
	assert.Equal(t, -50.0, EffectivePrice(100, 150))
}

func TestCartTotal(t *testing.T) {
	lines := []models.CartLine{
		{Price: 100, Discount: 20, Quantity: 2},
		{Price: 50, Discount: 0, Quantity: 1},
	}
	// (80×2) + (50×1) = 210
	assert.Equal(t, 210.0, CartTotal(lines))
}

func TestCartTotalEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CartTotal(nil))
}

func TestLineSubtotal(t *testing.T) {
	assert.Equal(t, 160.0, LineSubtotal(models.CartLine{Price: 100, Discount: 20, Quantity: 2}))
}

func TestItemTotal(t *testing.T) {
	assert.Equal(t, 240.0, ItemTotal(100, 20, 3))
	assert.Equal(t, 100.0, ItemTotal(100, 0, 1))
}
