package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPaise(t *testing.T) {
	assert.Equal(t, int64(21000), toPaise(210))
	assert.Equal(t, int64(9999), toPaise(99.99))
	assert.Equal(t, int64(100), toPaise(1))
	assert.Equal(t, int64(150), toPaise(1.499)) // arrondi au paise le plus proche
}

func TestCreateOrderRejectsNonPositiveAmount(t *testing.T) {
	g := &RazorpayGateway{} // jamais atteint : rejet avant l'appel client

	_, err := g.CreateOrder(0, "order_1")
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = g.CreateOrder(-10, "order_2")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestNewRazorpayGatewayRequiresKeys(t *testing.T) {
	t.Setenv("RAZORPAY_KEY_ID", "")
	t.Setenv("RAZORPAY_KEY_SECRET", "")

	_, err := NewRazorpayGateway()
	assert.Error(t, err)
}
