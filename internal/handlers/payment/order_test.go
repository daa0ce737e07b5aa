package payment

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubGateway struct {
	orderID string
	err     error
	calls   int
	amount  float64
}

func (s *stubGateway) CreateOrder(amount float64, receipt string) (string, error) {
	s.calls++
	s.amount = amount
	if s.err != nil {
		return "", s.err
	}
	return s.orderID, nil
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/razorpay/create-order", CreateOrder)
	return r
}

func postOrder(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/razorpay/create-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateOrderRejectsNonPositiveAmountWithoutCallingGateway(t *testing.T) {
	stub := &stubGateway{orderID: "order_test123"}
	Gateway = stub
	r := setupRouter()

	for _, body := range []string{`{"amount": 0}`, `{"amount": -50}`} {
		w := postOrder(r, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	assert.Zero(t, stub.calls, "la passerelle ne doit pas être appelée pour un montant invalide")
}

func TestCreateOrderReturnsGatewayOrderID(t *testing.T) {
	stub := &stubGateway{orderID: "order_Nxy42"}
	Gateway = stub
	r := setupRouter()

	w := postOrder(r, `{"amount": 210}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "order_Nxy42")
	assert.Equal(t, 1, stub.calls)
	assert.Equal(t, 210.0, stub.amount)
}

func TestCreateOrderGatewayFailure(t *testing.T) {
	stub := &stubGateway{err: errors.New("passerelle indisponible")}
	Gateway = stub
	r := setupRouter()

	w := postOrder(r, `{"amount": 100}`)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestCreateOrderMalformedBody(t *testing.T) {
	stub := &stubGateway{orderID: "order_x"}
	Gateway = stub
	r := setupRouter()

	w := postOrder(r, `{"amount": "dix"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, stub.calls)
}
