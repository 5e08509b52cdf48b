package sandbox

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

func serve(t *testing.T, handler http.Handler, method, path, body string, authorized bool) (*httptest.ResponseRecorder, ordermodels.ApiErrorDTO) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authorized {
		req.Header.Set("Authorization", "Bearer test")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var errDTO ordermodels.ApiErrorDTO
	if rec.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errDTO))
	}

	return rec, errDTO
}

func TestSandboxHandler(t *testing.T) {
	handler := NewServer().Handler("/order/rest")

	t.Run("requests without authorization are rejected", func(t *testing.T) {
		rec, errDTO := serve(t, handler, http.MethodGet, "/order/rest/orderlist/1.json", "", false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, errCodeUnauthorized, errDTO.Error.ErrorCode)
	})

	t.Run("empty order list", func(t *testing.T) {
		rec, _ := serve(t, handler, http.MethodGet, "/order/rest/orderlist/1.json", "", true)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"GetOrderListResponse":{"orderListResponse":{"count":0,"marker":"","orderDetails":[]}}}`, rec.Body.String())
	})

	t.Run("list count above the maximum", func(t *testing.T) {
		rec, errDTO := serve(t, handler, http.MethodGet, "/order/rest/orderlist/1.json?count=26", "", true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errCodeInvalidRequest, errDTO.Error.ErrorCode)
	})

	t.Run("preview without a request body", func(t *testing.T) {
		rec, errDTO := serve(t, handler, http.MethodPost, "/order/rest/previewequityorder.json", `{"PreviewEquityOrder":{}}`, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errCodeInvalidRequest, errDTO.Error.ErrorCode)
	})

	t.Run("cancel of an unknown order", func(t *testing.T) {
		body := `{"cancelOrder":{"-xmlns":"http://order.etws.etrade.com","cancelOrderRequest":{"accountId":1,"orderNum":99}}}`
		rec, errDTO := serve(t, handler, http.MethodPost, "/order/rest/cancelorder.json", body, true)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errCodeOrderNotFound, errDTO.Error.ErrorCode)
	})

	t.Run("place returns an order number", func(t *testing.T) {
		body := `{"PlaceEquityOrder":{"EquityOrderRequest":{"accountId":1,"quantity":10,"symbol":"IBM","orderAction":"BUY","priceType":"LIMIT","limitPrice":120.5,"orderTerm":"GOOD_FOR_DAY"}}}`
		rec, _ := serve(t, handler, http.MethodPost, "/order/rest/placeequityorder.json", body, true)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp struct {
			PlaceEquityOrderResponse struct {
				EquityOrderResponse ordermodels.EquityOrderResponse `json:"equityOrderResponse"`
			} `json:"PlaceEquityOrderResponse"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		order := resp.PlaceEquityOrderResponse.EquityOrderResponse
		assert.Equal(t, int64(1), order.OrderNum)
		assert.InDelta(t, 1211.95, order.EstimatedTotalAmount, 1e-9)
	})
}

func TestSandboxHandlerWithCORS(t *testing.T) {
	handler := NewServer().HandlerWithCORS("/order/rest", []string{"http://localhost:3000"})

	t.Run("preflight from an allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/order/rest/previewequityorder.json", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origins get no cors headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/order/rest/orderlist/1.json", nil)
		req.Header.Set("Origin", "http://evil.example")
		req.Header.Set("Authorization", "Bearer test")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestSandboxConcurrentChanges(t *testing.T) {
	handler := NewServer().Handler("/order/rest")

	rec, _ := serve(t, handler, http.MethodPost, "/order/rest/placeequityorder.json",
		`{"PlaceEquityOrder":{"EquityOrderRequest":{"accountId":1,"quantity":10,"symbol":"AAPL","orderAction":"BUY","priceType":"MARKET"}}}`, true)
	require.Equal(t, http.StatusOK, rec.Code)

	const workers = 20

	send := func(path string, body string) int {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Authorization", "Bearer test")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		return rec.Code
	}

	codes := make(chan int, 2*workers)

	var wg sync.WaitGroup
	for i := 1; i <= workers; i++ {
		wg.Add(2)

		go func(qty int) {
			defer wg.Done()
			codes <- send("/order/rest/placechangeequityorder.json",
				fmt.Sprintf(`{"placeChangeEquityOrder":{"changeEquityOrderRequest":{"accountId":1,"quantity":%d,"orderNum":1,"priceType":"MARKET"}}}`, qty))
		}(i)

		go func(qty int) {
			defer wg.Done()
			codes <- send("/order/rest/previewchangeequityorder.json",
				fmt.Sprintf(`{"previewChangeEquityOrder":{"changeEquityOrderRequest":{"accountId":1,"quantity":%d,"orderNum":1,"priceType":"MARKET"}}}`, qty))
		}(i)
	}

	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	rec, _ = serve(t, handler, http.MethodGet, "/order/rest/orderlist/1.json", "", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"symbol":"AAPL"`)
}
