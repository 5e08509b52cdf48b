package sandbox

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

const (
	errCodeInvalidRequest = 100
	errCodeUnauthorized   = 401
	errCodeInvalidSymbol  = 1019
	errCodeOrderNotFound  = 1033
	errCodePreviewMissing = 1034
)

// symbols the sandbox answers with an invalid symbol error
var rejectedSymbols = map[string]struct{}{
	"XXXX":    {},
	"INVALID": {},
}

type Server struct {
	store   *orderStore
	decoder *schema.Decoder
}

func setResponse(response interface{}, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(response); err != nil {
		return fmt.Errorf("setResponse: encode: %w", err)
	}

	return nil
}

func setErrorResponse(statusCode int, code int, message string, w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	var resp ordermodels.ApiErrorDTO
	resp.Error.ErrorCode = code
	resp.Error.Message = message

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Errorf("setErrorResponse: encode: %v", err)
	}
}

func requireAuthorization(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			setErrorResponse(http.StatusUnauthorized, errCodeUnauthorized, "oauth_problem=token_rejected", w)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func wrap(outer string, inner string, v interface{}) map[string]interface{} {
	return map[string]interface{}{
		outer: map[string]interface{}{
			inner: v,
		},
	}
}

func checkEquityOrderRequest(req *equityOrderRequestDTO, requireSymbol bool) (int, string, bool) {
	if req == nil {
		return errCodeInvalidRequest, "missing order request", false
	}

	if req.AccountID <= 0 || req.Quantity <= 0 {
		return errCodeInvalidRequest, "account id and quantity are required", false
	}

	if requireSymbol {
		if req.Symbol == "" {
			return errCodeInvalidSymbol, "symbol is required", false
		}

		if _, found := rejectedSymbols[strings.ToUpper(req.Symbol)]; found {
			return errCodeInvalidSymbol, fmt.Sprintf("The symbol %s is invalid.", req.Symbol), false
		}
	}

	return 0, "", true
}

func (s *Server) equityOrderResponse(req equityOrderRequestDTO) ordermodels.EquityOrderResponse {
	resp := ordermodels.EquityOrderResponse{
		AccountID:            int64(req.AccountID),
		AllOrNone:            req.AllOrNone,
		EstimatedCommission:  estimatedCommission,
		EstimatedTotalAmount: estimatedPrice(req)*float64(req.Quantity) + estimatedCommission,
		Quantity:             req.Quantity,
		ReserveOrder:         req.ReserveOrder,
		OrderTerm:            req.OrderTerm,
		Symbol:               req.Symbol,
		SymbolDesc:           req.Symbol,
		OrderAction:          req.OrderAction,
		PriceType:            req.PriceType,
	}

	if req.LimitPrice != nil {
		resp.LimitPrice = *req.LimitPrice
	}

	if req.StopPrice != nil {
		resp.StopPrice = *req.StopPrice
	}

	if req.ReserveQuantity != nil {
		resp.ReserveQuantity = *req.ReserveQuantity
	}

	return resp
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.Atoi(mux.Vars(r)["accountId"])
	if err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, "invalid account id", w)
		return
	}

	var query ordermodels.ListOrdersRequest
	if err := s.decoder.Decode(&query, r.URL.Query()); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, err.Error(), w)
		return
	}

	if err := query.Validate(); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, err.Error(), w)
		return
	}

	count := query.Count
	if count == 0 {
		count = ordermodels.MaxListOrdersCount
	}

	offset := 0
	if query.Marker != "" {
		if offset, err = strconv.Atoi(query.Marker); err != nil || offset < 0 {
			setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, "invalid marker", w)
			return
		}
	}

	orders := s.store.list(accountID)
	if offset > len(orders) {
		offset = len(orders)
	}

	end := offset + count
	marker := ""
	if end < len(orders) {
		marker = strconv.Itoa(end)
	} else {
		end = len(orders)
	}

	page := orders[offset:end]
	details := make(ordermodels.OneOrMany[ordermodels.OrderDetailDTO], 0, len(page))
	for _, o := range page {
		details = append(details, ordermodels.OrderDetailDTO{Order: o})
	}

	resp := ordermodels.OrderListResponse{
		Count:        len(details),
		Marker:       marker,
		OrderDetails: details,
	}

	if err := setResponse(wrap("GetOrderListResponse", "orderListResponse", resp), w); err != nil {
		log.Errorf("handleListOrders: %v", err)
	}
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	var dto cancelOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil || dto.CancelOrder.CancelOrderRequest == nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, "invalid cancel request", w)
		return
	}

	req := dto.CancelOrder.CancelOrderRequest

	order, err := s.store.cancel(int(req.AccountID), req.OrderNum)
	if err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeOrderNotFound, err.Error(), w)
		return
	}

	resp := ordermodels.OrderCancelResponse{
		AccountID:     int64(order.accountID),
		OrderNum:      order.orderNum,
		CancelTime:    s.store.now().UnixMilli(),
		ResultMessage: fmt.Sprintf("Your request to cancel your order %d is being processed.", order.orderNum),
	}

	if err := setResponse(wrap("cancelOrderResponse", "cancelResponse", resp), w); err != nil {
		log.Errorf("handleCancelOrder: %v", err)
	}
}

func (s *Server) handlePreviewEquityOrder(w http.ResponseWriter, r *http.Request) {
	var dto previewEquityOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, err.Error(), w)
		return
	}

	req := dto.PreviewEquityOrder.EquityOrderRequest
	if code, msg, ok := checkEquityOrderRequest(req, true); !ok {
		setErrorResponse(http.StatusBadRequest, code, msg, w)
		return
	}

	resp := s.equityOrderResponse(*req)
	resp.PreviewID = s.store.preview(*req)
	resp.PreviewTime = s.store.now().UnixMilli()

	if err := setResponse(wrap("PreviewEquityOrderResponse", "equityOrderResponse", resp), w); err != nil {
		log.Errorf("handlePreviewEquityOrder: %v", err)
	}
}

func (s *Server) handlePlaceEquityOrder(w http.ResponseWriter, r *http.Request) {
	var dto placeEquityOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, err.Error(), w)
		return
	}

	req := dto.PlaceEquityOrder.EquityOrderRequest
	if code, msg, ok := checkEquityOrderRequest(req, true); !ok {
		setErrorResponse(http.StatusBadRequest, code, msg, w)
		return
	}

	if err := s.store.checkPreview(*req); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodePreviewMissing, err.Error(), w)
		return
	}

	order := s.store.place(*req)

	resp := s.equityOrderResponse(*req)
	resp.OrderNum = order.orderNum
	resp.OrderTime = order.placedAt.UnixMilli()
	if req.PreviewID != nil {
		resp.PreviewID = *req.PreviewID
	}

	if err := setResponse(wrap("PlaceEquityOrderResponse", "equityOrderResponse", resp), w); err != nil {
		log.Errorf("handlePlaceEquityOrder: %v", err)
	}
}

func (s *Server) handlePreviewChangeEquityOrder(w http.ResponseWriter, r *http.Request) {
	var dto previewChangeEquityOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, err.Error(), w)
		return
	}

	req := dto.PreviewChangeEquityOrder.ChangeEquityOrderRequest
	if code, msg, ok := checkEquityOrderRequest(req, false); !ok {
		setErrorResponse(http.StatusBadRequest, code, msg, w)
		return
	}

	order, err := s.store.find(req.AccountID, req.OrderNum)
	if err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeOrderNotFound, err.Error(), w)
		return
	}

	req.Symbol = order.request.Symbol
	req.OrderAction = order.request.OrderAction

	resp := s.equityOrderResponse(*req)
	resp.OrderNum = order.orderNum
	resp.PreviewID = s.store.preview(*req)
	resp.PreviewTime = s.store.now().UnixMilli()

	if err := setResponse(wrap("previewChangeEquityOrderResponse", "equityOrderResponse", resp), w); err != nil {
		log.Errorf("handlePreviewChangeEquityOrder: %v", err)
	}
}

func (s *Server) handlePlaceChangeEquityOrder(w http.ResponseWriter, r *http.Request) {
	var dto placeChangeEquityOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeInvalidRequest, err.Error(), w)
		return
	}

	req := dto.PlaceChangeEquityOrder.ChangeEquityOrderRequest
	if code, msg, ok := checkEquityOrderRequest(req, false); !ok {
		setErrorResponse(http.StatusBadRequest, code, msg, w)
		return
	}

	if err := s.store.checkPreview(*req); err != nil {
		setErrorResponse(http.StatusBadRequest, errCodePreviewMissing, err.Error(), w)
		return
	}

	order, err := s.store.change(*req)
	if err != nil {
		setErrorResponse(http.StatusBadRequest, errCodeOrderNotFound, err.Error(), w)
		return
	}

	resp := s.equityOrderResponse(order.request)
	resp.OrderNum = order.orderNum
	resp.OrderTime = s.store.now().UnixMilli()

	if err := setResponse(wrap("placeChangeEquityOrderResponse", "equityOrderResponse", resp), w); err != nil {
		log.Errorf("handlePlaceChangeEquityOrder: %v", err)
	}
}
