package sandbox

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

const (
	estimatedCommission = 6.95
	defaultMarketPrice  = 100.0
)

type storedOrder struct {
	accountID int
	orderNum  int64
	status    string
	placedAt  time.Time
	request   equityOrderRequestDTO
}

// orderStore keeps previews and orders in memory for the lifetime of the
// sandbox server. Lookups hand out copies taken under mu.
type orderStore struct {
	mu            sync.Mutex
	nextPreviewID int64
	nextOrderNum  int64
	previews      map[int64]equityOrderRequestDTO
	orders        map[int64]*storedOrder
	now           func() time.Time
}

func newOrderStore(now func() time.Time) *orderStore {
	return &orderStore{
		nextPreviewID: 1000,
		nextOrderNum:  1,
		previews:      make(map[int64]equityOrderRequestDTO),
		orders:        make(map[int64]*storedOrder),
		now:           now,
	}
}

func (s *orderStore) preview(req equityOrderRequestDTO) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextPreviewID
	s.nextPreviewID++
	s.previews[id] = req

	return id
}

func (s *orderStore) checkPreview(req equityOrderRequestDTO) error {
	if req.PreviewID == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := s.previews[*req.PreviewID]; !found {
		return fmt.Errorf("preview id %d not found", *req.PreviewID)
	}

	return nil
}

func (s *orderStore) place(req equityOrderRequestDTO) storedOrder {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := &storedOrder{
		accountID: req.AccountID,
		orderNum:  s.nextOrderNum,
		status:    "OPEN",
		placedAt:  s.now(),
		request:   req,
	}

	s.nextOrderNum++
	s.orders[order.orderNum] = order

	return *order
}

func (s *orderStore) change(req equityOrderRequestDTO) (storedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, found := s.orders[req.OrderNum]
	if !found || order.accountID != req.AccountID {
		return storedOrder{}, fmt.Errorf("order %d not found", req.OrderNum)
	}

	if order.status != "OPEN" {
		return storedOrder{}, fmt.Errorf("order %d is %s", req.OrderNum, order.status)
	}

	symbol, action := order.request.Symbol, order.request.OrderAction
	order.request = req
	order.request.Symbol = symbol
	order.request.OrderAction = action

	return *order, nil
}

func (s *orderStore) find(accountID int, orderNum int64) (storedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, found := s.orders[orderNum]
	if !found || order.accountID != accountID {
		return storedOrder{}, fmt.Errorf("order %d not found", orderNum)
	}

	return *order, nil
}

func (s *orderStore) cancel(accountID int, orderNum int64) (storedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, found := s.orders[orderNum]
	if !found || order.accountID != accountID {
		return storedOrder{}, fmt.Errorf("order %d not found", orderNum)
	}

	if order.status != "OPEN" {
		return storedOrder{}, fmt.Errorf("order %d is already %s", orderNum, order.status)
	}

	order.status = "CANCELLED"

	return *order, nil
}

func (s *orderStore) list(accountID int) []ordermodels.OrderDTO {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []ordermodels.OrderDTO
	for _, o := range s.orders {
		if o.accountID != accountID {
			continue
		}

		out = append(out, o.toDTO())
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].OrderID < out[j].OrderID
	})

	return out
}

func (o *storedOrder) toDTO() ordermodels.OrderDTO {
	dto := ordermodels.OrderDTO{
		OrderID:         o.orderNum,
		OrderPlacedTime: o.placedAt.UnixMilli(),
		OrderValue:      estimatedPrice(o.request) * float64(o.request.Quantity),
		OrderStatus:     o.status,
		OrderType:       "EQ",
		OrderTerm:       o.request.OrderTerm,
		PriceType:       o.request.PriceType,
		AllOrNone:       o.request.AllOrNone,
		LegDetails: ordermodels.OneOrMany[ordermodels.OrderLegDetailDTO]{
			{
				LegNumber:           1,
				SymbolInfo:          ordermodels.OrderLegSymbolInfoDTO{Symbol: o.request.Symbol},
				OrderAction:         o.request.OrderAction,
				OrderedQuantity:     o.request.Quantity,
				EstimatedCommission: estimatedCommission,
			},
		},
	}

	if o.request.LimitPrice != nil {
		dto.LimitPrice = *o.request.LimitPrice
	}

	if o.request.StopPrice != nil {
		dto.StopPrice = *o.request.StopPrice
	}

	return dto
}

func estimatedPrice(req equityOrderRequestDTO) float64 {
	if req.LimitPrice != nil {
		return *req.LimitPrice
	}

	if req.StopPrice != nil {
		return *req.StopPrice
	}

	return defaultMarketPrice
}
