package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
	"github.com/jiaming2012/etrade-orders/src/orderservices"
	"github.com/jiaming2012/etrade-orders/src/utils"
)

// Stage selects between the preview and place call of a ticket.
type Stage string

const (
	StagePreview Stage = "preview"
	StagePlace   Stage = "place"
)

func NewClient(cfg *Config) (*orderservices.OrdersClient, error) {
	urls, err := orderservices.NewOrderURLsForEnv(cfg.Env, cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("NewClient: %w", err)
	}

	bus := orderservices.NewOrderEventBus()

	logEvent := func(ev orderservices.OrderEvent) {
		log.WithFields(log.Fields{
			"operation":     ev.Operation,
			"accountId":     ev.AccountID,
			"clientOrderId": ev.ClientOrderID,
		}).Warnf("order call did not succeed: %v", ev.Err)
	}

	for _, topic := range []string{orderservices.OrderRejectedTopic, orderservices.OrderFailedTopic} {
		if err := orderservices.SubscribeOrderEvents(bus, topic, logEvent); err != nil {
			return nil, fmt.Errorf("NewClient: failed to subscribe to %s: %w", topic, err)
		}
	}

	return orderservices.NewOrdersClient(orderservices.NewHTTPTransport(), urls, cfg.Credentials, orderservices.WithEventBus(bus))
}

type ListArgs struct {
	AccountID int
	Count     int
	Marker    string
	Csv       bool
}

func ListOrders(ctx context.Context, client *orderservices.OrdersClient, args ListArgs, out io.Writer) error {
	var req *ordermodels.ListOrdersRequest
	if args.Count > 0 || args.Marker != "" {
		req = &ordermodels.ListOrdersRequest{Count: args.Count, Marker: args.Marker}
	}

	resp, err := client.ListOrders(ctx, args.AccountID, req)
	if err != nil {
		return fmt.Errorf("ListOrders: %w", err)
	}

	if args.Csv {
		return utils.ExportOrdersToCsv(out, resp.Orders())
	}

	fmt.Fprint(out, utils.OrdersTable(resp.Orders()))
	if resp.Marker != "" {
		fmt.Fprintf(out, "next marker: %s\n", resp.Marker)
	}

	return nil
}

func CancelOrder(ctx context.Context, client *orderservices.OrdersClient, accountID int, orderNum int, out io.Writer) error {
	resp, err := client.CancelOrder(ctx, accountID, orderNum)
	if err != nil {
		return fmt.Errorf("CancelOrder: %w", err)
	}

	fmt.Fprintf(out, "order %d cancelled at %d\n", resp.OrderNum, resp.CancelTime)
	return nil
}

// SubmitTicket builds the props for a ticket and sends the call for stage.
// A non-zero previewID is threaded into the place call.
func SubmitTicket(ctx context.Context, client *orderservices.OrdersClient, ticket *utils.OrderTicket, accountID int, stage Stage, previewID int64, out io.Writer) error {
	props, err := ticket.BuildProps(accountID)
	if err != nil {
		return fmt.Errorf("SubmitTicket: %w", err)
	}

	if previewID > 0 {
		if p, ok := props.(interface{ SetPreviewID(int64) }); ok {
			p.SetPreviewID(previewID)
		}
	}

	var resp ordermodels.EquityOrderResponse

	switch p := props.(type) {
	case *ordermodels.EquityOrderProps:
		if stage == StagePreview {
			r, err := client.EquityOrderPreview(ctx, p)
			if err != nil {
				return fmt.Errorf("SubmitTicket: %w", err)
			}
			resp = r.EquityOrderResponse
		} else {
			r, err := client.EquityOrderPlace(ctx, p)
			if err != nil {
				return fmt.Errorf("SubmitTicket: %w", err)
			}
			resp = r.EquityOrderResponse
		}
	case *ordermodels.EquityOrderChangeProps:
		if stage == StagePreview {
			r, err := client.EquityChangePreview(ctx, p)
			if err != nil {
				return fmt.Errorf("SubmitTicket: %w", err)
			}
			resp = r.EquityOrderResponse
		} else {
			r, err := client.EquityChangePlace(ctx, p)
			if err != nil {
				return fmt.Errorf("SubmitTicket: %w", err)
			}
			resp = r.EquityOrderResponse
		}
	default:
		if err := client.SubmitOptionOrder(ctx, props); err != nil {
			if errors.Is(err, orderservices.ErrOptionOrdersUnsupported) {
				fmt.Fprintf(out, "%s ticket is valid (client order id %s) but cannot be submitted\n", props.Kind(), props.ClientOrderID())
			}
			return fmt.Errorf("SubmitTicket: %w", err)
		}
		return nil
	}

	title := "Preview"
	if stage == StagePlace {
		title = "Placed"
	}

	fmt.Fprint(out, utils.EquityOrderResponseTable(title, resp))
	return nil
}
