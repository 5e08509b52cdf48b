package orderservices

import (
	"fmt"
	"net/http"
	"strings"
)

const (
	LiveBaseURL    = "https://etws.etrade.com/order/rest"
	SandboxBaseURL = "https://etwssandbox.etrade.com/order/sandbox/rest"
)

type Endpoint struct {
	Method string
	URL    string
}

func (e Endpoint) String() string {
	return fmt.Sprintf("%s %s", e.Method, e.URL)
}

type OrderURLs struct {
	baseUrl string
}

func NewOrderURLs(baseUrl string) *OrderURLs {
	return &OrderURLs{
		baseUrl: strings.TrimRight(baseUrl, "/"),
	}
}

// NewOrderURLsForEnv picks the sandbox or live host. An override wins when set.
func NewOrderURLsForEnv(env string, override string) (*OrderURLs, error) {
	if override != "" {
		return NewOrderURLs(override), nil
	}

	switch env {
	case "", "sandbox":
		return NewOrderURLs(SandboxBaseURL), nil
	case "live", "production":
		return NewOrderURLs(LiveBaseURL), nil
	default:
		return nil, fmt.Errorf("NewOrderURLsForEnv: unknown environment: %s", env)
	}
}

func (u *OrderURLs) BaseURL() string {
	return u.baseUrl
}

func (u *OrderURLs) OrdersList(accountID int) Endpoint {
	return Endpoint{Method: http.MethodGet, URL: fmt.Sprintf("%s/orderlist/%d.json", u.baseUrl, accountID)}
}

func (u *OrderURLs) OrdersCancel() Endpoint {
	return Endpoint{Method: http.MethodPost, URL: u.baseUrl + "/cancelorder.json"}
}

func (u *OrderURLs) EquityPreview() Endpoint {
	return Endpoint{Method: http.MethodPost, URL: u.baseUrl + "/previewequityorder.json"}
}

func (u *OrderURLs) EquityPlace() Endpoint {
	return Endpoint{Method: http.MethodPost, URL: u.baseUrl + "/placeequityorder.json"}
}

func (u *OrderURLs) EquityChangePreview() Endpoint {
	return Endpoint{Method: http.MethodPost, URL: u.baseUrl + "/previewchangeequityorder.json"}
}

func (u *OrderURLs) EquityChangePlace() Endpoint {
	return Endpoint{Method: http.MethodPost, URL: u.baseUrl + "/placechangeequityorder.json"}
}
