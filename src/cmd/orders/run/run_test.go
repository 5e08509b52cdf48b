package run

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jiaming2012/etrade-orders/src/orderservices"
	"github.com/jiaming2012/etrade-orders/src/sandbox"
	"github.com/jiaming2012/etrade-orders/src/utils"
)

const sandboxPrefix = "/order/sandbox/rest"

func newSandboxConfig(t *testing.T) *Config {
	srv := httptest.NewServer(sandbox.NewServer().Handler(sandboxPrefix))
	t.Cleanup(srv.Close)

	return &Config{
		AccountID:   123,
		Env:         "sandbox",
		BaseURL:     srv.URL + sandboxPrefix,
		Credentials: orderservices.NewTokenCredentials("sandbox-token"),
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("token credentials", func(t *testing.T) {
		t.Setenv("ETRADE_ACCESS_TOKEN", "token")
		t.Setenv("ETRADE_CONSUMER_KEY", "")
		t.Setenv("ETRADE_ACCOUNT_ID", "42")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, 42, cfg.AccountID)
		assert.Equal(t, "sandbox", cfg.Env)
		assert.IsType(t, &orderservices.TokenCredentials{}, cfg.Credentials)
	})

	t.Run("oauth1 credentials", func(t *testing.T) {
		t.Setenv("ETRADE_ACCESS_TOKEN", "token")
		t.Setenv("ETRADE_CONSUMER_KEY", "key")
		t.Setenv("ETRADE_CONSUMER_SECRET", "secret")
		t.Setenv("ETRADE_ACCESS_TOKEN_SECRET", "token-secret")
		t.Setenv("ETRADE_ENV", "live")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "live", cfg.Env)
		assert.IsType(t, &orderservices.OAuth1Credentials{}, cfg.Credentials)
	})

	t.Run("missing consumer secret", func(t *testing.T) {
		t.Setenv("ETRADE_ACCESS_TOKEN", "token")
		t.Setenv("ETRADE_CONSUMER_KEY", "key")
		t.Setenv("ETRADE_CONSUMER_SECRET", "")

		_, err := LoadConfig()
		require.Error(t, err)
	})

	t.Run("account id flag wins", func(t *testing.T) {
		cfg := &Config{AccountID: 1}

		id, err := cfg.RequireAccountID(7)
		require.NoError(t, err)
		assert.Equal(t, 7, id)

		_, err = (&Config{}).RequireAccountID(0)
		require.Error(t, err)
	})
}

func TestSubmitTicket(t *testing.T) {
	ctx := context.Background()
	cfg := newSandboxConfig(t)

	client, err := NewClient(cfg)
	require.NoError(t, err)

	ticket, err := utils.ParseOrderTicket([]byte(`
equity:
  quantity: 10
  symbol: aapl
  order_action: BUY
`))
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, SubmitTicket(ctx, client, ticket, cfg.AccountID, StagePreview, 0, &out))
	assert.Contains(t, out.String(), "Preview")
	assert.Contains(t, out.String(), "AAPL")

	out.Reset()
	require.NoError(t, SubmitTicket(ctx, client, ticket, cfg.AccountID, StagePlace, 0, &out))
	assert.Contains(t, out.String(), "Order Number")

	out.Reset()
	require.NoError(t, ListOrders(ctx, client, ListArgs{AccountID: cfg.AccountID, Csv: true}, &out))
	assert.Contains(t, out.String(), "order_id")
	assert.Contains(t, out.String(), "AAPL")

	out.Reset()
	require.NoError(t, CancelOrder(ctx, client, cfg.AccountID, 1, &out))
	assert.Contains(t, out.String(), "order 1 cancelled")
}

func TestSubmitOptionTicket(t *testing.T) {
	cfg := newSandboxConfig(t)

	client, err := NewClient(cfg)
	require.NoError(t, err)

	ticket, err := utils.ParseOrderTicket([]byte(`
option:
  quantity: 1
  symbol: spy
  order_action: BUY_OPEN
  stop_limit_price: 2.5
  call_or_put: PUT
  strike_price: 400
  expiration_year: 2027
  expiration_month: 1
  expiration_day: 15
`))
	require.NoError(t, err)

	var out bytes.Buffer
	err = SubmitTicket(context.Background(), client, ticket, cfg.AccountID, StagePreview, 0, &out)
	require.ErrorIs(t, err, orderservices.ErrOptionOrdersUnsupported)
	assert.Contains(t, out.String(), "cannot be submitted")
}
