package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jiaming2012/etrade-orders/src/ordermodels"
)

// OrderTicket is the yaml file accepted by the preview and place commands.
// Exactly one of the sections must be set.
type OrderTicket struct {
	Equity       *ordermodels.EquityOrderParams       `yaml:"equity"`
	EquityChange *ordermodels.EquityOrderChangeParams `yaml:"equity_change"`
	Option       *ordermodels.OptionOrderParams       `yaml:"option"`
	OptionChange *ordermodels.OptionOrderChangeParams `yaml:"option_change"`
}

func ParseOrderTicket(data []byte) (*OrderTicket, error) {
	var ticket OrderTicket
	if err := yaml.Unmarshal(data, &ticket); err != nil {
		return nil, fmt.Errorf("ParseOrderTicket: failed to unmarshal: %w", err)
	}

	sections := 0
	for _, set := range []bool{ticket.Equity != nil, ticket.EquityChange != nil, ticket.Option != nil, ticket.OptionChange != nil} {
		if set {
			sections++
		}
	}

	if sections != 1 {
		return nil, fmt.Errorf("ParseOrderTicket: expected exactly one order section, got %d", sections)
	}

	return &ticket, nil
}

func LoadOrderTicket(path string) (*OrderTicket, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("LoadOrderTicket: failed to read %s: %w", path, err)
	}

	return ParseOrderTicket(data)
}

// BuildProps validates the ticket section into order props. accountID fills
// in a ticket that leaves the account out.
func (t *OrderTicket) BuildProps(accountID int) (ordermodels.OrderProps, error) {
	switch {
	case t.Equity != nil:
		params := *t.Equity
		if params.AccountID == 0 {
			params.AccountID = accountID
		}

		props, err := ordermodels.NewEquityOrderProps(params)
		if err != nil {
			return nil, fmt.Errorf("BuildProps: invalid equity ticket: %w", err)
		}
		return props, nil
	case t.EquityChange != nil:
		params := *t.EquityChange
		if params.AccountID == 0 {
			params.AccountID = accountID
		}

		props, err := ordermodels.NewEquityOrderChangeProps(params)
		if err != nil {
			return nil, fmt.Errorf("BuildProps: invalid equity change ticket: %w", err)
		}
		return props, nil
	case t.Option != nil:
		params := *t.Option
		if params.AccountID == 0 {
			params.AccountID = accountID
		}

		props, err := ordermodels.NewOptionOrderProps(params)
		if err != nil {
			return nil, fmt.Errorf("BuildProps: invalid option ticket: %w", err)
		}
		return props, nil
	case t.OptionChange != nil:
		params := *t.OptionChange
		if params.AccountID == 0 {
			params.AccountID = accountID
		}

		props, err := ordermodels.NewOptionOrderChangeProps(params)
		if err != nil {
			return nil, fmt.Errorf("BuildProps: invalid option change ticket: %w", err)
		}
		return props, nil
	default:
		return nil, fmt.Errorf("BuildProps: empty ticket")
	}
}
