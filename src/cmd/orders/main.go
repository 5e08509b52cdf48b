package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/etrade-orders/src/cmd/orders/run"
	"github.com/jiaming2012/etrade-orders/src/orderservices"
	"github.com/jiaming2012/etrade-orders/src/sandbox"
	"github.com/jiaming2012/etrade-orders/src/telemetry"
	"github.com/jiaming2012/etrade-orders/src/utils"
)

var otelShutdown func(context.Context) error

var rootCmd = &cobra.Command{
	Use:   "orders",
	Short: "Preview, place, amend, cancel and list E*TRADE orders",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			return err
		}

		envDir := utils.GetEnvOrDefault("ETRADE_ENV_DIR", ".")
		if err := utils.InitEnvironmentVariables(envDir, goEnv); err != nil {
			return err
		}

		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}

		if enabled, _ := cmd.Flags().GetBool("telemetry"); enabled {
			telemetry.InstrumentLogger()

			shutdown, err := telemetry.SetupOTelSDK(cmd.Context(), telemetry.ServiceName)
			if err != nil {
				return err
			}
			otelShutdown = shutdown
		}

		return nil
	},
}

// execute runs cmd and then flushes telemetry, including when cmd fails.
func execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)

	if otelShutdown != nil {
		if shutdownErr := otelShutdown(context.Background()); shutdownErr != nil {
			log.Errorf("failed to shutdown telemetry: %v", shutdownErr)
		}
		otelShutdown = nil
	}

	return err
}

func newClient(cmd *cobra.Command) (*orderservices.OrdersClient, int, error) {
	cfg, err := run.LoadConfig()
	if err != nil {
		return nil, 0, err
	}

	accountFlag, err := cmd.Flags().GetInt("account-id")
	if err != nil {
		return nil, 0, err
	}

	accountID, err := cfg.RequireAccountID(accountFlag)
	if err != nil {
		return nil, 0, err
	}

	client, err := run.NewClient(cfg)
	if err != nil {
		return nil, 0, err
	}

	return client, accountID, nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders for an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, accountID, err := newClient(cmd)
		if err != nil {
			return err
		}

		count, _ := cmd.Flags().GetInt("count")
		marker, _ := cmd.Flags().GetString("marker")
		csv, _ := cmd.Flags().GetBool("csv")

		return run.ListOrders(cmd.Context(), client, run.ListArgs{
			AccountID: accountID,
			Count:     count,
			Marker:    marker,
			Csv:       csv,
		}, os.Stdout)
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <orderNum>",
	Short: "Cancel an open order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		orderNum, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		client, accountID, err := newClient(cmd)
		if err != nil {
			return err
		}

		return run.CancelOrder(cmd.Context(), client, accountID, orderNum, os.Stdout)
	},
}

func newTicketCmd(use string, short string, stage run.Stage, change bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <ticket.yaml>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ticket, err := utils.LoadOrderTicket(args[0])
			if err != nil {
				return err
			}

			if isChange := ticket.EquityChange != nil || ticket.OptionChange != nil; isChange != change {
				return fmt.Errorf("%s: ticket %s has the wrong order section", use, args[0])
			}

			client, accountID, err := newClient(cmd)
			if err != nil {
				return err
			}

			previewID, _ := cmd.Flags().GetInt64("preview-id")

			if stage == run.StagePlace {
				if yes, _ := cmd.Flags().GetBool("yes"); !yes {
					ok, err := utils.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Place %s?", args[0]))
					if err != nil {
						return err
					}

					if !ok {
						log.Info("aborted")
						return nil
					}
				}
			}

			return run.SubmitTicket(cmd.Context(), client, ticket, accountID, stage, previewID, os.Stdout)
		},
	}

	if stage == run.StagePlace {
		cmd.Flags().Int64("preview-id", 0, "The preview id returned by the matching preview call.")
		cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt.")
	}

	return cmd
}

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Serve an in-memory fake of the order API",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		prefix, _ := cmd.Flags().GetString("prefix")
		origins, _ := cmd.Flags().GetStringSlice("cors-origin")

		var handler http.Handler
		if len(origins) > 0 {
			handler = sandbox.NewServer().HandlerWithCORS(prefix, origins)
		} else {
			handler = sandbox.NewServer().Handler(prefix)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		srv := &http.Server{
			Addr:         addr,
			BaseContext:  func(_ net.Listener) context.Context { return ctx },
			ReadTimeout:  time.Second,
			WriteTimeout: 10 * time.Second,
			Handler:      handler,
		}

		srvErr := make(chan error, 1)
		go func() {
			log.Infof("sandbox listening on %s%s", addr, prefix)
			srvErr <- srv.ListenAndServe()
		}()

		select {
		case err := <-srvErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			stop()
		}

		return srv.Shutdown(context.Background())
	},
}

func main() {
	rootCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	rootCmd.PersistentFlags().Int("account-id", 0, "The E*TRADE account id. Defaults to ETRADE_ACCOUNT_ID.")
	rootCmd.PersistentFlags().Bool("telemetry", false, "Export traces and metrics over OTLP.")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")

	listCmd.Flags().Int("count", 0, "Number of orders to return, at most 25.")
	listCmd.Flags().String("marker", "", "Paging marker returned by a previous call.")
	listCmd.Flags().Bool("csv", false, "Write the orders as csv.")

	sandboxCmd.Flags().String("addr", ":8080", "The address to listen on.")
	sandboxCmd.Flags().String("prefix", "/order/sandbox/rest", "The path prefix of the order endpoints.")
	sandboxCmd.Flags().StringSlice("cors-origin", nil, "Browser origins allowed to call the sandbox.")

	rootCmd.AddCommand(
		listCmd,
		cancelCmd,
		newTicketCmd("preview", "Preview a new equity order", run.StagePreview, false),
		newTicketCmd("place", "Place a new equity order", run.StagePlace, false),
		newTicketCmd("change-preview", "Preview a change to an open order", run.StagePreview, true),
		newTicketCmd("change-place", "Place a change to an open order", run.StagePlace, true),
		sandboxCmd,
	)

	if err := execute(context.Background(), rootCmd); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
