package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "loancore-cli",
		Short: "LoanCore CLI tool",
		Long:  `A command line interface for interacting with the LoanCore API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LoanCore API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(loansCmd())
	rootCmd.AddCommand(rulesCmd())
	rootCmd.AddCommand(scheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check service health",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/ready")
		},
	}
}

func loansCmd() *cobra.Command {
	loansCmd := &cobra.Command{
		Use:   "loans",
		Short: "Loan operations",
	}

	loansCmd.AddCommand(&cobra.Command{
		Use:   "get <loan-id>",
		Short: "Show a loan with its schedule",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/loans/" + args[0])
		},
	})

	loansCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List loans",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/loans/")
		},
	})

	loansCmd.AddCommand(&cobra.Command{
		Use:   "entries <loan-id>",
		Short: "List journal entries posted for a loan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/loans/" + args[0] + "/entries")
		},
	})

	repayCmd := &cobra.Command{
		Use:   "repay <loan-id>",
		Short: "Post a repayment against a loan",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			amount, _ := cmd.Flags().GetString("amount")
			method, _ := cmd.Flags().GetString("method")
			doPost("/api/v1/loans/"+args[0]+"/repayments", map[string]any{
				"amount":         amount,
				"payment_method": method,
			})
		},
	}
	repayCmd.Flags().String("amount", "", "Payment amount")
	repayCmd.Flags().String("method", "cash", "Payment method")
	loansCmd.AddCommand(repayCmd)

	return loansCmd
}

func rulesCmd() *cobra.Command {
	rulesCmd := &cobra.Command{
		Use:   "rules",
		Short: "Accounting rule operations",
	}

	rulesCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List active accounting rules",
		Run: func(cmd *cobra.Command, args []string) {
			doGet("/api/v1/rules/")
		},
	})

	resolveCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Dry-run rule resolution for a hypothetical event",
		Run: func(cmd *cobra.Command, args []string) {
			event := map[string]any{}
			for flag, key := range map[string]string{
				"event-type":      "event_type",
				"event-attribute": "event_attribute",
				"product-type":    "product_type",
				"currency":        "currency",
				"client-type":     "client_type",
				"payment-method":  "payment_method",
			} {
				if v, _ := cmd.Flags().GetString(flag); v != "" {
					event[key] = v
				}
			}
			doPost("/api/v1/rules/resolve", event)
		},
	}
	resolveCmd.Flags().String("event-type", "repayment", "Event type")
	resolveCmd.Flags().String("event-attribute", "", "Event attribute")
	resolveCmd.Flags().String("product-type", "", "Product type")
	resolveCmd.Flags().String("currency", "", "Currency")
	resolveCmd.Flags().String("client-type", "", "Client type")
	resolveCmd.Flags().String("payment-method", "", "Payment method")
	rulesCmd.AddCommand(resolveCmd)

	return rulesCmd
}

func scheduleCmd() *cobra.Command {
	scheduleCmd := &cobra.Command{
		Use:   "schedule",
		Short: "Schedule operations",
	}

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview an amortization schedule without creating a loan",
		Run: func(cmd *cobra.Command, args []string) {
			principal, _ := cmd.Flags().GetString("principal")
			rate, _ := cmd.Flags().GetString("rate")
			periods, _ := cmd.Flags().GetInt("periods")
			method, _ := cmd.Flags().GetString("method")
			currency, _ := cmd.Flags().GetString("currency")
			firstDue, _ := cmd.Flags().GetString("first-due")

			doPost("/api/v1/schedules/preview", map[string]any{
				"principal":       principal,
				"annual_rate":     rate,
				"periods":         periods,
				"schedule_method": method,
				"currency":        currency,
				"first_due_date":  firstDue,
			})
		},
	}
	previewCmd.Flags().String("principal", "", "Loan principal")
	previewCmd.Flags().String("rate", "0", "Annual interest rate, e.g. 0.12")
	previewCmd.Flags().Int("periods", 12, "Number of installments")
	previewCmd.Flags().String("method", "flat", "Schedule method (flat or annuity)")
	previewCmd.Flags().String("currency", "USD", "Currency")
	previewCmd.Flags().String("first-due", "", "First due date, RFC 3339")
	scheduleCmd.AddCommand(previewCmd)

	return scheduleCmd
}

func doGet(path string) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func doPost(path string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		fmt.Printf("Error encoding request: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	printResponse(resp)
}

func printResponse(resp *http.Response) {
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", resp.StatusCode, truncate(string(body), 2000))
		os.Exit(1)
	}

	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		fmt.Println(string(body))
		return
	}

	printJSON(decoded)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to render response: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(out))
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}

	return s[:max-3] + "..."
}
