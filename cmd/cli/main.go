package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
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
		Use:   "bookkeeper-cli",
		Short: "Bookkeeper CLI tool",
		Long:  `A command line interface for interacting with the Bookkeeper API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the Bookkeeper API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	// Account commands
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Account directory operations",
	}

	accountListCmd := &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			getAndPrint("/api/v1/accounts")
		},
	}

	accountCmd.AddCommand(accountListCmd)
	rootCmd.AddCommand(accountCmd)

	// Balance commands
	balanceCmd := &cobra.Command{
		Use:   "balance",
		Short: "Balance operations",
	}

	var accountType string
	balanceListCmd := &cobra.Command{
		Use:   "list",
		Short: "List balances across the chart of accounts",
		Run: func(cmd *cobra.Command, args []string) {
			path := "/api/v1/balance"
			if accountType != "" {
				path += "?account_type=" + url.QueryEscape(accountType)
			}
			getAndPrint(path)
		},
	}
	balanceListCmd.Flags().StringVar(&accountType, "type", "", "Restrict to one account type")

	trialCmd := &cobra.Command{
		Use:   "trial",
		Short: "Compute the trial balance",
		Run: func(cmd *cobra.Command, args []string) {
			checkTrialBalance()
		},
	}

	balanceCmd.AddCommand(balanceListCmd)
	balanceCmd.AddCommand(trialCmd)
	rootCmd.AddCommand(balanceCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getAndPrint(path string) {
	body, status := get(path)
	if status != http.StatusOK {
		fmt.Printf("Request failed (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var pretty map[string]any
	if err := json.Unmarshal(body, &pretty); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(pretty, "", "  ")
	fmt.Println(string(out))
}

func checkTrialBalance() {
	body, status := get("/api/v1/balance/trial")
	if status != http.StatusOK {
		fmt.Printf("Trial balance FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result struct {
		Data struct {
			DebitTotal  string `json:"debit_total"`
			CreditTotal string `json:"credit_total"`
			Balanced    bool   `json:"balanced"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Debits:  %s\n", result.Data.DebitTotal)
	fmt.Printf("Credits: %s\n", result.Data.CreditTotal)
	if result.Data.Balanced {
		fmt.Println("Ledger is BALANCED")
		return
	}

	fmt.Println("Ledger is NOT balanced")
	os.Exit(1)
}

func get(path string) ([]byte, int) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}
