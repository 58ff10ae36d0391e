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
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "minibank-cli",
		Short: "MiniBank CLI tool",
		Long:  `A command line interface for interacting with the MiniBank API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the MiniBank API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Session token for authenticated calls")

	loginCmd := &cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and print a session token",
		Args:  cobra.ExactArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/auth/login", map[string]string{
				"username": args[0],
				"password": args[1],
			})
		},
	}

	signupCmd := &cobra.Command{
		Use:   "signup <username> <email> <password>",
		Short: "Create an account",
		Args:  cobra.ExactArgs(3),
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/auth/signup", map[string]string{
				"username": args[0],
				"email":    args[1],
				"password": args[2],
			})
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Run: func(cmd *cobra.Command, args []string) {
			postJSON("/api/v1/auth/logout", nil)
		},
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <account-id>",
		Short: "Show an account balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/balance")
		},
	}

	transferCmd := &cobra.Command{
		Use:   "transfer <sender-id> <receiver-username> <amount> [description]",
		Short: "Transfer funds",
		Args:  cobra.RangeArgs(3, 4),
		Run: func(cmd *cobra.Command, args []string) {
			description := ""
			if len(args) == 4 {
				description = args[3]
			}
			postJSON("/api/v1/transfers", map[string]string{
				"sender_id":         args[0],
				"receiver_username": args[1],
				"amount":            args[2],
				"description":       description,
			})
		},
	}

	transactionsCmd := &cobra.Command{
		Use:   "transactions <account-id>",
		Short: "List transactions for an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/transactions")
		},
	}

	securityLogsCmd := &cobra.Command{
		Use:   "security-logs <account-id>",
		Short: "List security logs for an account",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			getJSON("/api/v1/accounts/" + args[0] + "/security-logs")
		},
	}

	rootCmd.AddCommand(loginCmd, signupCmd, logoutCmd, balanceCmd, transferCmd, transactionsCmd, securityLogsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func getJSON(path string) {
	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	doRequest(req)
}

func postJSON(path string, payload any) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			fmt.Printf("Error encoding request: %v\n", err)
			os.Exit(1)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(http.MethodPost, baseURL+path, body)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	req.Header.Set("Content-Type", "application/json")
	doRequest(req)
}

func doRequest(req *http.Request) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		os.Exit(1)
	}
}
