package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(playersCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(processCmd)
	rootCmd.AddCommand(applyMatchCmd)
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(tierCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var playersCmd = &cobra.Command{
	Use:   "players",
	Short: "List the players in the club store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/players")
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Show the club leaderboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard")
	},
}

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Trigger a tournament processing pass",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/process-tournaments")
	},
}

var applyMatchCmd = &cobra.Command{
	Use:   "apply-match [matchID]",
	Short: "Apply a recorded league match to the standings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/apply-match?matchID=" + url.QueryEscape(args[0]))
	},
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync court bookings from the booking provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/sync-bookings")
	},
}

var tierCmd = &cobra.Command{
	Use:   "tier [playerID]",
	Short: "Show a player's loyalty tier status",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/tier-status?playerID=" + url.QueryEscape(args[0]))
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
