package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pinpoint/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().Bool("hash", false, "include git commit hash")
	versionCmd.Flags().Bool("date", false, "include build timestamp")
}

func runVersion(cmd *cobra.Command, _ []string) error {
	showHash, err := cmd.Flags().GetBool("hash")
	if err != nil {
		return fmt.Errorf("failed to get hash flag: %w", err)
	}
	showDate, err := cmd.Flags().GetBool("date")
	if err != nil {
		return fmt.Errorf("failed to get date flag: %w", err)
	}

	fmt.Printf("pinpoint %s\n", version.Version)
	if showHash && version.GitCommit != "" {
		fmt.Printf("commit: %s\n", version.GitCommit)
	}
	if showDate && version.BuildDate != "" {
		fmt.Printf("built:  %s\n", version.BuildDate)
	}
	return nil
}
