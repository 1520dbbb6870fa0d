package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/NeoVand/WhyBecause/internal/presentation/graph"
	"github.com/NeoVand/WhyBecause/internal/validator"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Print a flow as a Mermaid diagram",
	Run: func(cmd *cobra.Command, args []string) {
		flow := mustLoadFlow(cmd)
		fmt.Println(graph.Mermaid(flow, nil))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a flow graph for structural problems",
	Run: func(cmd *cobra.Command, args []string) {
		flow := mustLoadFlow(cmd)

		err := validator.ValidateFlow(flow)
		fmt.Println(validator.Summarize(err))
		if err != nil {
			os.Exit(1)
		}
	},
}

// mustLoadFlow resolves the --flow document from the configured store,
// exiting on any failure.
func mustLoadFlow(cmd *cobra.Command) *domain.Flow {
	logger := loggerFromFlags(cmd)

	store, err := storeFromFlags(cmd)
	if err != nil {
		fmt.Printf("Error initializing store: %v\n", err)
		os.Exit(1)
	}
	if err := populateStore(cmd.Context(), cmd, store, logger); err != nil {
		fmt.Printf("Error loading workspace: %v\n", err)
		os.Exit(1)
	}

	flowID, _ := cmd.Flags().GetString("flow")
	flow, err := fetchFlow(cmd, store, flowID)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return flow
}

func fetchFlow(cmd *cobra.Command, store ports.DocumentStore, flowID string) (*domain.Flow, error) {
	if flowID == "" {
		return nil, errors.New("--flow is required")
	}

	doc, err := store.Get(cmd.Context(), flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to load flow %q: %w", flowID, err)
	}
	flow, ok := doc.AsFlow()
	if !ok {
		return nil, fmt.Errorf("document %q is not a flow (type %q)", flowID, doc.Type)
	}
	return flow, nil
}

func init() {
	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(validateCmd)
	graphCmd.Flags().String("flow", "", "Flow document ID")
	validateCmd.Flags().String("flow", "", "Flow document ID")
}
