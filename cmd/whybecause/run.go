package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/NeoVand/WhyBecause/internal/presentation/tui"
	"github.com/NeoVand/WhyBecause/pkg/domain"
	"github.com/NeoVand/WhyBecause/pkg/ports"
	"github.com/NeoVand/WhyBecause/pkg/runner"
	"github.com/NeoVand/WhyBecause/pkg/session"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Step through a flow interactively",
	Long: `Opens a runner session on a flow and steps it from the terminal:
execute the current state's agent, pick a transition, or reset.`,
	Run: func(cmd *cobra.Command, args []string) {
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
		projectID, _ := cmd.Flags().GetString("project")
		startID, _ := cmd.Flags().GetString("start")

		if flowID == "" || projectID == "" {
			docs, err := store.List(cmd.Context())
			if err != nil {
				fmt.Printf("Error listing workspace: %v\n", err)
				os.Exit(1)
			}
			if flowID == "" {
				flowID = firstOfType(docs, domain.DocTypeFlow)
			}
			if projectID == "" {
				projectID = firstOfType(docs, domain.DocTypeProject)
			}
		}
		if flowID == "" {
			fmt.Println("No flow found; pass --flow or point --dir at a workspace")
			os.Exit(1)
		}

		trace := ports.TraceFunc(func(line string) {
			fmt.Printf("  · %s\n", line)
		})
		manager := session.NewManager(store,
			session.WithLogger(logger),
			session.WithRunnerOptions(runner.WithTrace(trace)),
		)

		sess, err := manager.Open(cmd.Context(), flowID, projectID)
		if err != nil {
			fmt.Printf("Error opening session: %v\n", err)
			os.Exit(1)
		}
		defer manager.Close(sess.ID)

		if startID == "" {
			startID = defaultStart(sess.Runner.Flow())
		}
		if err := sess.Runner.SetStartState(startID); err != nil {
			fmt.Printf("Error setting start state: %v\n", err)
			os.Exit(1)
		}

		tui.PrintBanner()
		fmt.Printf("Flow: %s\n", sess.Runner.Flow().Title)
		repl(cmd, sess)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().String("flow", "", "Flow document ID (defaults to the first flow in the workspace)")
	runCmd.Flags().String("project", "", "Project document ID (defaults to the first project in the workspace)")
	runCmd.Flags().String("start", "", "Start state ID (defaults to the first Start-typed state)")
}

func firstOfType(docs []domain.Document, docType string) string {
	for _, doc := range docs {
		if doc.Type == docType {
			return doc.ID
		}
	}
	return ""
}

// defaultStart picks the first Start-typed state, falling back to the first
// state in stored order.
func defaultStart(flow *domain.Flow) string {
	for _, s := range flow.States {
		if s.Type == domain.StateTypeStart {
			return s.ID
		}
	}
	if len(flow.States) > 0 {
		return flow.States[0].ID
	}
	return ""
}

// repl drives the interactive loop: show position and legal moves, read a
// command, apply it.
func repl(cmd *cobra.Command, sess *session.Session) {
	reader := bufio.NewReader(os.Stdin)
	render := tui.NewRenderer()

	for {
		printPosition(sess)

		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			return
		}
		input := strings.TrimSpace(line)

		switch input {
		case "q", "quit", "exit":
			return
		case "r", "run":
			out, err := sess.Runner.Run(cmd.Context())
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				continue
			}
			if rendered, rerr := render(out); rerr == nil {
				fmt.Print(rendered)
			} else {
				fmt.Println(out)
			}
		case "reset":
			sess.Runner.Reset()
		case "h", "help", "":
			fmt.Println("Commands: run (r), reset, quit (q), or a transition number")
		default:
			applyTransition(sess, input)
		}
	}
}

func printPosition(sess *session.Session) {
	state := sess.Runner.CurrentState()
	if state == nil {
		fmt.Println("\nPosition: (none) — the runner was reset; quit and restart with --start")
		return
	}

	fmt.Printf("\nState: %s", state.Label)
	if state.Type != "" {
		fmt.Printf(" [%s]", state.Type)
	}
	if state.AgentID != "" {
		fmt.Printf(" (agent: %s)", state.AgentID)
	}
	fmt.Println()

	ts := sess.Runner.AvailableTransitions()
	if len(ts) == 0 {
		fmt.Println("No outgoing transitions (terminal state)")
		return
	}
	for i, t := range ts {
		fmt.Printf("  %d. %s -> %s\n", i+1, t.Label(), t.Target)
	}
}

func applyTransition(sess *session.Session, input string) {
	ts := sess.Runner.AvailableTransitions()

	idx, err := strconv.Atoi(input)
	if err != nil || idx < 1 || idx > len(ts) {
		fmt.Printf("Unknown command %q (try 'help')\n", input)
		return
	}

	label, err := sess.Runner.TransitionTo(ts[idx-1].ID)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("-> %s\n", label)
}
