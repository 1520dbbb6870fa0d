package whybecause_test

import (
	"context"
	"fmt"

	whybecause "github.com/NeoVand/WhyBecause"
	"github.com/NeoVand/WhyBecause/pkg/adapters/memory"
	"github.com/NeoVand/WhyBecause/pkg/domain"
)

// Example demonstrates opening a session on a minimal flow and stepping it.
func Example() {
	store := memory.NewStore()
	ctx := context.Background()

	flow := &domain.Flow{
		ID:    "incident",
		Title: "Incident Review",
		States: []domain.State{
			{ID: "open", Label: "Opened", Type: domain.StateTypeStart},
			{ID: "closed", Label: "Closed", Type: domain.StateTypeFinal},
		},
		Transitions: []domain.Transition{
			{ID: "close", Source: "open", Target: "closed"},
		},
	}
	if err := store.Put(ctx, domain.NewFlowDocument(flow)); err != nil {
		panic(err)
	}

	ws := whybecause.New(store)
	sess, err := ws.Sessions.Open(ctx, "incident", "")
	if err != nil {
		panic(err)
	}

	_ = sess.Runner.SetStartState("open")
	label, _ := sess.Runner.TransitionTo("close")
	fmt.Println(label)
	// Output: Closed
}
