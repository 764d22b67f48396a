package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/sanghyeon0114/argue-with-ai/internal/domain"
)

// SessionsListCmd lists recorded usage sessions
type SessionsListCmd struct {
	Day    string `help:"Filter by UTC day bucket (YYYY-MM-DD); empty lists everything"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the list command
func (s *SessionsListCmd) Run(cli *CLI) error {
	sessions, err := cli.Container.SessionStore().ListSessions(context.Background(), s.Day)
	if err != nil {
		return fmt.Errorf("failed to list sessions: %w", err)
	}

	if s.Format == "json" {
		return s.printJSON(sessions)
	}
	return s.printTable(sessions)
}

func (s *SessionsListCmd) printJSON(sessions []domain.Session) error {
	data, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (s *SessionsListCmd) printTable(sessions []domain.Session) error {
	if len(sessions) == 0 {
		fmt.Println("No sessions recorded.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tAPP\tSTART\tDURATION")
	for _, sess := range sessions {
		duration := "open"
		if sess.DurationSec != nil {
			duration = fmt.Sprintf("%ds", *sess.DurationSec)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			sess.Day,
			sess.App,
			sess.StartTime.Format("15:04:05"),
			duration,
		)
	}
	return w.Flush()
}
