package cmd

// SessionsCmd inspects recorded usage sessions
type SessionsCmd struct {
	List SessionsListCmd `cmd:"list" help:"List recorded sessions" default:"1"`
}
