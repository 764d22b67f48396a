package domain

// Sender identifies who produced a chat turn.
type Sender string

const (
	SenderAI   Sender = "ai"
	SenderUser Sender = "user"
)

// ExitMethod records how a conversation surface was closed.
type ExitMethod string

const (
	// ExitButton covers every explicit close action: the close button, the
	// stop phrase, and acknowledging the final message.
	ExitButton ExitMethod = "BUTTON"
	// ExitNavBar covers losing foreground: backgrounding, home, navigation.
	ExitNavBar ExitMethod = "NAV_BAR"
)

// ChatTurn is one message of a conversation transcript.
type ChatTurn struct {
	Role Sender
	Text string
}

// ExitRecord is the append-only log entry written when a conversation closes.
type ExitRecord struct {
	Finished bool
	Method   ExitMethod
	Note     string
	AtMs     int64
}

// ChatResult is delivered to the scheduler exactly once per conversation.
type ChatResult struct {
	Reason     string
	TotalScore int
}
