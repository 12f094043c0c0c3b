package domain

type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

// Turn is a single exchange entry in a conversation thread.
type Turn struct {
	Role Role
	Text string
}

// Thread is the dialogue-context handle shared by all messages of one
// conversation. It is passed into every model invocation and written back
// to the registry after each processing cycle.
type Thread struct {
	Turns []Turn
}

// Append records one turn at the end of the thread.
func (t *Thread) Append(role Role, text string) {
	t.Turns = append(t.Turns, Turn{Role: role, Text: text})
}

// Len returns the number of recorded turns.
func (t *Thread) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Turns)
}
