package ipc

import "github.com/nstehr/pitchside/model"

// Reply types sent back to the bridge.
const (
	TypeActions = "actions"
	TypeError   = "error"
)

// ActionsMessage answers an observation with one action per agent, in the
// order the observations arrived.
type ActionsMessage struct {
	Tick    int            `json:"tick"`
	Actions []model.Action `json:"actions"`
	Phase   string         `json:"phase"`
}

// ErrorMessage reports a rejected message. The connection stays open.
type ErrorMessage struct {
	Tick    int    `json:"tick,omitempty"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

// ErrorReply builds an error reply envelope for a rejected message.
func ErrorReply(tick int, msgType string, err error) *Envelope {
	env, mErr := NewEnvelope(TypeError, ErrorMessage{Tick: tick, Type: msgType, Message: err.Error()})
	if mErr != nil {
		return nil
	}
	return &env
}
