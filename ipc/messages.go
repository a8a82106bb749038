package ipc

import "github.com/nstehr/pitchside/model"

// Message types. These must stay in sync with the bridge script.
const (
	TypeHello       = "hello"
	TypeAck         = "ack"
	TypeObservation = "observation"
	TypeEpisodeDone = "episode_done"
)

// HelloMessage starts a match. A zero Seed asks the sidecar to pick one.
type HelloMessage struct {
	Team     string `json:"team"`
	Scenario string `json:"scenario,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
}

type AckMessage struct {
	Status  string `json:"status"`
	MatchID string `json:"match_id,omitempty"`
	Seed    int64  `json:"seed,omitempty"`
}

// ObservationMessage carries one raw observation per controlled agent.
type ObservationMessage struct {
	Tick         int                    `json:"tick"`
	Observations []model.RawObservation `json:"observations"`
}

type EpisodeDoneMessage struct {
	Score [2]int `json:"score"`
	Steps int    `json:"steps"`
}
