package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/nstehr/pitchside/ipc"
	"github.com/nstehr/pitchside/model"
	"github.com/nstehr/pitchside/store"
	"github.com/nstehr/pitchside/tactics"
	"github.com/nstehr/pitchside/trace"
)

// ResultRecorder persists finished matches. *store.Store satisfies it.
type ResultRecorder interface {
	RecordMatch(ctx context.Context, r store.MatchResult) error
}

// Options configures a session. Zero values disable the optional sinks.
type Options struct {
	Team    string
	DumpDir string
	Results ResultRecorder
}

// match is everything a session knows about the match in progress. It is
// replaced wholesale by the next hello, so nothing crosses match boundaries.
type match struct {
	id       string
	seed     int64
	revision uint64
	recorder *trace.Recorder
	prev     *stateSnapshot
	lastTick int
	counts   map[EventKind]int
	goals    []Event
}

// Agent owns the decision-making for a single bridge session.
type Agent struct {
	Conn    *ipc.Connection
	Engine  *tactics.Engine
	adapter model.Adapter
	opts    Options
	match   *match
}

func New(conn *ipc.Connection, engine *tactics.Engine, opts Options) *Agent {
	if opts.Team == "" {
		opts.Team = "left"
	}
	return &Agent{Conn: conn, Engine: engine, adapter: model.RawAdapter{}, opts: opts}
}

// Register wires the session's handlers into its connection.
func (a *Agent) Register() {
	if a.Conn == nil {
		return
	}
	a.Conn.RegisterHandler(ipc.TypeHello, a.HandleHello)
	a.Conn.RegisterHandler(ipc.TypeObservation, a.HandleObservation)
	a.Conn.RegisterHandler(ipc.TypeEpisodeDone, a.HandleEpisodeDone)
}

// MatchID is the id of the match in progress, or "".
func (a *Agent) MatchID() string {
	if a.match == nil {
		return ""
	}
	return a.match.id
}

// HandleHello starts a new match. Any match still in progress is abandoned
// without a result.
func (a *Agent) HandleHello(env ipc.Envelope) (*ipc.Envelope, error) {
	var hello ipc.HelloMessage
	if err := json.Unmarshal(env.Data, &hello); err != nil {
		return ipc.ErrorReply(0, env.Type, fmt.Errorf("unmarshal hello: %w", err)), nil
	}
	if a.match != nil {
		slog.Warn("match abandoned", "match", a.match.id, "lastTick", a.match.lastTick)
		a.closeMatch()
	}

	if hello.Team != "" {
		a.opts.Team = hello.Team
	}
	if a.Conn != nil {
		a.Conn.Team = a.opts.Team
	}

	profile, revision := a.Engine.Snapshot()
	m := &match{
		id:       uuid.NewString(),
		seed:     hello.Seed,
		revision: revision,
		counts:   make(map[EventKind]int),
	}
	if m.seed == 0 {
		m.seed = time.Now().UnixNano()
	}
	if a.opts.DumpDir != "" {
		rec, err := trace.NewRecorder(a.opts.DumpDir, m.id)
		if err != nil {
			slog.Error("dump disabled for match", "match", m.id, "error", err)
		} else {
			m.recorder = rec
			a.record(m, trace.Record{Kind: trace.KindHeader, MatchID: m.id, Team: a.opts.Team, Profile: &profile})
		}
	}
	a.match = m
	slog.Info("match started", "match", m.id, "team", a.opts.Team, "scenario", hello.Scenario, "seed", m.seed)

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "ok", MatchID: m.id, Seed: m.seed})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// HandleObservation answers one tick with one action per controlled agent.
// Malformed observations get an error reply; the session carries on.
func (a *Agent) HandleObservation(env ipc.Envelope) (*ipc.Envelope, error) {
	m := a.match
	if m == nil {
		return ipc.ErrorReply(0, env.Type, fmt.Errorf("observation before hello")), nil
	}
	if err := ipc.ValidateObservation(env.Data); err != nil {
		slog.Warn("observation rejected", "match", m.id, "error", err)
		return ipc.ErrorReply(0, env.Type, err), nil
	}

	var msg ipc.ObservationMessage
	if err := json.Unmarshal(env.Data, &msg); err != nil {
		return ipc.ErrorReply(0, env.Type, fmt.Errorf("unmarshal observation: %w", err)), nil
	}
	obs, views, err := a.adapter.Adapt(msg.Observations)
	if err != nil {
		slog.Warn("observation rejected", "match", m.id, "tick", msg.Tick, "error", err)
		return ipc.ErrorReply(msg.Tick, env.Type, err), nil
	}

	seed := m.seed + int64(msg.Tick)
	decision := a.Engine.Evaluate(&obs, views, rand.New(rand.NewSource(seed)))

	cur := takeSnapshot(&obs, decision.Phase, m.prev)
	for _, e := range detectEvents(&cur, m.prev, msg.Tick) {
		m.counts[e.Kind]++
		if e.Kind == EventGoalFor || e.Kind == EventGoalAgainst {
			m.goals = append(m.goals, e)
			slog.Info("match event", "match", m.id, "tick", e.Tick, "kind", e.Kind, "detail", e.Detail)
		} else {
			slog.Debug("match event", "match", m.id, "tick", e.Tick, "kind", e.Kind, "detail", e.Detail)
		}
	}
	m.prev = &cur
	m.lastTick = msg.Tick

	if decision.Revision != m.revision {
		m.revision = decision.Revision
		slog.Info("match continues under swapped profile", "match", m.id, "tick", msg.Tick, "profile", decision.Profile.Name)
		a.record(m, trace.Record{Kind: trace.KindProfile, Tick: msg.Tick, Profile: &decision.Profile})
	}
	a.record(m, trace.Record{
		Kind:        trace.KindTick,
		Tick:        msg.Tick,
		Seed:        seed,
		Phase:       decision.Phase.String(),
		Observation: &obs,
		Views:       views,
		Actions:     decision.Actions,
	})

	reply, err := ipc.NewEnvelope(ipc.TypeActions, ipc.ActionsMessage{
		Tick:    msg.Tick,
		Actions: decision.Actions,
		Phase:   decision.Phase.String(),
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// HandleEpisodeDone records the result and closes the match.
func (a *Agent) HandleEpisodeDone(env ipc.Envelope) (*ipc.Envelope, error) {
	m := a.match
	if m == nil {
		return ipc.ErrorReply(0, env.Type, fmt.Errorf("episode_done before hello")), nil
	}
	var done ipc.EpisodeDoneMessage
	if err := json.Unmarshal(env.Data, &done); err != nil {
		return ipc.ErrorReply(0, env.Type, fmt.Errorf("unmarshal episode_done: %w", err)), nil
	}

	result := store.MatchResult{
		MatchID:      m.id,
		Team:         a.opts.Team,
		Seed:         m.seed,
		GoalsFor:     done.Score[0],
		GoalsAgainst: done.Score[1],
		Steps:        done.Steps,
		Turnovers:    m.counts[EventTurnover],
		ModeChanges:  m.counts[EventModeChange],
		PhaseChanges: m.counts[EventPhaseTransition],
		FinishedAt:   time.Now(),
	}
	slog.Info("match finished",
		"match", m.id,
		"score", fmt.Sprintf("%d-%d", result.GoalsFor, result.GoalsAgainst),
		"outcome", result.Outcome(),
		"steps", result.Steps,
		"turnovers", result.Turnovers,
		"phaseChanges", result.PhaseChanges,
	)
	if len(m.goals) > 0 {
		slog.Debug("goal timeline", "match", m.id, "events", formatEvents(m.goals))
	}

	if a.opts.Results != nil {
		if err := a.opts.Results.RecordMatch(context.Background(), result); err != nil {
			slog.Error("failed to record match", "match", m.id, "error", err)
		}
	}
	a.closeMatch()

	ack, err := ipc.NewEnvelope(ipc.TypeAck, ipc.AckMessage{Status: "done", MatchID: result.MatchID, Seed: result.Seed})
	if err != nil {
		return nil, err
	}
	return &ack, nil
}

// Close releases the match in progress, if any. Called when the bridge
// disconnects.
func (a *Agent) Close() {
	if a.match != nil {
		a.closeMatch()
	}
}

func (a *Agent) record(m *match, rec trace.Record) {
	if m.recorder == nil {
		return
	}
	if err := m.recorder.Write(rec); err != nil {
		slog.Error("dump write failed, disabling dump", "match", m.id, "error", err)
		_ = m.recorder.Close()
		m.recorder = nil
	}
}

func (a *Agent) closeMatch() {
	m := a.match
	a.match = nil
	if m.recorder != nil {
		if err := m.recorder.Close(); err != nil {
			slog.Error("failed to close dump", "match", m.id, "error", err)
		} else {
			slog.Info("match dump written", "match", m.id, "path", m.recorder.Path())
		}
	}
}
