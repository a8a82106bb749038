// Package trace writes and reads per-match dumps: one zstd-compressed JSONL
// file per match holding a header followed by every decided tick.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/nstehr/pitchside/model"
	"github.com/nstehr/pitchside/tactics"
)

// A dump starts with a header. A profile record precedes the first tick
// decided under a profile swapped in mid-match.
const (
	KindHeader  = "header"
	KindProfile = "profile"
	KindTick    = "tick"
)

// Record is one line of a dump.
type Record struct {
	Kind string `json:"kind"`

	// Header fields. Profile is also set on profile records.
	MatchID string           `json:"match_id,omitempty"`
	Team    string           `json:"team,omitempty"`
	Profile *tactics.Profile `json:"profile,omitempty"`

	// Tick fields. Seed is the per-tick seed the actions were drawn with.
	Tick        int                `json:"tick,omitempty"`
	Seed        int64              `json:"seed,omitempty"`
	Phase       string             `json:"phase,omitempty"`
	Observation *model.Observation `json:"observation,omitempty"`
	Views       []model.AgentView  `json:"views,omitempty"`
	Actions     []model.Action     `json:"actions,omitempty"`
}

// Path is where a match's dump lives under dir.
func Path(dir, matchID string) string {
	return filepath.Join(dir, fmt.Sprintf("match-%s.jsonl.zst", matchID))
}

// Recorder appends records to one dump file.
type Recorder struct {
	mu   sync.Mutex
	path string
	f    *os.File
	enc  *zstd.Encoder
	w    *bufio.Writer
}

func NewRecorder(dir, matchID string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create dump dir: %w", err)
	}
	path := Path(dir, matchID)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd writer: %w", err)
	}
	return &Recorder{
		path: path,
		f:    f,
		enc:  enc,
		w:    bufio.NewWriterSize(enc, 128*1024),
	}, nil
}

func (r *Recorder) Path() string { return r.path }

func (r *Recorder) Write(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return errors.New("recorder closed")
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Close flushes and finalizes the zstd frame. It is safe to call twice.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.w == nil {
		return nil
	}
	var errs []error
	errs = append(errs, r.w.Flush())
	errs = append(errs, r.enc.Close())
	errs = append(errs, r.f.Close())
	r.w, r.enc, r.f = nil, nil, nil
	return errors.Join(errs...)
}

// Reader iterates the records of one dump.
type Reader struct {
	f   *os.File
	dec *zstd.Decoder
	sc  *bufio.Scanner
}

func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dump: %w", err)
	}
	dec, err := zstd.NewReader(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)
	return &Reader{f: f, dec: dec, sc: sc}, nil
}

// Next returns the next record, or io.EOF after the last one.
func (r *Reader) Next() (Record, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Record{}, fmt.Errorf("scan dump: %w", err)
		}
		return Record{}, io.EOF
	}
	var rec Record
	if err := json.Unmarshal(r.sc.Bytes(), &rec); err != nil {
		return Record{}, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

func (r *Reader) Close() error {
	r.dec.Close()
	return r.f.Close()
}

// ReadAll loads every record of the dump at path.
func ReadAll(path string) ([]Record, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
}
