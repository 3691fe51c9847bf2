// Package replay records the inputs of a match and plays them back into a
// fresh session.
package replay

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"discarena/internal/config"
	"discarena/internal/game"
	"discarena/internal/level"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Entry is one input and the frame it was applied on.
type Entry struct {
	Frame int        `msgpack:"f"`
	Input game.Input `msgpack:"i"`
}

// Recording holds everything needed to rebuild a match: the level, the tuning
// (seed included) and the input stream.
type Recording struct {
	ID        string           `msgpack:"id"`
	CreatedAt time.Time        `msgpack:"createdAt"`
	Level     *level.Level     `msgpack:"level"`
	Config    config.Config    `msgpack:"config"`
	Autopilot bool             `msgpack:"autopilot"`
	Frames    int              `msgpack:"frames"`
	Inputs    []Entry          `msgpack:"inputs"`
	Final     []game.DiscState `msgpack:"final"`
	PlayerWon *bool            `msgpack:"playerWon,omitempty"` // nil while undecided
}

var ErrDiverged = errors.New("replay diverged")

// Recorder implements game.Recorder.
type Recorder struct {
	rec Recording
}

func NewRecorder(lv *level.Level, cfg config.Config, autopilot bool) *Recorder {
	return &Recorder{rec: Recording{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Level:     lv,
		Config:    cfg,
		Autopilot: autopilot,
	}}
}

func (r *Recorder) ID() string { return r.rec.ID }

func (r *Recorder) Record(frame int, in game.Input) {
	r.rec.Inputs = append(r.rec.Inputs, Entry{Frame: frame, Input: in})
}

// Finish seals the recording with the session's final state.
func (r *Recorder) Finish(s *game.Session) *Recording {
	rec := r.rec
	rec.Inputs = slices.Clone(r.rec.Inputs)
	rec.Frames = s.FrameCount()
	rec.Final = s.Snapshot()
	if over, won := s.Outcome(); over {
		rec.PlayerWon = &won
	}
	return &rec
}

// --- Encoding ---

func Write(w io.Writer, rec *Recording) error {
	if err := msgpack.NewEncoder(w).Encode(rec); err != nil {
		return fmt.Errorf("encode replay: %w", err)
	}
	return nil
}

func Read(r io.Reader) (*Recording, error) {
	var rec Recording
	if err := msgpack.NewDecoder(r).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode replay: %w", err)
	}
	if rec.Level == nil {
		return nil, fmt.Errorf("decode replay: missing level")
	}
	return &rec, nil
}

func Save(path string, rec *Recording) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save replay: %w", err)
	}
	if err := Write(f, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func Load(path string) (*Recording, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load replay: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// --- Playback ---

// Play rebuilds the match and drives it to the recorded frame count. opts
// supplies the logger; the recorder and autopilot come from rec.
func Play(rec *Recording, opts game.Options) (*game.Session, error) {
	opts.Recorder = nil
	opts.Autopilot = rec.Autopilot
	s, err := game.New(rec.Level, rec.Config, opts)
	if err != nil {
		return nil, fmt.Errorf("replay %s: %w", rec.ID, err)
	}

	next := 0
	for f := 1; f <= rec.Frames; f++ {
		for next < len(rec.Inputs) && rec.Inputs[next].Frame == f {
			s.Push(rec.Inputs[next].Input)
			next++
		}
		s.Frame()
	}
	return s, nil
}

// Verify checks that s ended in the recorded final state.
func Verify(rec *Recording, s *game.Session) error {
	got := s.Snapshot()
	if len(got) != len(rec.Final) {
		return fmt.Errorf("%w: %d discs, recorded %d", ErrDiverged, len(got), len(rec.Final))
	}
	for i := range got {
		if got[i] != rec.Final[i] {
			return fmt.Errorf("%w: disc %d is %+v, recorded %+v", ErrDiverged, got[i].ID, got[i], rec.Final[i])
		}
	}
	return nil
}
