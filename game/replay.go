package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Frame is one recorded step of a replay.
type Frame struct {
	Snapshot Snapshot `msgpack:"snapshot"`
	Events   []string `msgpack:"events"`
}

// Recorder writes frames as a stream of msgpack values.
type Recorder struct {
	enc    *msgpack.Encoder
	frames int
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{enc: msgpack.NewEncoder(w)}
}

// Record appends a frame built from a snapshot and the events of its step.
func (r *Recorder) Record(snapshot Snapshot, events []Event) error {
	frame := Frame{Snapshot: snapshot}
	for _, event := range events {
		frame.Events = append(frame.Events, event.String())
	}

	if err := r.enc.Encode(&frame); err != nil {
		return fmt.Errorf("encode replay frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

func (r *Recorder) Frames() int {
	return r.frames
}

// ReadReplay decodes every frame until the end of the stream. A stream that
// ends inside a frame is an error.
func ReadReplay(r io.Reader) ([]Frame, error) {
	br := bufio.NewReader(r)
	dec := msgpack.NewDecoder(br)

	var frames []Frame
	for {
		if _, err := br.Peek(1); errors.Is(err, io.EOF) {
			return frames, nil
		}

		var frame Frame
		if err := dec.Decode(&frame); err != nil {
			return frames, fmt.Errorf("decode replay frame %d: %w", len(frames), err)
		}
		frames = append(frames, frame)
	}
}
