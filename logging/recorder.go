////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package logging

import (
	"io"

	"github.com/armon/circbuf"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// Recorder keeps the most recent jwalterweatherman output in a fixed-size
// in-memory circular buffer so a page can retrieve recent logs after the
// fact. There is no file system in the browser; this is the log file.
type Recorder struct {
	threshold jww.Threshold
	maxSize   int
	cb        *circbuf.Buffer
}

// NewRecorder returns a Recorder that retains at most maxSize bytes of log
// output at or above the given threshold. Register it with AddLogListener to
// start recording.
func NewRecorder(threshold jww.Threshold, maxSize int) (*Recorder, error) {
	cb, err := circbuf.NewBuffer(int64(maxSize))
	if err != nil {
		return nil, errors.Wrap(err, "could not create new circular buffer")
	}

	return &Recorder{
		threshold: threshold,
		maxSize:   maxSize,
		cb:        cb,
	}, nil
}

// Write adheres to the io.Writer interface and writes log entries to the
// buffer, discarding the oldest bytes once the buffer is full.
func (r *Recorder) Write(p []byte) (n int, err error) {
	return r.cb.Write(p)
}

// Listen adheres to the [jwalterweatherman.LogListener] type and returns the
// log writer when the threshold is within the set threshold limit.
func (r *Recorder) Listen(t jww.Threshold) io.Writer {
	if t < r.threshold {
		return nil
	}
	return r
}

// StopRecording stops log message writes. Once recording is stopped, it
// cannot be resumed.
func (r *Recorder) StopRecording() {
	r.threshold = jww.LevelFatal + 20
}

// GetLog returns the entire retained log.
func (r *Recorder) GetLog() []byte {
	return r.cb.Bytes()
}

// Threshold returns the log level threshold being recorded.
func (r *Recorder) Threshold() jww.Threshold {
	return r.threshold
}

// MaxSize returns the max size, in bytes, that the retained log is allowed
// to be.
func (r *Recorder) MaxSize() int {
	return r.maxSize
}

// Size returns the current size, in bytes, of the retained log.
func (r *Recorder) Size() int {
	return len(r.cb.Bytes())
}
