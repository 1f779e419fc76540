package elefren

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pwoolcoc/elefren/entities"
	"github.com/pwoolcoc/elefren/internal/jsonutil"
)

// LineSource yields the successive lines of a streaming response. Both the
// chunked-HTTP and the WebSocket transports satisfy it: a WebSocket text
// message counts as one line. ReadLine blocks until a line is available and
// returns io.EOF once the source is exhausted.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

type readerLineSource struct {
	br *bufio.Reader
	c  io.Closer
}

// NewReaderLineSource adapts a buffered line reader, such as the body of a
// chunked streaming response, into a LineSource.
func NewReaderLineSource(rc io.ReadCloser) LineSource {
	return &readerLineSource{br: bufio.NewReader(rc), c: rc}
}

func (s *readerLineSource) ReadLine() (string, error) {
	line, err := s.br.ReadString('\n')
	if err != nil {
		// A final unterminated line is still a line.
		if errors.Is(err, io.EOF) && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (s *readerLineSource) Close() error {
	return s.c.Close()
}

// EventReader decodes the events of one streaming connection. Two framings
// are accepted, without the caller declaring which one is in use: explicit
// "event:"/"data:" lines, and a single-line JSON envelope with "event" and
// optional "payload" fields. The envelope form is tried only when no
// "event:" line has been seen in the current frame.
//
// An EventReader owns its line accumulator and must not be polled from two
// goroutines.
type EventReader struct {
	src   LineSource
	lines []string
	log   zerolog.Logger
}

// NewEventReader decodes events from src.
func NewEventReader(src LineSource) *EventReader {
	return &EventReader{src: src, log: zerolog.Nop()}
}

func newEventReader(src LineSource, log zerolog.Logger) *EventReader {
	return &EventReader{src: src, log: log}
}

// errIncompleteFrame means the accumulated lines do not yet form a frame and
// reading must continue.
var errIncompleteFrame = errors.New("incomplete frame")

// Next blocks until a full frame is decoded and returns its event.
//
// Keep-alive comments (lines starting with ':') and blank lines are skipped.
// Frame completion is attempted after every accumulated line, so a trailing
// frame needs no terminating blank line; a frame still waiting for its
// "data:" line when the source ends is dropped without error. Transient read
// errors are retried; io.EOF is returned once the source is exhausted.
//
// Structural failures — an unknown event name, an envelope missing its
// required payload, an undecodable payload — are returned as *Error values
// with the offending frame discarded; the reader stays usable and subsequent
// calls keep decoding.
func (r *EventReader) Next() (entities.Event, error) {
	for {
		line, err := r.src.ReadLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, io.EOF
			}
			r.log.Debug().Err(err).Msg("stream read error, retrying")
			continue
		}
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, ":") {
			continue
		}
		r.lines = append(r.lines, line)
		ev, err := r.makeEvent()
		if errors.Is(err, errIncompleteFrame) {
			continue
		}
		r.lines = nil
		if err != nil {
			return nil, err
		}
		r.log.Debug().Str("event", eventName(ev)).Msg("stream event")
		return ev, nil
	}
}

// Close closes the underlying source. A blocked Next call returns once the
// source reports the closure.
func (r *EventReader) Close() error {
	return r.src.Close()
}

// makeEvent tries to assemble an event from the accumulated lines. It
// returns errIncompleteFrame when more lines are needed.
func (r *EventReader) makeEvent() (entities.Event, error) {
	var name string
	var payload *string
	if eventLine, ok := findPrefixed(r.lines, "event:"); ok {
		name = strings.TrimSpace(eventLine[len("event:"):])
		if dataLine, ok := findPrefixed(r.lines, "data:"); ok {
			data := strings.TrimSpace(dataLine[len("data:"):])
			payload = &data
		} else if eventPayloadRequired(name) {
			// The event line arrived but its data line has not; keep
			// accumulating. Unknown events fall through so that they are
			// reported without waiting for data that may never come.
			return nil, errIncompleteFrame
		}
	} else {
		var envelope struct {
			Event   string  `json:"event"`
			Payload *string `json:"payload"`
		}
		if err := jsonutil.Unmarshal([]byte(r.lines[0]), &envelope); err != nil || envelope.Event == "" {
			return nil, errIncompleteFrame
		}
		name = envelope.Event
		payload = envelope.Payload
	}
	return buildEvent(name, payload)
}

// buildEvent maps an (event name, optional payload) pair onto an Event.
// The match on the event name is exact and case-sensitive.
func buildEvent(name string, payload *string) (entities.Event, error) {
	switch name {
	case "update":
		if payload == nil {
			return nil, newErrorf(ErrMissingPayload, "missing payload for update event")
		}
		var status entities.Status
		if err := jsonutil.Unmarshal([]byte(*payload), &status); err != nil {
			return nil, newError(ErrDecode, err)
		}
		return entities.UpdateEvent{Status: status}, nil
	case "notification":
		if payload == nil {
			return nil, newErrorf(ErrMissingPayload, "missing payload for notification event")
		}
		var notification entities.Notification
		if err := jsonutil.Unmarshal([]byte(*payload), &notification); err != nil {
			return nil, newError(ErrDecode, err)
		}
		return entities.NotificationEvent{Notification: notification}, nil
	case "delete":
		if payload == nil {
			return nil, newErrorf(ErrMissingPayload, "missing payload for delete event")
		}
		return entities.DeleteEvent{ID: *payload}, nil
	case "filters_changed":
		return entities.FiltersChangedEvent{}, nil
	default:
		return nil, newErrorf(ErrUnknownEvent, "unknown event %q", name)
	}
}

// eventPayloadRequired reports whether frames for the named event cannot
// complete without a data line.
func eventPayloadRequired(name string) bool {
	switch name {
	case "update", "notification", "delete":
		return true
	}
	return false
}

func findPrefixed(lines []string, prefix string) (string, bool) {
	for _, line := range lines {
		if strings.HasPrefix(line, prefix) {
			return line, true
		}
	}
	return "", false
}

func eventName(ev entities.Event) string {
	switch ev.(type) {
	case entities.UpdateEvent:
		return "update"
	case entities.NotificationEvent:
		return "notification"
	case entities.DeleteEvent:
		return "delete"
	case entities.FiltersChangedEvent:
		return "filters_changed"
	}
	return "unknown"
}
