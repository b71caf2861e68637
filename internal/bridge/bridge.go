// Package bridge exposes the session engine to an external presentation
// layer as named actions over line-delimited JSON: one request object per
// line on the way in, one response envelope per line on the way out.
package bridge

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"pomoglass/internal/engine"
	"pomoglass/internal/telemetry"
)

// Handler maps request payloads onto engine commands.
type Handler struct {
	engine Engine
	logger *telemetry.Logger
}

func NewHandler(e Engine, logger *telemetry.Logger) *Handler {
	return &Handler{engine: e, logger: logger}
}

// Handle executes one action. Unknown actions come back as a structured
// error; nothing here is fatal.
func (h *Handler) Handle(payload map[string]any) Response {
	action, _ := payload["action"].(string)

	switch action {
	case "start_pomodoro", "start_timer":
		h.engine.Start(overridesFrom(payload))
		return h.stateResponse()
	case "pause_pomodoro", "pause_timer":
		h.engine.Pause()
		return h.stateResponse()
	case "reset_pomodoro", "reset_timer":
		h.engine.Reset()
		return h.stateResponse()
	case "set_preset":
		name, _ := payload["preset"].(string)
		h.engine.ApplyPreset(name)
		return h.stateResponse()
	case "update_durations":
		h.engine.UpdateDurations(overridesFrom(payload))
		return h.stateResponse()
	case "get_current_state", "get_state":
		return h.stateResponse()
	case "get_stats", "read_stats":
		daily := h.engine.Stats()
		return Response{OK: true, Stats: &daily}
	}

	h.logger.Error("unknown action", map[string]any{"action": action})
	return Response{OK: false, Error: fmt.Sprintf("Unknown action: %s", action)}
}

// Serve reads request lines until EOF or context cancellation. Malformed
// JSON earns an error response and the loop keeps going. Lines carry no
// length cap; a request is only bounded by what fits in memory.
func (h *Handler) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, readErr := in.ReadBytes('\n')
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			var payload map[string]any
			resp := Response{OK: false, Error: "Invalid JSON payload"}
			if err := json.Unmarshal(trimmed, &payload); err == nil {
				resp = h.Handle(payload)
			}

			raw, err := json.Marshal(resp)
			if err != nil {
				return fmt.Errorf("marshal response: %w", err)
			}
			if _, err := out.Write(append(raw, '\n')); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
			if err := out.Flush(); err != nil {
				return fmt.Errorf("flush response: %w", err)
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("read request: %w", readErr)
		}
	}
}

func (h *Handler) stateResponse() Response {
	return Response{OK: true, State: statePayload(h.engine.State())}
}

func overridesFrom(payload map[string]any) engine.Overrides {
	return engine.Overrides{
		WorkMinutes:      maybeInt(payload["work_minutes"]),
		BreakMinutes:     maybeInt(payload["break_minutes"]),
		LongBreakMinutes: maybeInt(payload["long_break"]),
		Interval:         maybeInt(payload["interval"]),
	}
}

// maybeInt coerces a JSON value to an int the lenient way: numbers are
// truncated, numeric strings parsed, everything else treated as absent.
func maybeInt(v any) int {
	switch value := v.(type) {
	case float64:
		return int(value)
	case string:
		n, err := strconv.Atoi(value)
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
