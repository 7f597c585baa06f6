package stream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"guestchat/backend/internal/textnorm"
)

// ErrRemoteFailure is returned when the endpoint answers with success=false.
var ErrRemoteFailure = errors.New("remote reported failure")

type envelope struct {
	Success  *bool   `json:"success"`
	Response *string `json:"response"`
	Message  string  `json:"message"`
}

// ExtractWhole decodes a response body that was read in one piece.
//
// A well-formed {"success","response","message"} object is used directly.
// Anything else goes through the same envelope extraction as a stream, and if
// that yields nothing the raw body is returned as-is.
func ExtractWhole(body []byte) (string, error) {
	trimmed := bytes.TrimSpace(body)

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err == nil && env.Success != nil {
		if !*env.Success {
			msg := env.Message
			if msg == "" {
				msg = "no message"
			}
			return "", fmt.Errorf("%w: %s", ErrRemoteFailure, msg)
		}
		if env.Response != nil {
			return textnorm.Normalize(*env.Response), nil
		}
		return textnorm.Normalize(env.Message), nil
	}

	r := New(nil)
	r.Feed(string(trimmed))
	if text := r.Finish(); text != "" {
		return text, nil
	}
	return strings.TrimSpace(string(body)), nil
}
