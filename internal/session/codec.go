package session

import (
	"encoding/json"
	"fmt"

	"github.com/m3rciful/barbot/internal/errs"
)

// Envelope is the persisted layout of a State: the variant tag plus its
// JSON payload.
type Envelope struct {
	Tag     Tag             `json:"tag"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Wrap builds the envelope of st.
func Wrap(st State) (Envelope, error) {
	if st == nil {
		st = Idle{}
	}
	env := Envelope{Tag: st.Tag()}
	if _, idle := st.(Idle); idle {
		return env, nil
	}
	payload, err := json.Marshal(st)
	if err != nil {
		return Envelope{}, errs.E(errs.Internal, "session.encode", err)
	}
	env.Payload = payload
	return env, nil
}

// Unwrap restores the State held by env.
func Unwrap(env Envelope) (State, error) {
	var (
		st  State
		err error
	)
	switch env.Tag {
	case TagIdle, "":
		return Idle{}, nil
	case TagAwaitingMainChoice:
		st, err = decodeAs[AwaitingMainChoice](env.Payload)
	case TagAwaitingFreeText:
		var v AwaitingFreeText
		if v, err = decodeAs[AwaitingFreeText](env.Payload); err == nil && !v.Intent.Valid() {
			err = fmt.Errorf("unknown intent %q", v.Intent)
		}
		st = v
	case TagViewingSettings:
		st, err = decodeAs[ViewingSettings](env.Payload)
	case TagAwaitingSettingsField:
		var v AwaitingSettingsField
		if v, err = decodeAs[AwaitingSettingsField](env.Payload); err == nil && !v.Field.Valid() {
			err = fmt.Errorf("unknown settings field %q", v.Field)
		}
		st = v
	case TagInGuessingGame:
		st, err = decodeAs[InGuessingGame](env.Payload)
	case TagAwaitingSuggestionText:
		st, err = decodeAs[AwaitingSuggestionText](env.Payload)
	default:
		err = fmt.Errorf("unknown state tag %q", env.Tag)
	}
	if err != nil {
		return nil, errs.E(errs.Storage, "session.decode", err)
	}
	return st, nil
}

// Encode serializes st into its envelope bytes.
func Encode(st State) ([]byte, error) {
	env, err := Wrap(st)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, errs.E(errs.Internal, "session.encode", err)
	}
	return data, nil
}

// Decode restores a State from Encode output.
func Decode(data []byte) (State, error) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, errs.E(errs.Storage, "session.decode", err)
	}
	return Unwrap(env)
}

func decodeAs[T any](payload json.RawMessage) (T, error) {
	var v T
	if len(payload) == 0 {
		return v, fmt.Errorf("empty payload")
	}
	err := json.Unmarshal(payload, &v)
	return v, err
}
