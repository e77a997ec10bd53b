// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"encoding/json"
	"fmt"
)

// Creator is the party which originally generated a content definition.
type Creator int

const (
	// CreatorInitiator indicates the content was created by the session initiator.
	CreatorInitiator Creator = iota + 1

	// CreatorResponder indicates the content was created by the session responder.
	CreatorResponder
)

// This is done this way because of a linter.
const (
	creatorInitiatorStr = "initiator"
	creatorResponderStr = "responder"
)

// NewCreator parses the textual form of a content creator.
func NewCreator(raw string) (Creator, error) {
	switch raw {
	case creatorInitiatorStr:
		return CreatorInitiator, nil
	case creatorResponderStr:
		return CreatorResponder, nil
	default:
		return Creator(0), fmt.Errorf("%w: %s", errInvalidCreatorString, raw)
	}
}

func (c Creator) String() string {
	switch c {
	case CreatorInitiator:
		return creatorInitiatorStr
	case CreatorResponder:
		return creatorResponderStr
	default:
		return ErrUnknownType.Error()
	}
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (c *Creator) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	creator, err := NewCreator(val)
	if err != nil {
		return err
	}
	*c = creator

	return nil
}

// MarshalJSON returns the JSON encoding.
func (c Creator) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// Senders names the parties which send media for a content.
type Senders int

const (
	// SendersBoth indicates both parties send media. This is the default.
	SendersBoth Senders = iota + 1

	// SendersInitiator indicates only the session initiator sends media.
	SendersInitiator

	// SendersResponder indicates only the session responder sends media.
	SendersResponder

	// SendersNone indicates no party sends media.
	SendersNone
)

// This is done this way because of a linter.
const (
	sendersBothStr      = "both"
	sendersInitiatorStr = "initiator"
	sendersResponderStr = "responder"
	sendersNoneStr      = "none"
)

// NewSenders parses the textual form of a senders attribute.
func NewSenders(raw string) (Senders, error) {
	switch raw {
	case sendersBothStr:
		return SendersBoth, nil
	case sendersInitiatorStr:
		return SendersInitiator, nil
	case sendersResponderStr:
		return SendersResponder, nil
	case sendersNoneStr:
		return SendersNone, nil
	default:
		return Senders(0), fmt.Errorf("%w: %s", errInvalidSendersString, raw)
	}
}

func (s Senders) String() string {
	switch s {
	case SendersBoth:
		return sendersBothStr
	case SendersInitiator:
		return sendersInitiatorStr
	case SendersResponder:
		return sendersResponderStr
	case SendersNone:
		return sendersNoneStr
	default:
		return ErrUnknownType.Error()
	}
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (s *Senders) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	senders, err := NewSenders(val)
	if err != nil {
		return err
	}
	*s = senders

	return nil
}

// MarshalJSON returns the JSON encoding.
func (s Senders) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Content is one negotiated media content of a session; for RTP sessions its
// name doubles as the media type ("audio", "video").
type Content struct {
	Creator     Creator         `json:"creator"`
	Name        string          `json:"name"`
	Senders     Senders         `json:"senders"`
	Description *RTPDescription `json:"description,omitempty"`
	Transport   *Transport      `json:"transport,omitempty"`
}

// NewContent creates a content sending in both directions.
func NewContent(creator Creator, name string) Content {
	return Content{
		Creator: creator,
		Name:    name,
		Senders: SendersBoth,
	}
}
