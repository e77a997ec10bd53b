// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"encoding/json"
	"fmt"

	"github.com/pion/ice/v4"
)

// Transport is an ICE-UDP transport (XEP-0176) with its DTLS fingerprint and
// the optional Colibri WebSocket of the bridge.
type Transport struct {
	UFrag       string       `json:"ufrag,omitempty"`
	Pwd         string       `json:"pwd,omitempty"`
	Candidates  []Candidate  `json:"candidates,omitempty"`
	Fingerprint *Fingerprint `json:"fingerprint,omitempty"`
	WebSocket   *WebSocket   `json:"webSocket,omitempty"`
}

// WebSocket carries the URL of the bridge's Colibri WebSocket.
type WebSocket struct {
	URL string `json:"url"`
}

// Candidate is an ICE-UDP transport candidate.
type Candidate struct {
	Foundation string            `json:"foundation"`
	Component  uint16            `json:"component"`
	Protocol   string            `json:"protocol"`
	Priority   uint32            `json:"priority"`
	IP         string            `json:"ip"`
	Port       uint16            `json:"port"`
	Type       ice.CandidateType `json:"type"`
	// RelAddr and RelPort are the related address and port of reflexive and
	// relayed candidates.
	RelAddr    string  `json:"relAddr,omitempty"`
	RelPort    *uint16 `json:"relPort,omitempty"`
	Generation uint8   `json:"generation"`
	Network    uint8   `json:"network"`
	ID         string  `json:"id,omitempty"`
}

// NewCandidateType parses the textual form of an ICE candidate type.
func NewCandidateType(raw string) (ice.CandidateType, error) {
	switch raw {
	case ice.CandidateTypeHost.String():
		return ice.CandidateTypeHost, nil
	case ice.CandidateTypeServerReflexive.String():
		return ice.CandidateTypeServerReflexive, nil
	case ice.CandidateTypePeerReflexive.String():
		return ice.CandidateTypePeerReflexive, nil
	case ice.CandidateTypeRelay.String():
		return ice.CandidateTypeRelay, nil
	default:
		return ice.CandidateTypeUnspecified, fmt.Errorf("%w: %s", errInvalidCandidateTypeString, raw)
	}
}

type candidateJSON Candidate

// MarshalJSON returns the JSON encoding, with the candidate type as text.
func (c Candidate) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		candidateJSON
		Type string `json:"type"`
	}{candidateJSON(c), c.Type.String()})
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (c *Candidate) UnmarshalJSON(b []byte) error {
	val := struct {
		*candidateJSON
		Type string `json:"type"`
	}{candidateJSON: (*candidateJSON)(c)}
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	typ, err := NewCandidateType(val.Type)
	if err != nil {
		return err
	}
	c.Type = typ

	return nil
}
