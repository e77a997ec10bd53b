// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

// Session is a jingle element: one negotiation step of a session.
type Session struct {
	Action    Action    `json:"action"`
	SessionID string    `json:"sid"`
	Initiator string    `json:"initiator,omitempty"`
	Responder string    `json:"responder,omitempty"`
	Contents  []Content `json:"contents,omitempty"`
	Group     *Group    `json:"group,omitempty"`
}

// NewSession creates an empty session for the given action.
func NewSession(action Action, sessionID string) *Session {
	return &Session{
		Action:    action,
		SessionID: sessionID,
	}
}

// Content returns the content with the given name.
func (s *Session) Content(name string) (*Content, bool) {
	for i := range s.Contents {
		if s.Contents[i].Name == name {
			return &s.Contents[i], true
		}
	}

	return nil, false
}
