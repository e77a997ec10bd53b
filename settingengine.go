// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"github.com/pion/logging"
)

// SettingEngine allows influencing behavior of the translator in ways that
// are not part of the Jingle or SDP documents themselves.
type SettingEngine struct {
	origin struct {
		set            bool
		SessionID      uint64
		SessionVersion uint64
	}
	LoggerFactory logging.LoggerFactory
}

// SetOrigin fixes the session id and version of the o= line of generated
// session descriptions. By default a random id and the current time are used.
func (e *SettingEngine) SetOrigin(sessionID, sessionVersion uint64) {
	e.origin.set = true
	e.origin.SessionID = sessionID
	e.origin.SessionVersion = sessionVersion
}
