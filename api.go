// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package jinglesdp translates between Jingle sessions as sent by a
// conferencing focus and SDP session descriptions as consumed by WebRTC
// peer connections.
package jinglesdp

import (
	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/logging"
	"github.com/pion/sdp/v3"
)

// API bundles the translation functions together with their settings.
// The package level functions use a default API.
type API struct {
	settingEngine *SettingEngine
	log           logging.LeveledLogger
}

// NewAPI Creates a new API object for keeping semi-global settings of the translator.
func NewAPI(options ...func(*API)) *API {
	a := &API{}

	for _, o := range options {
		o(a)
	}

	if a.settingEngine == nil {
		a.settingEngine = &SettingEngine{}
	}

	if a.settingEngine.LoggerFactory == nil {
		a.settingEngine.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	a.log = a.settingEngine.LoggerFactory.NewLogger(loggerScope)

	return a
}

// WithSettingEngine allows providing a SettingEngine to the API.
// Settings should not be changed after passing the engine to an API.
func WithSettingEngine(s SettingEngine) func(a *API) {
	return func(a *API) {
		a.settingEngine = &s
	}
}

var defaultAPI = NewAPI() //nolint:gochecknoglobals

// SessionDescriptionFromJingle builds an SDP offer out of a Jingle session
// using the default API.
func SessionDescriptionFromJingle(session *jingle.Session) (*sdp.SessionDescription, error) {
	return defaultAPI.SessionDescriptionFromJingle(session)
}

// JingleFromSessionDescription builds a Jingle session out of an SDP answer
// using the default API.
func JingleFromSessionDescription(
	desc *sdp.SessionDescription,
	action jingle.Action,
	sessionID, initiator, responder string,
) (*jingle.Session, error) {
	return defaultAPI.JingleFromSessionDescription(desc, action, sessionID, initiator, responder)
}

// AddSourcesFromJingle appends the sources of a source-add to desc using the
// default API.
func AddSourcesFromJingle(desc *sdp.SessionDescription, delta *jingle.Session) error {
	return defaultAPI.AddSourcesFromJingle(desc, delta)
}

// RemoveSourcesFromJingle retires the sources of a source-remove from desc
// using the default API.
func RemoveSourcesFromJingle(desc *sdp.SessionDescription, delta *jingle.Session) error {
	return defaultAPI.RemoveSourcesFromJingle(desc, delta)
}
