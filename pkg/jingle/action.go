// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"encoding/json"
	"fmt"
)

// Action is the action attribute of a jingle element.
type Action int

const (
	// ActionUnknown is the enum's zero-value.
	ActionUnknown Action = iota

	// ActionContentAccept accepts a content-add action.
	ActionContentAccept
	// ActionContentAdd adds one or more new content definitions to the session.
	ActionContentAdd
	// ActionContentModify changes the senders of a content definition.
	ActionContentModify
	// ActionContentReject rejects a content-add action.
	ActionContentReject
	// ActionContentRemove removes one or more content definitions from the session.
	ActionContentRemove
	// ActionDescriptionInfo exchanges information about parameters for an application type.
	ActionDescriptionInfo
	// ActionSecurityInfo sends information related to establishment or maintenance of security preconditions.
	ActionSecurityInfo
	// ActionSessionAccept definitively accepts a session negotiation.
	ActionSessionAccept
	// ActionSessionInfo sends session-level information, such as a ping or a ringing message.
	ActionSessionInfo
	// ActionSessionInitiate requests negotiation of a new Jingle session.
	ActionSessionInitiate
	// ActionSessionTerminate ends an existing session.
	ActionSessionTerminate
	// ActionTransportAccept accepts a transport-replace action.
	ActionTransportAccept
	// ActionTransportInfo exchanges transport candidates.
	ActionTransportInfo
	// ActionTransportReject rejects a transport-replace action.
	ActionTransportReject
	// ActionTransportReplace redefines a transport method or replaces the parameters of a transport.
	ActionTransportReplace
	// ActionSourceAdd announces sources that joined a conference.
	ActionSourceAdd
	// ActionSourceRemove announces sources that left a conference.
	ActionSourceRemove
)

// This is done this way because of a linter.
const (
	actionContentAcceptStr    = "content-accept"
	actionContentAddStr       = "content-add"
	actionContentModifyStr    = "content-modify"
	actionContentRejectStr    = "content-reject"
	actionContentRemoveStr    = "content-remove"
	actionDescriptionInfoStr  = "description-info"
	actionSecurityInfoStr     = "security-info"
	actionSessionAcceptStr    = "session-accept"
	actionSessionInfoStr      = "session-info"
	actionSessionInitiateStr  = "session-initiate"
	actionSessionTerminateStr = "session-terminate"
	actionTransportAcceptStr  = "transport-accept"
	actionTransportInfoStr    = "transport-info"
	actionTransportRejectStr  = "transport-reject"
	actionTransportReplaceStr = "transport-replace"
	actionSourceAddStr        = "source-add"
	actionSourceRemoveStr     = "source-remove"
)

var actionStrings = map[Action]string{ //nolint:gochecknoglobals
	ActionContentAccept:    actionContentAcceptStr,
	ActionContentAdd:       actionContentAddStr,
	ActionContentModify:    actionContentModifyStr,
	ActionContentReject:    actionContentRejectStr,
	ActionContentRemove:    actionContentRemoveStr,
	ActionDescriptionInfo:  actionDescriptionInfoStr,
	ActionSecurityInfo:     actionSecurityInfoStr,
	ActionSessionAccept:    actionSessionAcceptStr,
	ActionSessionInfo:      actionSessionInfoStr,
	ActionSessionInitiate:  actionSessionInitiateStr,
	ActionSessionTerminate: actionSessionTerminateStr,
	ActionTransportAccept:  actionTransportAcceptStr,
	ActionTransportInfo:    actionTransportInfoStr,
	ActionTransportReject:  actionTransportRejectStr,
	ActionTransportReplace: actionTransportReplaceStr,
	ActionSourceAdd:        actionSourceAddStr,
	ActionSourceRemove:     actionSourceRemoveStr,
}

// NewAction parses the textual form of a jingle action.
func NewAction(raw string) (Action, error) {
	for action, str := range actionStrings {
		if str == raw {
			return action, nil
		}
	}

	return ActionUnknown, fmt.Errorf("%w: %s", errInvalidActionString, raw)
}

func (a Action) String() string {
	if str, ok := actionStrings[a]; ok {
		return str
	}

	return ErrUnknownType.Error()
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (a *Action) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	action, err := NewAction(val)
	if err != nil {
		return err
	}
	*a = action

	return nil
}

// MarshalJSON returns the JSON encoding.
func (a Action) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
