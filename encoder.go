// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jinglesdp

import (
	"strconv"
	"strings"

	"github.com/pion/jinglesdp/pkg/jingle"
	"github.com/pion/sdp/v3"
)

// SessionDescriptionFromJingle builds an SDP offer out of a Jingle session,
// typically a session-initiate. Each content is split into one media
// description per source group, so that every remote participant's stream
// gets its own transceiver on the receiving peer connection.
func (api *API) SessionDescriptionFromJingle(session *jingle.Session) (*sdp.SessionDescription, error) {
	if session == nil {
		return nil, invalidDocument(errNilSession)
	}

	for _, addr := range []string{session.Initiator, session.Responder} {
		if addr == "" {
			continue
		}
		if _, err := jingle.ParseJID(addr); err != nil {
			return nil, invalidIdentity(err)
		}
	}

	desc, err := api.newSessionDescription()
	if err != nil {
		return nil, err
	}

	mids := []string{}
	for i := range session.Contents {
		content := &session.Contents[i]
		if content.Description == nil {
			api.log.Debugf("Skipping content %s without RTP description", content.Name)

			continue
		}

		template, err := newMediaTemplate(content)
		if err != nil {
			return nil, invalidDocument(err)
		}

		groups := groupSources(content.Description)
		for _, group := range groups {
			mid := strconv.Itoa(len(mids))
			desc.WithMedia(template.newMediaDescription(mid, group))
			mids = append(mids, mid)
		}
		api.log.Tracef("Content %s produced %d media descriptions", content.Name, len(groups))
	}

	if session.Group != nil {
		desc.WithValueAttribute(sdp.AttrKeyGroup, groupValue(session.Group.Semantics, mids))
	}

	return desc, nil
}

func (api *API) newSessionDescription() (*sdp.SessionDescription, error) {
	desc, err := sdp.NewJSEPSessionDescription(false)
	if err != nil {
		return nil, err
	}

	if origin := api.settingEngine.origin; origin.set {
		desc.Origin.SessionID = origin.SessionID
		desc.Origin.SessionVersion = origin.SessionVersion
	}

	desc.WithValueAttribute(sdp.AttrKeyMsidSemantic, msidSemanticValue)

	return desc, nil
}

// groupValue renders a group attribute value, e.g. "BUNDLE 0 1 2".
func groupValue(semantics jingle.GroupSemantics, mids []string) string {
	return strings.Join(append([]string{semantics.String()}, mids...), " ")
}
