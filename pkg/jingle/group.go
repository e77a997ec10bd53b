// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"encoding/json"
	"fmt"
)

// GroupSemantics is the semantics of a content group (RFC 5888).
type GroupSemantics int

const (
	// GroupSemanticsLS is lip synchronization.
	GroupSemanticsLS GroupSemantics = iota + 1
	// GroupSemanticsFID is flow identification.
	GroupSemanticsFID
	// GroupSemanticsSRF is single reservation flow.
	GroupSemanticsSRF
	// GroupSemanticsANAT is alternative network address types.
	GroupSemanticsANAT
	// GroupSemanticsFEC is forward error correction.
	GroupSemanticsFEC
	// GroupSemanticsDDP is decoding dependency.
	GroupSemanticsDDP
	// GroupSemanticsBundle multiplexes the grouped contents over one transport.
	GroupSemanticsBundle
)

// This is done this way because of a linter.
const (
	groupSemanticsLSStr     = "LS"
	groupSemanticsFIDStr    = "FID"
	groupSemanticsSRFStr    = "SRF"
	groupSemanticsANATStr   = "ANAT"
	groupSemanticsFECStr    = "FEC"
	groupSemanticsDDPStr    = "DDP"
	groupSemanticsBundleStr = "BUNDLE"
)

// NewGroupSemantics parses a group semantics token.
func NewGroupSemantics(raw string) (GroupSemantics, error) {
	switch raw {
	case groupSemanticsLSStr:
		return GroupSemanticsLS, nil
	case groupSemanticsFIDStr:
		return GroupSemanticsFID, nil
	case groupSemanticsSRFStr:
		return GroupSemanticsSRF, nil
	case groupSemanticsANATStr:
		return GroupSemanticsANAT, nil
	case groupSemanticsFECStr:
		return GroupSemanticsFEC, nil
	case groupSemanticsDDPStr:
		return GroupSemanticsDDP, nil
	case groupSemanticsBundleStr:
		return GroupSemanticsBundle, nil
	default:
		return GroupSemantics(0), fmt.Errorf("%w: %s", errInvalidGroupSemanticsString, raw)
	}
}

func (s GroupSemantics) String() string {
	switch s {
	case GroupSemanticsLS:
		return groupSemanticsLSStr
	case GroupSemanticsFID:
		return groupSemanticsFIDStr
	case GroupSemanticsSRF:
		return groupSemanticsSRFStr
	case GroupSemanticsANAT:
		return groupSemanticsANATStr
	case GroupSemanticsFEC:
		return groupSemanticsFECStr
	case GroupSemanticsDDP:
		return groupSemanticsDDPStr
	case GroupSemanticsBundle:
		return groupSemanticsBundleStr
	default:
		return ErrUnknownType.Error()
	}
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (s *GroupSemantics) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	semantics, err := NewGroupSemantics(val)
	if err != nil {
		return err
	}
	*s = semantics

	return nil
}

// MarshalJSON returns the JSON encoding.
func (s GroupSemantics) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Group groups contents of a session (XEP-0338), usually for BUNDLE.
type Group struct {
	Semantics GroupSemantics `json:"semantics"`
	Contents  []string       `json:"contents"`
}
