// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"encoding/json"
	"fmt"
)

// Source is a synchronization source announced for an RTP description.
type Source struct {
	SSRC       uint32            `json:"ssrc"`
	Name       string            `json:"name,omitempty"`
	Parameters []SourceParameter `json:"parameters,omitempty"`
	Info       *SourceInfo       `json:"info,omitempty"`
}

// Parameter returns the first parameter with the given name.
func (s Source) Parameter(name string) (SourceParameter, bool) {
	for _, param := range s.Parameters {
		if param.Name == name {
			return param, true
		}
	}

	return SourceParameter{}, false
}

// Owner returns the owner recorded in the source info, or "".
func (s Source) Owner() string {
	if s.Info == nil {
		return ""
	}

	return s.Info.Owner
}

// SourceParameter is a source-specific attribute such as cname or msid. A nil
// Value marks an attribute without value.
type SourceParameter struct {
	Name  string  `json:"name"`
	Value *string `json:"value,omitempty"`
}

// NewSourceParameter creates a parameter carrying a value.
func NewSourceParameter(name, value string) SourceParameter {
	return SourceParameter{Name: name, Value: &value}
}

// SourceInfo is the Jitsi ssrc-info extension naming the endpoint which owns
// a source.
type SourceInfo struct {
	Owner string `json:"owner"`
}

// SourceGroupSemantics is the semantics of a source group (RFC 5576).
type SourceGroupSemantics int

const (
	// SourceGroupSemanticsFID is flow identification, e.g. a media source and its RTX repair flow.
	SourceGroupSemanticsFID SourceGroupSemantics = iota + 1
	// SourceGroupSemanticsSIM groups the layers of a simulcast stream.
	SourceGroupSemanticsSIM
	// SourceGroupSemanticsFEC groups a media source and its forward error correction flow.
	SourceGroupSemanticsFEC
	// SourceGroupSemanticsFECFR groups a media source and its flexfec repair flow.
	SourceGroupSemanticsFECFR
	// SourceGroupSemanticsLS is lip synchronization.
	SourceGroupSemanticsLS
	// SourceGroupSemanticsSRF is single reservation flow.
	SourceGroupSemanticsSRF
	// SourceGroupSemanticsANAT is alternative network address types.
	SourceGroupSemanticsANAT
	// SourceGroupSemanticsDDP is decoding dependency.
	SourceGroupSemanticsDDP
)

// This is done this way because of a linter.
const (
	sourceGroupSemanticsFIDStr   = "FID"
	sourceGroupSemanticsSIMStr   = "SIM"
	sourceGroupSemanticsFECStr   = "FEC"
	sourceGroupSemanticsFECFRStr = "FEC-FR"
	sourceGroupSemanticsLSStr    = "LS"
	sourceGroupSemanticsSRFStr   = "SRF"
	sourceGroupSemanticsANATStr  = "ANAT"
	sourceGroupSemanticsDDPStr   = "DDP"
)

// NewSourceGroupSemantics parses a source group semantics token.
func NewSourceGroupSemantics(raw string) (SourceGroupSemantics, error) {
	switch raw {
	case sourceGroupSemanticsFIDStr:
		return SourceGroupSemanticsFID, nil
	case sourceGroupSemanticsSIMStr:
		return SourceGroupSemanticsSIM, nil
	case sourceGroupSemanticsFECStr:
		return SourceGroupSemanticsFEC, nil
	case sourceGroupSemanticsFECFRStr:
		return SourceGroupSemanticsFECFR, nil
	case sourceGroupSemanticsLSStr:
		return SourceGroupSemanticsLS, nil
	case sourceGroupSemanticsSRFStr:
		return SourceGroupSemanticsSRF, nil
	case sourceGroupSemanticsANATStr:
		return SourceGroupSemanticsANAT, nil
	case sourceGroupSemanticsDDPStr:
		return SourceGroupSemanticsDDP, nil
	default:
		return SourceGroupSemantics(0), fmt.Errorf("%w: %s", errInvalidSourceGroupSemanticsString, raw)
	}
}

func (s SourceGroupSemantics) String() string {
	switch s {
	case SourceGroupSemanticsFID:
		return sourceGroupSemanticsFIDStr
	case SourceGroupSemanticsSIM:
		return sourceGroupSemanticsSIMStr
	case SourceGroupSemanticsFEC:
		return sourceGroupSemanticsFECStr
	case SourceGroupSemanticsFECFR:
		return sourceGroupSemanticsFECFRStr
	case SourceGroupSemanticsLS:
		return sourceGroupSemanticsLSStr
	case SourceGroupSemanticsSRF:
		return sourceGroupSemanticsSRFStr
	case SourceGroupSemanticsANAT:
		return sourceGroupSemanticsANATStr
	case SourceGroupSemanticsDDP:
		return sourceGroupSemanticsDDPStr
	default:
		return ErrUnknownType.Error()
	}
}

// UnmarshalJSON parses the JSON-encoded data and stores the result.
func (s *SourceGroupSemantics) UnmarshalJSON(b []byte) error {
	var val string
	if err := json.Unmarshal(b, &val); err != nil {
		return err
	}

	semantics, err := NewSourceGroupSemantics(val)
	if err != nil {
		return err
	}
	*s = semantics

	return nil
}

// MarshalJSON returns the JSON encoding.
func (s SourceGroupSemantics) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// SourceGroup ties several sources of one description together, e.g. the
// layers of a simulcast stream or a source and its retransmission flow.
type SourceGroup struct {
	Semantics SourceGroupSemantics `json:"semantics"`
	Sources   []uint32             `json:"sources"`
}
