// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

// RTPDescription is an RTP application description (XEP-0167) together with
// the sources and source groups announced for it (XEP-0339).
type RTPDescription struct {
	Media string `json:"media"`
	// SSRC is the primary synchronization source of the description, if any.
	SSRC             string            `json:"ssrc,omitempty"`
	PayloadTypes     []PayloadType     `json:"payloadTypes,omitempty"`
	HeaderExtensions []HeaderExtension `json:"headerExtensions,omitempty"`
	Sources          []Source          `json:"sources,omitempty"`
	SourceGroups     []SourceGroup     `json:"sourceGroups,omitempty"`
	RTCPMux          bool              `json:"rtcpMux,omitempty"`
}

// NewRTPDescription creates an empty description for the given media type.
func NewRTPDescription(media string) *RTPDescription {
	return &RTPDescription{Media: media}
}

// Source returns the source with the given SSRC.
func (d *RTPDescription) Source(ssrc uint32) (*Source, bool) {
	for i := range d.Sources {
		if d.Sources[i].SSRC == ssrc {
			return &d.Sources[i], true
		}
	}

	return nil, false
}

// PayloadType returns the payload type with the given id.
func (d *RTPDescription) PayloadType(id uint8) (*PayloadType, bool) {
	for i := range d.PayloadTypes {
		if d.PayloadTypes[i].ID == id {
			return &d.PayloadTypes[i], true
		}
	}

	return nil, false
}

// PayloadType is a codec offered for an RTP description.
type PayloadType struct {
	ID uint8 `json:"id"`
	// Name is required by the translation to SDP, "" means absent.
	Name string `json:"name,omitempty"`
	// ClockRate is required by the translation to SDP, 0 means absent.
	ClockRate uint32 `json:"clockrate,omitempty"`
	// Channels is the number of audio channels; 0 and 1 both mean one channel.
	Channels      uint8          `json:"channels,omitempty"`
	Parameters    []Parameter    `json:"parameters,omitempty"`
	RTCPFeedbacks []RTCPFeedback `json:"rtcpFeedbacks,omitempty"`
}

// ChannelCount returns the number of channels, defaulting to one.
func (p PayloadType) ChannelCount() uint8 {
	if p.Channels == 0 {
		return 1
	}

	return p.Channels
}

// Parameter is a codec format parameter. Name may be empty for formats
// which carry a bare value.
type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RTCPFeedback is an RTCP feedback message negotiated for a payload type
// (XEP-0293).
type RTCPFeedback struct {
	Type    string `json:"type"`
	Subtype string `json:"subtype,omitempty"`
}

// HeaderExtension is an RTP header extension (XEP-0294).
type HeaderExtension struct {
	ID  uint16 `json:"id"`
	URI string `json:"uri"`
}
