// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSourceGroupSemantics(t *testing.T) {
	testCases := []struct {
		semanticsString   string
		shouldFail        bool
		expectedSemantics SourceGroupSemantics
	}{
		{ErrUnknownType.Error(), true, SourceGroupSemantics(0)},
		{"FID", false, SourceGroupSemanticsFID},
		{"SIM", false, SourceGroupSemanticsSIM},
		{"FEC", false, SourceGroupSemanticsFEC},
		{"FEC-FR", false, SourceGroupSemanticsFECFR},
		{"LS", false, SourceGroupSemanticsLS},
		{"SRF", false, SourceGroupSemanticsSRF},
		{"ANAT", false, SourceGroupSemanticsANAT},
		{"DDP", false, SourceGroupSemanticsDDP},
		{"BUNDLE", true, SourceGroupSemantics(0)},
	}

	for i, testCase := range testCases {
		actual, err := NewSourceGroupSemantics(testCase.semanticsString)
		if (err != nil) != testCase.shouldFail {
			t.Error(err)
		}
		assert.Equal(t,
			testCase.expectedSemantics,
			actual,
			"testCase: %d %v", i, testCase,
		)
		if !testCase.shouldFail {
			assert.Equal(t, testCase.semanticsString, actual.String())
		}
	}
}

func TestSource_Parameter(t *testing.T) {
	source := Source{
		SSRC: 959822806,
		Parameters: []SourceParameter{
			NewSourceParameter("cname", "dSc2HNsYuQ+Phbpe"),
			{Name: "label"},
			NewSourceParameter("msid", "mixedmslabel mixedlabelaudio0"),
			NewSourceParameter("msid", "second"),
		},
	}

	msid, ok := source.Parameter("msid")
	require.True(t, ok)
	require.NotNil(t, msid.Value)
	assert.Equal(t, "mixedmslabel mixedlabelaudio0", *msid.Value)

	label, ok := source.Parameter("label")
	require.True(t, ok)
	assert.Nil(t, label.Value)

	_, ok = source.Parameter("mslabel")
	assert.False(t, ok)

	assert.Equal(t, "", source.Owner())
	source.Info = &SourceInfo{Owner: "jvb"}
	assert.Equal(t, "jvb", source.Owner())
}

func TestSource_JSON(t *testing.T) {
	const raw = `{"ssrc":4173594801,"parameters":[{"name":"msid","value":"a31b53fe-audio-2 0215c3ee"},` +
		`{"name":"label"}],"info":{"owner":"room@conference.example.com/a31b53fe"}}`

	var source Source
	require.NoError(t, json.Unmarshal([]byte(raw), &source))
	assert.Equal(t, uint32(4173594801), source.SSRC)
	assert.Equal(t, "room@conference.example.com/a31b53fe", source.Owner())
	require.Len(t, source.Parameters, 2)
	assert.Nil(t, source.Parameters[1].Value)

	data, err := json.Marshal(source)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(data))

	var group SourceGroup
	require.NoError(t, json.Unmarshal([]byte(`{"semantics":"SIM","sources":[1,2,3]}`), &group))
	assert.Equal(t, SourceGroup{Semantics: SourceGroupSemanticsSIM, Sources: []uint32{1, 2, 3}}, group)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"semantics":"XYZ"}`), &group), errInvalidSourceGroupSemanticsString)
}
