// SPDX-FileCopyrightText: 2026 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package jingle

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroupSemantics(t *testing.T) {
	testCases := []struct {
		semanticsString   string
		shouldFail        bool
		expectedSemantics GroupSemantics
	}{
		{ErrUnknownType.Error(), true, GroupSemantics(0)},
		{"LS", false, GroupSemanticsLS},
		{"FID", false, GroupSemanticsFID},
		{"SRF", false, GroupSemanticsSRF},
		{"ANAT", false, GroupSemanticsANAT},
		{"FEC", false, GroupSemanticsFEC},
		{"DDP", false, GroupSemanticsDDP},
		{"BUNDLE", false, GroupSemanticsBundle},
		{"bundle", true, GroupSemantics(0)},
	}

	for i, testCase := range testCases {
		actual, err := NewGroupSemantics(testCase.semanticsString)
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

func TestGroup_JSON(t *testing.T) {
	const raw = `{"semantics":"BUNDLE","contents":["audio","video"]}`

	var group Group
	require.NoError(t, json.Unmarshal([]byte(raw), &group))
	assert.Equal(t, Group{Semantics: GroupSemanticsBundle, Contents: []string{"audio", "video"}}, group)

	data, err := json.Marshal(group)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(data))
}
