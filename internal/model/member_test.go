package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRank_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		raw      string
		expected Rank
	}{
		{raw: `3`, expected: 3},
		{raw: `"2"`, expected: 2},
		{raw: `2.5`, expected: 0},
		{raw: `"gold"`, expected: 0},
		{raw: `null`, expected: 0},
		{raw: `true`, expected: 0},
		{raw: `{}`, expected: 0},
		{raw: `-1`, expected: -1},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			var m Member
			require.NoError(t, json.Unmarshal([]byte(`{"name":"X","membershipLevel":`+tc.raw+`}`), &m))
			assert.Equal(t, tc.expected, m.MembershipLevel)
			assert.Equal(t, "X", m.Name)
		})
	}
}

func TestMembers_OneOddRankKeepsTheList(t *testing.T) {
	var members []Member
	raw := `[{"name":"Good Co","membershipLevel":3},{"name":"Odd Co","membershipLevel":"2.5"}]`
	require.NoError(t, json.Unmarshal([]byte(raw), &members))
	require.Len(t, members, 2)
	assert.Equal(t, Rank(3), members[0].MembershipLevel)
	assert.Equal(t, Rank(0), members[1].MembershipLevel)
}
