package icd

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSupportedVersion(t *testing.T) {
	for _, v := range Versions {
		require.True(t, SupportedVersion(v))
	}
	require.False(t, SupportedVersion(2007))
	require.False(t, SupportedVersion(0))
}

func TestRecordFailed(t *testing.T) {
	require.False(t, Record{Code: "A00"}.Failed())
	require.True(t, Record{Failure: &Failure{Status: 404, Reason: "Not Found"}}.Failed())
}
