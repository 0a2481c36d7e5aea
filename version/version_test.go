package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfo_String(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "version only",
			info: Info{Version: "v1.2.3", Commit: "unknown", Date: "unknown"},
			want: "v1.2.3",
		},
		{
			name: "short commit is dropped",
			info: Info{Version: "v1.2.3", Commit: "abc", Date: "2025-01-01"},
			want: "v1.2.3",
		},
		{
			name: "commit without date",
			info: Info{Version: "v1.2.3", Commit: "0123456789abcdef", Date: "unknown"},
			want: "v1.2.3 (0123456)",
		},
		{
			name: "commit and date",
			info: Info{Version: "v1.2.3", Commit: "0123456789abcdef", Date: "2025-01-01T00:00:00Z"},
			want: "v1.2.3 (0123456, built 2025-01-01T00:00:00Z)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGetVersion_PrefersCompileTimeValue(t *testing.T) {
	saved := Version
	t.Cleanup(func() { Version = saved })

	Version = "v9.9.9"
	assert.Equal(t, "v9.9.9", GetVersion())
	assert.Contains(t, GetFullVersion(), "v9.9.9")
}

func TestPreferSet(t *testing.T) {
	assert.Equal(t, "abc123", preferSet("abc123", "vcs.revision"))
	assert.NotEmpty(t, preferSet("", "no.such.setting"))
	assert.Equal(t, "unknown", preferSet("unknown", "no.such.setting"))
}
