package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShowCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    ShowCommand
		wantErr bool
	}{
		{in: "", want: ShowNormal},
		{in: "normal", want: ShowNormal},
		{in: "  Maximized ", want: ShowMaximized},
		{in: "hide", want: ShowHide},
		{in: "minnoactive", want: ShowMinNoActive},
		{in: "default", want: ShowDefault},
		{in: "fullscreen", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShowCommand(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid: default, hide, maximized")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShowNormalMatchesSWShowNormal(t *testing.T) {
	assert.Equal(t, ShowCommand(1), ShowNormal)
}
