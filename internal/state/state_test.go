package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePanel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Panel
		wantErr bool
	}{
		{name: "empty defaults to products", input: "", want: PanelProducts},
		{name: "products", input: "products", want: PanelProducts},
		{name: "users", input: "users", want: PanelUsers},
		{name: "invite", input: "invite", want: PanelInvite},
		{name: "unknown", input: "dashboard", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParsePanel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPanels_MutuallyExclusive(t *testing.T) {
	t.Parallel()

	panels := NewPanels()
	require.Equal(t, PanelProducts, panels.Visible())

	panels.Show(PanelUsers)
	assert.Equal(t, PanelUsers, panels.Visible())
	assert.True(t, panels.NavActive(PanelUsers))
	assert.False(t, panels.NavActive(PanelProducts))
	assert.False(t, panels.NavActive(PanelInvite))
}

func TestPanel_HasData(t *testing.T) {
	t.Parallel()

	assert.True(t, PanelProducts.HasData())
	assert.True(t, PanelUsers.HasData())
	assert.False(t, PanelAdd.HasData())
	assert.False(t, PanelImport.HasData())
	assert.False(t, PanelInvite.HasData())
}
