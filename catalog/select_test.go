package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
		want     []string
		wantErr  string
	}{
		{name: "no patterns selects all", patterns: nil, want: builtinOrder},
		{name: "exact", patterns: []string{"Video"}, want: []string{"Video"}},
		{name: "prefix glob", patterns: []string{"Facebook*"}, want: []string{"FacebookContent", "FacebookLike"}},
		{name: "alternation keeps catalog order", patterns: []string{"{CMSPage,CMSBlock}"}, want: []string{"CMSBlock", "CMSPage"}},
		{name: "overlapping patterns do not duplicate", patterns: []string{"Recently*", "*Viewed"}, want: []string{"RecentlyViewed", "RecentlyCompared"}},
		{name: "character class", patterns: []string{"[AN]*"}, want: []string{"AddToCart", "NewProducts"}},
		{name: "unmatched pattern", patterns: []string{"Video", "Nope*"}, wantErr: `"Nope*" matched no components`},
		{name: "invalid pattern", patterns: []string{"[Video"}, wantErr: "invalid select pattern"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Builtin().Select(tt.patterns)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Names())
		})
	}
}

func TestSelect_KeepsMetadataAndSource(t *testing.T) {
	src := Builtin()
	src.Tier = "molecule"

	got, err := src.Select([]string{"Video"})
	require.NoError(t, err)
	assert.Equal(t, "molecule", got.Tier)
	assert.Equal(t, 16, src.Len(), "source catalog must not shrink")
}

func TestSelect_NilCatalog(t *testing.T) {
	var cat *Catalog

	got, err := cat.Select([]string{"Video"})
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = cat.Select(nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSelect_ResultIsIndependent(t *testing.T) {
	src := &Catalog{Components: []ComponentSpec{
		{Name: "Video", Props: []string{"src"}},
		{Name: "GoogleMaps"},
	}}

	got, err := src.Select([]string{"Video"})
	require.NoError(t, err)
	got.Components[0].Props[0] = "changed"

	assert.Equal(t, "src", src.Components[0].Props[0])
	assert.Equal(t, []string{"Video", "GoogleMaps"}, src.Names())
}
