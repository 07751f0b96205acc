package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/scaffold/errors"
)

func TestCheckCompatibility(t *testing.T) {
	tests := []struct {
		name       string
		schema     string
		requires   string
		version    string
		wantErr    bool
		incompat   bool
		invalidCat bool
	}{
		{name: "no constraints", version: "1.0.0"},
		{name: "current schema", schema: "1.0.0", version: "1.0.0"},
		{name: "newer minor schema", schema: "1.4.0", version: "1.0.0"},
		{name: "future major schema", schema: "2.0.0", version: "1.0.0", wantErr: true, incompat: true},
		{name: "garbage schema", schema: "one", version: "1.0.0", wantErr: true, invalidCat: true},
		{name: "requires satisfied", requires: ">= 1.2", version: "1.3.0"},
		{name: "requires with v prefix", requires: "^1.0", version: "v1.5.2"},
		{name: "requires unsatisfied", requires: ">= 2.0", version: "1.3.0", wantErr: true, incompat: true},
		{name: "invalid requires", requires: ">>> 1", version: "1.3.0", wantErr: true, invalidCat: true},
		{name: "dev build skips requires", requires: ">= 9.0", version: "dev"},
		{name: "untagged build skips requires", requires: ">= 9.0", version: ""},
		{name: "release with unparsable version", requires: ">= 1.0", version: "nightly-42", wantErr: true, incompat: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cat := &Catalog{SchemaVersion: tt.schema, Requires: tt.requires}
			err := cat.CheckCompatibility(tt.version)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.incompat, errors.Is(err, errors.ErrIncompatibleCatalog))
			assert.Equal(t, tt.invalidCat, errors.IsInvalidCatalog(err))
		})
	}
}

func TestCheckCompatibility_Builtin(t *testing.T) {
	assert.NoError(t, Builtin().CheckCompatibility("dev"))
	assert.NoError(t, Builtin().CheckCompatibility("1.0.0"))
}
