package cli

import (
	"strings"
	"testing"

	"github.com/matzehuels/rinkplot/pkg/render/layers"
	"github.com/matzehuels/rinkplot/pkg/rink"
)

func TestCatalogTable(t *testing.T) {
	groups := layers.Groups(rink.Shapes())
	out := catalogTable(groups)

	for _, want := range []string{"Marking", "center-red-line", "blue-line", "faceoff-circle", "crease", "end-boards"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog table missing %q", want)
		}
	}
}

func TestCatalogTableEmpty(t *testing.T) {
	out := catalogTable(nil)
	if !strings.Contains(out, "Layer") {
		t.Errorf("empty table should still render headers, got %q", out)
	}
}
