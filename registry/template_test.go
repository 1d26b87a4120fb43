package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplate_CoveredKeys(t *testing.T) {
	tmpl := NewTemplate(Leaf("x"), Leaf("y"), Nested("addr", NewTemplate(Leaf("city"))))

	assert.Equal(t, []string{"x", "y", "addr"}, tmpl.CoveredKeys())
}

func TestTemplate_NilCoveredKeys(t *testing.T) {
	var tmpl *Template
	assert.Nil(t, tmpl.CoveredKeys())
}
