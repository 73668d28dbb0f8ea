package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidatorAuthor(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Struct(Author{Name: "Wells, H. G.", Lifespan: "1866-1946"}))
	require.NoError(t, v.Struct(Author{Name: "Weir, Andy", Lifespan: "1972-"}))

	require.Error(t, v.Struct(Author{Name: "", Lifespan: "1866-1946"}))
	require.Error(t, v.Struct(Author{Name: " , Given", Lifespan: "1866-1946"}))
	require.Error(t, v.Struct(Author{Name: "Wells, H. G.", Lifespan: "1866"}))
	require.Error(t, v.Struct(Author{Name: "Wells, H. G.", Lifespan: "c. 1866-1946"}))
}
