package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sassval/value"
)

func TestDump(t *testing.T) {
	m := mustMap(t,
		value.NewString("k", true), mustList(t, value.ListSeparatorComma, true,
			value.NewNumberWithUnits(2, []string{"px"}, []string{"s"}),
			value.Null,
		),
	)
	want := `map len=1
  entry
    string quoted=true
      text: "k"
    list separator=comma brackets=true len=2
      number value=2 units=px/s
      null
`
	require.Equal(t, want, value.Dump(m))

	slash := value.NewNumberWithUnit(8, "px").WithSlash(value.NewNumberWithUnit(16, "px"), value.NewNumber(2))
	want = `number value=8 units=px
  slash
    number value=16 units=px
    number value=2
`
	require.Equal(t, want, value.Dump(slash))

	c, err := value.RGBA(255, 0, 0, 0.5)
	require.NoError(t, err)
	want = `color css=rgba(255, 0, 0, 0.5)
  rgb 255 0 0
  hsl 0 100 50
  alpha 0.5
`
	require.Equal(t, want, value.Dump(c))

	require.Equal(t, "function\n  name: \"f\"\nboolean value=true\n",
		value.Dump(value.NewFunction("f"))+value.Dump(value.True))
}
