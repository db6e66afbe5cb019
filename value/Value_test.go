package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Parse(t *testing.T) {
	i, err := Parse[int](" 42 ")
	require.NoError(t, err)
	require.Equal(t, 42, i)

	_, err = Parse[int]("4.2")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid value "4.2"`)

	_, err = Parse[int]("")
	require.Error(t, err)

	f, err := Parse[float64]("-1e3")
	require.NoError(t, err)
	require.Equal(t, -1000.0, f)

	s, err := Parse[string]("apple")
	require.NoError(t, err)
	require.Equal(t, "apple", s)

	s, err = Parse[string]("42")
	require.NoError(t, err)
	require.Equal(t, "42", s)

	// null 不能变成零值
	_, err = Parse[int]("null")
	require.Error(t, err)
	require.Contains(t, err.Error(), `invalid value "null"`)
	_, err = Parse[float64](" null ")
	require.Error(t, err)

	s, err = Parse[string]("null")
	require.NoError(t, err)
	require.Equal(t, "null", s)

	s, err = Parse[string](`"two words"`)
	require.NoError(t, err)
	require.Equal(t, "two words", s)
}

func Test_ParseList(t *testing.T) {
	values, err := ParseList[int]("1,2, 3\t4  5")
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 4, 5}, values)

	values, err = ParseList[int]("")
	require.NoError(t, err)
	require.Empty(t, values)

	_, err = ParseList[int]("1,null,3")
	require.Error(t, err)

	_, err = ParseList[int]("1,x,3")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"x"`)
}

func Test_Format(t *testing.T) {
	require.Equal(t, "7", Format(7))
	require.Equal(t, "2.5", Format(2.5))
	require.Equal(t, "pear", Format("pear"))
	require.Equal(t, []string{"1", "2"}, FormatList([]int{1, 2}))

	data, err := Encode([]int{1, 2, 4})
	require.NoError(t, err)
	require.Equal(t, "[1,2,4]", string(data))

	data, err = Encode[int](nil)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func Test_ParseType(t *testing.T) {
	typ, err := ParseType("")
	require.NoError(t, err)
	require.Equal(t, Int, typ)

	typ, err = ParseType("Float")
	require.NoError(t, err)
	require.Equal(t, Float, typ)

	_, err = ParseType("bool")
	require.Error(t, err)
}
