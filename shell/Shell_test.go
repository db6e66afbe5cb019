package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/QinLinag/omniponent_bintree/binaryTree"
	"github.com/QinLinag/omniponent_bintree/config"
)

func run(t *testing.T, con config.Config, selector Selector, script string) string {
	out := &bytes.Buffer{}
	session := NewSession[int](out, con, selector)
	require.NoError(t, session.Run(strings.NewReader(script)))
	return out.String()
}

func TestSessionBuildAndDisplay(t *testing.T) {
	out := run(t, config.Default(), nil, `
# example tree
insert 1 2 3 4 5 6 7
insert 3
display 1
display inorder
display postorder
display
size
height
deepest
max
search 6
search 9
`)
	require.Equal(t, strings.Join([]string{
		"inserted 1", "inserted 2", "inserted 3", "inserted 4",
		"inserted 5", "inserted 6", "inserted 7",
		"3 already present",
		"[1 2 4 5 3 6 7]",
		"[4 2 5 1 6 3 7]",
		"[4 5 2 6 7 3 1]",
		"[1 2 3 4 5 6 7]",
		"7",
		"3",
		"7",
		"7",
		"true",
		"false",
	}, "\n")+"\n", out)
}

func TestSessionDelete(t *testing.T) {
	out := run(t, config.Default(), nil, "insert 1 2 3 4 5 6 7\ndelete 2\ndelete 2\nsize\ndisplay 4\n")
	require.Contains(t, out, "deleted 2\nElement not present in Tree!\n6\n[1 7 3 4 5 6]\n")

	legacy := config.Default()
	legacy.DeleteMode = "legacy"
	out = run(t, legacy, nil, "insert 1 2 3 4 5 6 7\ndelete 2\nsize\ndisplay 4\n")
	require.Contains(t, out, "deleted 2\n7\n[1 7 3 4 5 6 7]\n")
}

func TestSessionEmptyTree(t *testing.T) {
	out := run(t, config.Default(), nil, "size\nheight\ndeepest\nmax\ndisplay\nsearch 1\n")
	require.Equal(t, "0\n0\nTree is empty\nTree is empty\nTree is empty\nfalse\n", out)
}

func TestSessionSelector(t *testing.T) {
	answers := []string{"2", "9", "levelorder"}
	selector := SelectorFunc(func() (string, error) {
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	})
	out := run(t, config.Default(), selector, "insert 1 2 3\ndisplay\ndisplay\ndisplay\n")
	require.Equal(t, "inserted 1\ninserted 2\ninserted 3\n[2 1 3]\nchoose a valid option from 1,2,3,4\n[1 2 3]\n", out)

	failing := SelectorFunc(func() (string, error) {
		return "", errors.New("interrupt")
	})
	out = run(t, config.Default(), failing, "insert 1\ndisplay\n")
	require.Contains(t, out, "select traversal: interrupt")
}

func TestSessionSplice(t *testing.T) {
	out := &bytes.Buffer{}
	session := NewSession[int](out, config.Default(), nil)
	require.NoError(t, session.Exec("insert 1 2 3"))
	require.NoError(t, session.Exec("left 1 9"))
	require.NoError(t, session.Exec("right 1 8"))
	require.NoError(t, session.Exec("left 1 2"))
	require.Equal(t, []int{1, 9, 2, 8, 3}, binaryTree.PreOrder(session.Tree().Root()))

	err := session.Exec("left 42 5")
	require.ErrorIs(t, err, binaryTree.ErrNotFound)
	require.Contains(t, err.Error(), "parent 42")
	require.Contains(t, out.String(), "2 already present")
}

func TestSessionErrors(t *testing.T) {
	session := NewSession[int](&bytes.Buffer{}, config.Default(), nil)
	require.Error(t, session.Exec("grow 1"))
	require.Error(t, session.Exec("insert"))
	require.Error(t, session.Exec("insert x"))
	require.ErrorIs(t, session.Exec("display 7"), binaryTree.ErrInvalidTraversal)
	require.ErrorIs(t, session.Exec("quit"), ErrQuit)
	require.NoError(t, session.Exec("   "))
	require.NoError(t, session.Exec("# comment"))

	// quit 之后的命令不会执行
	out := run(t, config.Default(), nil, "insert 1\nquit\ninsert 2\n")
	require.Equal(t, "inserted 1\n", out)
}

func TestSessionClearAndHelp(t *testing.T) {
	out := run(t, config.Default(), nil, "insert 1 2 3\nclear\nsize\n")
	require.Contains(t, out, "released 3 nodes\n0\n")

	out = run(t, config.Default(), nil, "help\n")
	require.Contains(t, out, "insert <value>...")
	require.Contains(t, out, "delete <value>")
}

func TestNewForType(t *testing.T) {
	out := &bytes.Buffer{}
	runner, err := NewForType("string", out, config.Default(), nil)
	require.NoError(t, err)
	require.NoError(t, runner.Run(strings.NewReader("insert kiwi pear apple\nmax\ndisplay inorder\n")))
	require.Contains(t, out.String(), "pear\n[pear kiwi apple]\n")

	out.Reset()
	runner, err = NewForType("float", out, config.Default(), nil)
	require.NoError(t, err)
	runner.SetPrompt("> ")
	require.NoError(t, runner.Run(strings.NewReader("insert -1.5 2.25\nmax\n")))
	require.Equal(t, "> inserted -1.5\ninserted 2.25\n> 2.25\n> ", out.String())

	_, err = NewForType("bool", out, config.Default(), nil)
	require.Error(t, err)
}

func TestSessionNullValue(t *testing.T) {
	out := run(t, config.Default(), nil, "insert null 5\ndisplay 4\nsearch null\nsize\n")
	require.Equal(t, "invalid value \"null\"\nTree is empty\ninvalid value \"null\"\n0\n", out)

	words := &bytes.Buffer{}
	session := NewSession[string](words, config.Default(), nil)
	require.NoError(t, session.Run(strings.NewReader("insert null\nsize\ndisplay 4\n")))
	require.Equal(t, "inserted null\n1\n[null]\n", words.String())
}

func TestSessionInsertList(t *testing.T) {
	out := run(t, config.Default(), nil, "insert 1,2 3\ninsert 4,5,\ndisplay 4\n")
	require.Equal(t, "inserted 1\ninserted 2\ninserted 3\ninserted 4\ninserted 5\n[1 2 3 4 5]\n", out)

	// 有一个值非法时整条命令都不插入
	out = run(t, config.Default(), nil, "insert 1,x,3\nsize\n")
	require.Equal(t, "invalid value \"x\": invalid character 'x' looking for beginning of value\n0\n", out)
}

func TestSessionJSON(t *testing.T) {
	out := run(t, config.Default(), nil, "json\ninsert 1 2 3 4 5 6 7\njson 1\njson inorder\njson 9\n")
	require.Equal(t, "[]\ninserted 1\ninserted 2\ninserted 3\ninserted 4\ninserted 5\ninserted 6\ninserted 7\n"+
		"[1,2,4,5,3,6,7]\n[4,2,5,1,6,3,7]\nchoose a valid option from 1,2,3,4\n", out)

	words := &bytes.Buffer{}
	session := NewSession[string](words, config.Default(), nil)
	require.NoError(t, session.Exec("insert b a c"))
	require.NoError(t, session.Exec("json 4"))
	require.Contains(t, words.String(), `["b","a","c"]`)
}
