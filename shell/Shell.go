package shell

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/QinLinag/omniponent_bintree/binaryTree"
	"github.com/QinLinag/omniponent_bintree/config"
	"github.com/QinLinag/omniponent_bintree/value"
)

var ErrQuit = errors.New("quit")

// 询问display用哪种遍历，答案由会话校验
type Selector interface {
	SelectTraversal() (string, error)
}

type SelectorFunc func() (string, error)

func (f SelectorFunc) SelectTraversal() (string, error) {
	return f()
}

// 擦除了值类型的Session
type Runner interface {
	Exec(line string) error
	Run(r io.Reader) error
	SetPrompt(prompt string)
}

type command struct {
	name    string
	usage   string
	minArgs int
	run     func(args []string) error
}

// 一个会话持有一棵树，逐行执行命令
type Session[T constraints.Ordered] struct {
	tree     *binaryTree.Tree[T]
	out      io.Writer
	selector Selector
	kind     binaryTree.TraversalKind
	prompt   string
	commands []command
}

func NewSession[T constraints.Ordered](out io.Writer, con config.Config, selector Selector) *Session[T] {
	tree := binaryTree.NewTree[T]()
	tree.SetDeleteMode(con.GetDeleteMode())
	tree.SetIterative(con.Iterative)

	s := &Session[T]{
		tree:     tree,
		out:      out,
		selector: selector,
		kind:     con.GetTraversal(),
	}
	s.commands = []command{
		{"insert", "insert <value>...", 1, s.insert},
		{"left", "left <parent> <value>", 2, s.spliceLeft},
		{"right", "right <parent> <value>", 2, s.spliceRight},
		{"search", "search <value>", 1, s.search},
		{"delete", "delete <value>", 1, s.delete},
		{"size", "size", 0, s.size},
		{"height", "height", 0, s.height},
		{"deepest", "deepest", 0, s.deepest},
		{"max", "max", 0, s.max},
		{"display", "display [1|2|3|4|preorder|inorder|postorder|levelorder]", 0, s.display},
		{"json", "json [1|2|3|4|preorder|inorder|postorder|levelorder]", 0, s.json},
		{"clear", "clear", 0, s.clear},
		{"help", "help", 0, s.help},
		{"quit", "quit", 0, s.quit},
		{"exit", "exit", 0, s.quit},
	}
	return s
}

// 根据value.Type的名字选择会话的值类型
func NewForType(valueType string, out io.Writer, con config.Config, selector Selector) (Runner, error) {
	typ, err := value.ParseType(valueType)
	if err != nil {
		return nil, err
	}
	switch typ {
	case value.Float:
		return NewSession[float64](out, con, selector), nil
	case value.String:
		return NewSession[string](out, con, selector), nil
	}
	return NewSession[int](out, con, selector), nil
}

func (s *Session[T]) Tree() *binaryTree.Tree[T] {
	return s.tree
}

func (s *Session[T]) SetPrompt(prompt string) {
	s.prompt = prompt
}

// 执行一行命令，空行和#注释忽略
func (s *Session[T]) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	fields := strings.Fields(line)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	cmd, ok := lo.Find(s.commands, func(c command) bool {
		return c.name == name
	})
	if !ok {
		return errors.Errorf("unknown command %q, try help", name)
	}
	if len(args) < cmd.minArgs {
		return errors.Errorf("usage: %s", cmd.usage)
	}
	return cmd.run(args)
}

// 逐行执行直到EOF或quit，命令出错只输出错误，会话继续
func (s *Session[T]) Run(r io.Reader) error {
	log.Println("Shell session is starting...")
	start := time.Now()
	defer func() {
		log.Println("Shell session stopped, it lasted: ", time.Since(start))
	}()

	scanner := bufio.NewScanner(r)
	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		err := s.Exec(scanner.Text())
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(s.out, err)
		}
	}
	return errors.Wrap(scanner.Err(), "read commands")
}

func (s *Session[T]) parse(text string) (T, error) {
	return value.Parse[T](text)
}

// 参数可以用空白或逗号分隔
func (s *Session[T]) insert(args []string) error {
	values, err := value.ParseList[T](strings.Join(args, " "))
	if err != nil {
		return err
	}
	for _, v := range values {
		if s.tree.Insert(v) {
			fmt.Fprintf(s.out, "inserted %s\n", value.Format(v))
		} else {
			fmt.Fprintf(s.out, "%s already present\n", value.Format(v))
		}
	}
	return nil
}

func (s *Session[T]) spliceLeft(args []string) error {
	return s.splice(args, (*binaryTree.Node[T]).InsertLeft)
}

func (s *Session[T]) spliceRight(args []string) error {
	return s.splice(args, (*binaryTree.Node[T]).InsertRight)
}

func (s *Session[T]) splice(args []string, insert func(*binaryTree.Node[T], T) *binaryTree.Node[T]) error {
	parentValue, err := s.parse(args[0])
	if err != nil {
		return err
	}
	v, err := s.parse(args[1])
	if err != nil {
		return err
	}
	parent := s.tree.Find(parentValue)
	if parent == nil {
		return errors.Wrapf(binaryTree.ErrNotFound, "parent %s", value.Format(parentValue))
	}
	if s.tree.Search(v) {
		fmt.Fprintf(s.out, "%s already present\n", value.Format(v))
		return nil
	}
	insert(parent, v)
	fmt.Fprintf(s.out, "inserted %s under %s\n", value.Format(v), value.Format(parentValue))
	return nil
}

func (s *Session[T]) search(args []string) error {
	v, err := s.parse(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, s.tree.Search(v))
	return nil
}

func (s *Session[T]) delete(args []string) error {
	v, err := s.parse(args[0])
	if err != nil {
		return err
	}
	if err := s.tree.Delete(v); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "deleted %s\n", value.Format(v))
	return nil
}

func (s *Session[T]) size([]string) error {
	fmt.Fprintln(s.out, s.tree.Size())
	return nil
}

func (s *Session[T]) height([]string) error {
	fmt.Fprintln(s.out, s.tree.Height())
	return nil
}

func (s *Session[T]) deepest([]string) error {
	v, err := s.tree.DeepestNode()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, value.Format(v))
	return nil
}

func (s *Session[T]) max([]string) error {
	v, err := s.tree.MaxElement()
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, value.Format(v))
	return nil
}

func (s *Session[T]) display(args []string) error {
	kind, err := s.traversalKind(args)
	if err != nil {
		return err
	}
	return s.tree.Display(s.out, kind)
}

// 遍历结果输出为JSON数组，空树输出[]
func (s *Session[T]) json(args []string) error {
	kind, err := s.traversalKind(args)
	if err != nil {
		return err
	}
	values, err := s.tree.Traverse(kind)
	if err != nil {
		return err
	}
	data, err := value.Encode(values)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, string(data))
	return nil
}

func (s *Session[T]) traversalKind(args []string) (binaryTree.TraversalKind, error) {
	if len(args) > 0 {
		return binaryTree.ParseTraversalKind(args[0])
	}
	if s.selector == nil {
		return s.kind, nil
	}
	answer, err := s.selector.SelectTraversal()
	if err != nil {
		return 0, errors.Wrap(err, "select traversal")
	}
	return binaryTree.ParseTraversalKind(answer)
}

func (s *Session[T]) clear([]string) error {
	released := s.tree.Clear()
	log.Printf("Tree cleared, %d nodes released", released)
	fmt.Fprintf(s.out, "released %d nodes\n", released)
	return nil
}

func (s *Session[T]) help([]string) error {
	for _, c := range s.commands {
		fmt.Fprintln(s.out, "  "+c.usage)
	}
	return nil
}

func (s *Session[T]) quit([]string) error {
	return ErrQuit
}
