package config

import (
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/afero"

	"github.com/QinLinag/omniponent_bintree/binaryTree"
	"github.com/QinLinag/omniponent_bintree/value"
)

const (
	EnvDeleteMode = "BINTREE_DELETE_MODE"
	EnvTraversal  = "BINTREE_TRAVERSAL"
	EnvIterative  = "BINTREE_ITERATIVE"
	EnvValueType  = "BINTREE_VALUE_TYPE"
)

var DEFAULT_ENV_FILES = []string{".env", ".env.bintree"}

type Config struct {
	//删除模式：relink 摘掉最深节点，legacy 只覆盖值
	DeleteMode string
	//display 没有指定遍历方式时使用的默认值
	Traversal string
	//深度优先遍历是否用显式栈
	Iterative bool
	//树中值的类型：int、float、string
	ValueType string
}

func Default() Config {
	return Config{
		DeleteMode: binaryTree.DeleteRelink.String(),
		Traversal:  binaryTree.LevelOrderKind.String(),
		Iterative:  false,
		ValueType:  string(value.Int),
	}
}

var once *sync.Once = &sync.Once{}

var config = Default()

func Init(con Config) {
	once.Do(func() {
		config = con
	})
}

func GetConfig() Config {
	return config
}

func (c Config) Validate() error {
	if _, err := binaryTree.ParseDeleteMode(c.DeleteMode); err != nil {
		return err
	}
	if _, err := binaryTree.ParseTraversalKind(c.Traversal); err != nil {
		return errors.Wrapf(err, "invalid traversal %q", c.Traversal)
	}
	if _, err := value.ParseType(c.ValueType); err != nil {
		return err
	}
	return nil
}

func (c Config) GetDeleteMode() binaryTree.DeleteMode {
	mode, _ := binaryTree.ParseDeleteMode(c.DeleteMode)
	return mode
}

func (c Config) GetTraversal() binaryTree.TraversalKind {
	kind, err := binaryTree.ParseTraversalKind(c.Traversal)
	if err != nil {
		return binaryTree.LevelOrderKind
	}
	return kind
}

// 用env中的BINTREE_*变量覆盖c
func (c Config) Apply(env map[string]string) (Config, error) {
	if v, ok := env[EnvDeleteMode]; ok {
		c.DeleteMode = v
	}
	if v, ok := env[EnvTraversal]; ok {
		c.Traversal = v
	}
	if v, ok := env[EnvIterative]; ok {
		iterative, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return c, errors.Wrapf(err, "invalid %s", EnvIterative)
		}
		c.Iterative = iterative
	}
	if v, ok := env[EnvValueType]; ok {
		c.ValueType = v
	}
	return c, c.Validate()
}

// 按顺序读取env文件，不存在的跳过；同一个变量以最后一个文件为准
func LoadFromFiles(fs afero.Fs, filepaths ...string) (map[string]string, error) {
	foundEnvFiles := lo.Filter(filepaths, func(filepath string, index int) bool {
		info, err := fs.Stat(filepath)
		return err == nil && !info.IsDir()
	})

	envMap := map[string]string{}
	for _, filepath := range foundEnvFiles {
		f, err := fs.Open(filepath)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", filepath)
		}
		values, err := godotenv.Parse(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", filepath)
		}
		for k, v := range values {
			envMap[k] = v
		}
	}
	return envMap, nil
}

// 默认值 < env文件 < 进程环境变量
func Load(fs afero.Fs, extraFiles ...string) (Config, error) {
	envMap, err := LoadFromFiles(fs, append(DEFAULT_ENV_FILES, extraFiles...)...)
	if err != nil {
		return Config{}, err
	}
	for _, key := range []string{EnvDeleteMode, EnvTraversal, EnvIterative, EnvValueType} {
		if v, ok := os.LookupEnv(key); ok {
			envMap[key] = v
		}
	}
	return Default().Apply(envMap)
}
