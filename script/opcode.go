package script

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type OPCODE byte

const (
	PUSH OPCODE = iota + 10
	POP
	PEEK
	EMPTY
)

var opNames = map[OPCODE]string{
	PUSH:  "push",
	POP:   "pop",
	PEEK:  "peek",
	EMPTY: "empty",
}

func (c OPCODE) String() string {
	if name, ok := opNames[c]; ok {
		return name
	}
	return "unknown"
}

func ParseOpcode(name string) (OPCODE, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for code, n := range opNames {
		if n == name {
			return code, nil
		}
	}
	return 0, errors.Errorf("unknown op code %q", name)
}

func (c OPCODE) MarshalYAML() (interface{}, error) {
	if _, ok := opNames[c]; !ok {
		return nil, errors.Errorf("unknown op code %d", c)
	}
	return c.String(), nil
}

func (c *OPCODE) UnmarshalYAML(value *yaml.Node) error {
	code, err := ParseOpcode(value.Value)
	if err != nil {
		return errors.Wrapf(err, "line %d", value.Line)
	}
	*c = code
	return nil
}

// Op 操作码
type Op struct {
	Code OPCODE `yaml:"op"`
	Data string `yaml:"data,omitempty"`
}

// Decode 解析 yaml 格式的操作序列
func Decode(b []byte) ([]Op, error) {
	ops := make([]Op, 0)
	if err := yaml.Unmarshal(b, &ops); err != nil {
		return nil, errors.Wrap(err, "decode ops")
	}
	return ops, nil
}

func Encode(ops []Op) ([]byte, error) {
	return yaml.Marshal(ops)
}
