package script

import (
	"github.com/pkg/errors"
	"github.com/treeforest/lifo/stack"
)

var ErrStepLimit = errors.New("step limit exceeded")

// Result 单个操作的执行结果
type Result struct {
	Op    Op
	Value string
	Ok    bool
}

// Engine 基于堆栈的脚本执行引擎
type Engine struct {
	Ops      []Op
	MaxSteps int // 最大运行次数，0 表示不限制
}

func (e *Engine) Run() ([]Result, error) {
	if e.MaxSteps > 0 && len(e.Ops) > e.MaxSteps {
		return nil, errors.WithStack(ErrStepLimit)
	}

	st := stack.New[string]() // 栈
	results := make([]Result, 0, len(e.Ops))

	for _, op := range e.Ops {
		r := Result{Op: op}

		switch op.Code {
		case PUSH:
			st.Push(op.Data)
			r.Ok = true
		case POP:
			r.Value, r.Ok = st.Pop()
		case PEEK:
			r.Value, r.Ok = st.Peek()
		case EMPTY:
			r.Ok = st.IsEmpty()
		default:
			return results, errors.Errorf("unknown op code %d", op.Code)
		}

		results = append(results, r)
	}

	return results, nil
}
