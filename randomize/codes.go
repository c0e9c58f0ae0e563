package randomize

import (
	"fmt"
	"strings"
)

// Method selects the randomization model.
type Method int

const (
	// MethodNone is the pass-through of the observed matrix.
	MethodNone Method = 0
	// MethodSwap is the marginal-preserving checkerboard swap.
	MethodSwap Method = 1
	// MethodSplotch is the contiguous-patch regrowth.
	MethodSplotch Method = 2
)

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	return m == MethodNone || m == MethodSwap || m == MethodSplotch
}

func (m Method) String() string {
	switch m {
	case MethodNone:
		return "none"
	case MethodSwap:
		return "swap"
	case MethodSplotch:
		return "splotch"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps "none", "swap" or "splotch" (any case) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return MethodNone, nil
	case "swap":
		return MethodSwap, nil
	case "splotch":
		return MethodSplotch, nil
	}
	return 0, fmt.Errorf("ParseMethod(%q): %w", s, ErrInvalidMethod)
}

// Stage is the pipeline position of a grid view or run.
type Stage int

const (
	StageGeneral   Stage = 0
	StageIntersect Stage = 10
	StageCompress  Stage = 20
	StageSwap      Stage = 31
	StageSplotch   Stage = 32
	StageCalculate Stage = 40
	StageComplete  Stage = 50
)

func (s Stage) String() string {
	switch s {
	case StageGeneral:
		return "general"
	case StageIntersect:
		return "intersect"
	case StageCompress:
		return "compress"
	case StageSwap:
		return "swap"
	case StageSplotch:
		return "splotch"
	case StageCalculate:
		return "calculate"
	case StageComplete:
		return "complete"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// Status is the outcome of the current stage.
type Status int

const (
	StatusGeneral   Status = 0
	StatusComputing Status = 120
	StatusComplete  Status = 300
	StatusError     Status = 1000
)

func (s Status) String() string {
	switch s {
	case StatusGeneral:
		return "general"
	case StatusComputing:
		return "computing"
	case StatusComplete:
		return "complete"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Error codes recorded on a failed run.
const (
	CodeNone            = 0
	CodeGeneral         = 8000
	CodeIntersect       = 8100
	CodeCompress        = 8200
	CodeCalculate       = 8300
	CodeSwap            = 8400
	CodeSwapTooFew      = 8410
	CodeSplotch         = 8500
	CodeSplotchNeighbor = 8510
)
