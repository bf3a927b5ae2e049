package planfile

import (
	"fmt"
	"strconv"
	"strings"
)

type refKind int

const (
	refInputIndex refKind = iota
	refInputLast
	refInputAll
	refChain
	refChainPad
)

type streamRef struct {
	kind  refKind
	name  string
	index int
}

func parseRef(raw string) (streamRef, error) {
	value := strings.TrimSpace(raw)
	scope, rest, ok := strings.Cut(value, ":")
	if !ok || rest == "" {
		return streamRef{}, fmt.Errorf("invalid stream reference %q", raw)
	}
	switch scope {
	case "input":
		switch rest {
		case "last":
			return streamRef{kind: refInputLast}, nil
		case "*":
			return streamRef{kind: refInputAll}, nil
		}
		index, err := strconv.Atoi(rest)
		if err != nil {
			return streamRef{}, fmt.Errorf("invalid input index in %q", raw)
		}
		return streamRef{kind: refInputIndex, index: index}, nil
	case "chain":
		name, pad, hasPad := strings.Cut(rest, ":")
		if name == "" {
			return streamRef{}, fmt.Errorf("missing chain name in %q", raw)
		}
		if !hasPad {
			return streamRef{kind: refChain, name: name}, nil
		}
		index, err := strconv.Atoi(pad)
		if err != nil || index < 0 {
			return streamRef{}, fmt.Errorf("invalid chain pad in %q", raw)
		}
		return streamRef{kind: refChainPad, name: name, index: index}, nil
	default:
		return streamRef{}, fmt.Errorf("unknown stream scope %q in %q", scope, raw)
	}
}
