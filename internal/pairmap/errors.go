package pairmap

import (
	"errors"
	"fmt"
)

// ErrNoPathFound reports that no source-to-target path exists within the
// optimal-path length bound at the minimum score threshold. Callers should
// retune thresholds; there is no retry inside the engine.
var ErrNoPathFound = errors.New("no path found between source and target")

// Stage identifies the reduction primitive that observed a broken graph.
type Stage string

const (
	StageReachable Stage = "reachable"
	StageCycle     Stage = "cycle"
	StageMain      Stage = "main"
	StageInitial   Stage = "initial"
)

// InvalidGraphError reports a subgraph reduction that lost found-path
// nodes. During pruning this indicates an engine defect rather than bad
// input: removable chunks can never disconnect the found path, so these
// errors are surfaced fatally instead of being recovered.
type InvalidGraphError struct {
	Stage Stage
}

func (e *InvalidGraphError) Error() string {
	return fmt.Sprintf("invalid graph: %s subgraph does not contain the found path", e.Stage)
}
