package mimesource

import (
	"fmt"
)

type enumData struct {
	GoName  string
	Name    string
	Message string
}

// type Stage {{{

// Stage identifies the step at which reading a source failed.
type Stage uint8

const (
	// StageParse means the identifier itself was malformed.
	StageParse Stage = iota

	// StageConnect means the transport failed before a response arrived.
	StageConnect

	// StageStatus means an HTTP server answered with a non-2xx status.
	StageStatus

	// StageRead means the transport failed while the content was being
	// consumed, or the content was unacceptable.
	StageRead

	// StageNotFound means the file, ZooKeeper node, or etcd key does not
	// exist.
	StageNotFound
)

var stageData = []enumData{
	{"StageParse", "parse", "unable to parse source"},
	{"StageConnect", "connect", "request failed"},
	{"StageStatus", "status", "request returned an error status"},
	{"StageRead", "read", "error while reading response"},
	{"StageNotFound", "notFound", "not found"},
}

// String returns the short name of this stage.
func (stage Stage) String() string {
	if uint(stage) >= uint(len(stageData)) {
		return fmt.Sprintf("stage#%d", uint(stage))
	}
	return stageData[stage].Name
}

// GoString returns the Go constant name of this stage.
func (stage Stage) GoString() string {
	if uint(stage) >= uint(len(stageData)) {
		return fmt.Sprintf("mimesource.Stage(%d)", uint(stage))
	}
	return "mimesource." + stageData[stage].GoName
}

// Message returns a human-readable description of a failure at this stage.
func (stage Stage) Message() string {
	if uint(stage) >= uint(len(stageData)) {
		return "failed"
	}
	return stageData[stage].Message
}

var _ fmt.Stringer = Stage(0)
var _ fmt.GoStringer = Stage(0)

// }}}
