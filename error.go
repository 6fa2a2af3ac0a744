// Copyright 2026, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package lcparray

// Stage identifies a step of the pipeline.
type Stage int

const (
	StageSuffixArray Stage = iota + 1
	StageLCP
	StageEncode
)

func (s Stage) String() string {
	switch s {
	case StageSuffixArray:
		return "suffix array"
	case StageLCP:
		return "lcp"
	case StageEncode:
		return "encode"
	default:
		return "unknown stage"
	}
}

// Error reports the stage at which the pipeline failed.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string { return e.Stage.String() + " stage: " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
