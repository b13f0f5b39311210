package models

/*
Artifact kinds, provenance tags, and job status values shared across the
codebase.
*/

// Artifact kinds
const (
	KindStudy = "study"
	KindBrief = "brief"
)

// Provenance tags written to the method field of results.
const (
	MethodModel             = "quen"
	MethodHeuristic         = "heuristic"
	MethodHeuristicThinking = "heuristic-thinking"
)

// Job status constants
const (
	JobStatusEnqueued  = "enqueued"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)

// ServiceTypeAugmentation labels usage rows produced by the augmenter.
const ServiceTypeAugmentation = "augmentation"
