package domain

// PipelineState 流水线状态
type PipelineState string

const (
	StateIdle          PipelineState = "idle"
	StateEvaluating    PipelineState = "evaluating"
	StateSkipped       PipelineState = "skipped"
	StateContentEmpty  PipelineState = "content_empty"
	StateNoSubscribers PipelineState = "no_subscribers"
	StateDispatching   PipelineState = "dispatching"
	StateRecorded      PipelineState = "recorded"
	StateDone          PipelineState = "done"
)

// SkipReason 跳过发送的原因，跳过不是错误
type SkipReason string

const (
	SkipReasonNotDue        SkipReason = "not_due"
	SkipReasonNoContent     SkipReason = "no_content"
	SkipReasonNoSubscribers SkipReason = "no_subscribers"
	SkipReasonAlreadySent   SkipReason = "already_sent"
)
