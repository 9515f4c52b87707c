package domain

import "context"

// ContactRequest represents a contact form submission as received over HTTP.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Company string `json:"company"`
	Message string `json:"message" binding:"required"`
	Source  string `json:"source"`
}

// ContactSubmission is a validated, normalized submission. Fields are trimmed
// and Source is never empty. It is constructed once per request and not
// mutated afterwards.
type ContactSubmission struct {
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Company string
	Message string `validate:"required"`
	Source  string
}

// Sink statuses. Every submission yields exactly one status per sink.
const (
	SinkSkipped   = "skipped"
	SinkSucceeded = "succeeded"
	SinkFailed    = "failed"
)

// SinkResult is the outcome of a single sink attempt. ID is only set for the
// storage sink; Reason is only set on failure and is capped at 80 characters.
type SinkResult struct {
	Status string
	ID     string
	Reason string
}

func (r SinkResult) Succeeded() bool { return r.Status == SinkSucceeded }

// SubmissionReceipt aggregates the three sink outcomes for one submission.
// All three slots are always populated, regardless of individual failures.
type SubmissionReceipt struct {
	Storage SinkResult
	Email   SinkResult
	API     SinkResult
}

// ContactUsecase defines the contact fan-out operation. The returned error is
// non-nil only for validation problems; sink failures are reported inside the
// receipt and never abort the submission.
type ContactUsecase interface {
	Submit(ctx context.Context, req *ContactRequest) (*SubmissionReceipt, error)
}

// DocumentStore is the persistence collaborator. Implementations generate and
// return the id of the created record.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, record map[string]any) (string, error)
	ListCollections(ctx context.Context, limit int) ([]string, error)
}

// InquiryNotifier sends the email notification for a submission.
type InquiryNotifier interface {
	IsConfigured() bool
	SendInquiry(ctx context.Context, sub *ContactSubmission) error
}

// WorkspaceMirror mirrors a submission into an external workspace database.
type WorkspaceMirror interface {
	IsConfigured() bool
	CreatePage(ctx context.Context, sub *ContactSubmission) error
}
