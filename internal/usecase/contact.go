package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mc-creative-backend/internal/domain"
	"mc-creative-backend/pkg/apperror"
	"mc-creative-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const (
	contactCollection = "contact"
	defaultSource     = "website"
	reasonLimit       = 80
)

type contactUsecase struct {
	store    domain.DocumentStore // nil when storage is unavailable
	notifier domain.InquiryNotifier
	mirror   domain.WorkspaceMirror
	validate *validator.Validate
}

// NewContactUsecase creates the contact fan-out usecase. The store may be nil;
// the storage sink then reports failure while the other sinks still run.
func NewContactUsecase(store domain.DocumentStore, notifier domain.InquiryNotifier, mirror domain.WorkspaceMirror, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		store:    store,
		notifier: notifier,
		mirror:   mirror,
		validate: validate,
	}
}

// Submit validates the request, then attempts the three sinks independently.
// A sink failure never aborts the other sinks or the submission; only a
// validation problem returns an error, and in that case no sink is attempted.
func (uc *contactUsecase) Submit(ctx context.Context, req *domain.ContactRequest) (*domain.SubmissionReceipt, error) {
	sub, err := uc.normalize(req)
	if err != nil {
		return nil, err
	}

	receipt := &domain.SubmissionReceipt{}
	receipt.Storage = attempt("storage", func() (string, error) {
		return uc.persist(ctx, sub)
	})
	receipt.Email = attemptOptional("email", uc.notifier.IsConfigured(), func() error {
		return uc.notifier.SendInquiry(ctx, sub)
	})
	receipt.API = attemptOptional("notion", uc.mirror.IsConfigured(), func() error {
		return uc.mirror.CreatePage(ctx, sub)
	})
	return receipt, nil
}

// normalize trims the request into an immutable submission and validates it.
func (uc *contactUsecase) normalize(req *domain.ContactRequest) (*domain.ContactSubmission, error) {
	sub := &domain.ContactSubmission{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Company: strings.TrimSpace(req.Company),
		Message: strings.TrimSpace(req.Message),
		Source:  strings.TrimSpace(req.Source),
	}
	if sub.Source == "" {
		sub.Source = defaultSource
	}
	if err := uc.validate.Struct(sub); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}
	return sub, nil
}

func (uc *contactUsecase) persist(ctx context.Context, sub *domain.ContactSubmission) (string, error) {
	if uc.store == nil {
		return "", errors.New("storage not initialized")
	}

	var company any
	if sub.Company != "" {
		company = sub.Company
	}
	record := map[string]any{
		"name":        sub.Name,
		"email":       sub.Email,
		"company":     company,
		"message":     sub.Message,
		"source":      sub.Source,
		"received_at": time.Now().UTC().Format(time.RFC3339),
	}
	return uc.store.CreateDocument(ctx, contactCollection, record)
}

// attempt runs one sink call, converting any error or panic into a failed
// result so the remaining sinks still run.
func attempt(name string, fn func() (string, error)) (result domain.SinkResult) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Log.Error("sink panicked", "sink", name, "panic", rec)
			result = failedResult(fmt.Errorf("%v", rec))
		}
	}()

	id, err := fn()
	if err != nil {
		logger.Log.Warn("sink failed", "sink", name, "error", err)
		return failedResult(err)
	}
	return domain.SinkResult{Status: domain.SinkSucceeded, ID: id}
}

// attemptOptional is attempt for sinks gated on configuration. Missing config,
// even partial, means skipped rather than failed.
func attemptOptional(name string, configured bool, fn func() error) domain.SinkResult {
	if !configured {
		return domain.SinkResult{Status: domain.SinkSkipped}
	}
	return attempt(name, func() (string, error) {
		return "", fn()
	})
}

func failedResult(err error) domain.SinkResult {
	return domain.SinkResult{Status: domain.SinkFailed, Reason: truncate(err.Error(), reasonLimit)}
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
