package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	"github.com/kelimeapp/vocab_api/dto"
	"github.com/kelimeapp/vocab_api/model"
	"github.com/kelimeapp/vocab_api/services/repositories"
	"github.com/kelimeapp/vocab_api/shared"
	log "github.com/sirupsen/logrus"
)

// VisitorService owns the anonymous identity lifecycle: get-or-create on
// first contact, last-seen refresh on every resolve, preference updates.
type VisitorService struct {
	context.DefaultService

	sqlSvc      *PostgresService
	visitorRepo *repositories.VisitorRepository

	defaults PreferencePair
}

const VISITOR_SVC = "visitor_svc"

func (svc VisitorService) Id() string {
	return VISITOR_SVC
}

func (svc *VisitorService) Configure(ctx *context.Context) error {
	svc.defaults = PreferencePair{
		SourceLanguageID: envLanguageID("DEFAULT_SOURCE_LANG_ID", shared.DefaultSourceLanguageID),
		TargetLanguageID: envLanguageID("DEFAULT_TARGET_LANG_ID", shared.DefaultTargetLanguageID),
	}
	return svc.DefaultService.Configure(ctx)
}

func (svc *VisitorService) Start() error {
	svc.sqlSvc = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.visitorRepo = repositories.NewVisitorRepository(svc.sqlSvc.Db())
	return nil
}

func envLanguageID(key string, fallback uint) uint {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil && n > 0 {
			return uint(n)
		}
	}
	return fallback
}

// InitVisitor resolves the supplied id to a visitor record, creating one when
// the id is absent or unknown. A known id only refreshes last-seen.
func (svc *VisitorService) InitVisitor(req dto.InitVisitorRequest) (*dto.InitVisitorResponse, error) {
	if req.VisitorID != "" {
		visitor, err := svc.visitorRepo.GetVisitor(req.VisitorID)
		if err == nil {
			if err := svc.visitorRepo.TouchLastSeen(visitor.ID); err != nil {
				log.WithError(err).WithField(shared.VisitorID, visitor.ID).Warn("Failed to refresh last seen")
			}
			return &dto.InitVisitorResponse{
				VisitorID:        visitor.ID,
				SourceLanguageID: visitor.SourceLanguageID,
				TargetLanguageID: visitor.TargetLanguageID,
				IsNew:            false,
			}, nil
		}
		if !repositories.IsNotFoundError(err) {
			return nil, shared.NewInternalError(err, "Failed to resolve visitor")
		}
		// Unknown id: fall through and issue a fresh one.
	}

	preferences := ResolvePreferences(
		PreferencePair{SourceLanguageID: req.SourceLanguageID, TargetLanguageID: req.TargetLanguageID},
		PreferencePair{},
		svc.defaults,
	)

	visitor := &model.Visitor{
		ID:               uuid.NewString(),
		SourceLanguageID: preferences.SourceLanguageID,
		TargetLanguageID: preferences.TargetLanguageID,
		Platform:         req.Platform,
		AppVersion:       req.AppVersion,
		Country:          req.Country,
	}

	if err := svc.visitorRepo.CreateVisitor(visitor); err != nil {
		// Two first contacts racing on the same generated id is as good as
		// impossible, but a duplicate insert means the row exists: re-read
		// and proceed instead of failing.
		if repositories.IsDuplicateKeyError(err) {
			existing, readErr := svc.visitorRepo.GetVisitor(visitor.ID)
			if readErr == nil {
				return &dto.InitVisitorResponse{
					VisitorID:        existing.ID,
					SourceLanguageID: existing.SourceLanguageID,
					TargetLanguageID: existing.TargetLanguageID,
					IsNew:            false,
				}, nil
			}
		}
		return nil, shared.NewInternalError(err, "Failed to create visitor")
	}

	log.WithField(shared.VisitorID, visitor.ID).WithField("platform", visitor.Platform).Info("Visitor provisioned")

	return &dto.InitVisitorResponse{
		VisitorID:        visitor.ID,
		SourceLanguageID: visitor.SourceLanguageID,
		TargetLanguageID: visitor.TargetLanguageID,
		IsNew:            true,
	}, nil
}

func (svc *VisitorService) GetVisitor(visitorID string) (*dto.VisitorResponse, error) {
	visitor, err := svc.visitorRepo.GetVisitor(visitorID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, shared.NewNotFoundError(err, "Visitor not found")
		}
		return nil, shared.NewInternalError(err, "Failed to get visitor")
	}

	if err := svc.visitorRepo.TouchLastSeen(visitor.ID); err != nil {
		log.WithError(err).WithField(shared.VisitorID, visitor.ID).Warn("Failed to refresh last seen")
	}

	return &dto.VisitorResponse{
		ID:               visitor.ID,
		SourceLanguageID: visitor.SourceLanguageID,
		TargetLanguageID: visitor.TargetLanguageID,
		Platform:         visitor.Platform,
		AppVersion:       visitor.AppVersion,
		Country:          visitor.Country,
		FirstSeenAt:      visitor.FirstSeenAt,
		LastSeenAt:       visitor.LastSeenAt,
	}, nil
}

// UpdatePreferences overwrites both language ids together. Partial updates
// are rejected before this point by DTO validation.
func (svc *VisitorService) UpdatePreferences(visitorID string, sourceLanguageID, targetLanguageID uint) error {
	rows, err := svc.visitorRepo.UpdatePreferences(visitorID, sourceLanguageID, targetLanguageID)
	if err != nil {
		return shared.NewInternalError(err, "Failed to update preferences")
	}
	if rows == 0 {
		return shared.NewNotFoundError(fmt.Errorf("visitor %s not found", visitorID), "Visitor not found")
	}
	return nil
}
