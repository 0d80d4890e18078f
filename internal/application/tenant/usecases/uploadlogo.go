package usecases

import (
	"bytes"
	"context"

	"github.com/lexdoc-ai/lexdoc/internal/application/intake"
	"github.com/lexdoc-ai/lexdoc/internal/application/session"
	"github.com/lexdoc-ai/lexdoc/internal/application/tenant/dto"
	"github.com/lexdoc-ai/lexdoc/internal/domain/shared/services"
	"github.com/lexdoc-ai/lexdoc/internal/domain/tenant"
	"github.com/lexdoc-ai/lexdoc/internal/shared/config"
	"github.com/lexdoc-ai/lexdoc/internal/shared/errors"
	"github.com/lexdoc-ai/lexdoc/internal/shared/logger"
)

const logoMaxMB = 5

var logoExtensions = []string{"png", "jpg", "jpeg", "svg", "webp"}

type UploadLogoCommand struct {
	Session *session.Context
	File    intake.UploadedFile
}

type UploadLogoUseCase struct {
	tenantRepo tenant.Repository
	storage    services.FileStorage
	policy     *intake.UploadPolicy
	logger     logger.Interface
}

func NewUploadLogoUseCase(tenantRepo tenant.Repository, storage services.FileStorage, logger logger.Interface) *UploadLogoUseCase {
	return &UploadLogoUseCase{
		tenantRepo: tenantRepo,
		storage:    storage,
		policy:     intake.NewUploadPolicy(config.WorkflowConfig{MaxUploadMB: logoMaxMB, AllowedExtensions: logoExtensions}),
		logger:     logger,
	}
}

func (uc *UploadLogoUseCase) Execute(ctx context.Context, cmd UploadLogoCommand) (*dto.TenantDTO, error) {
	if err := cmd.Session.RequireAdmin(); err != nil {
		return nil, err
	}
	contentType, err := uc.policy.Validate(cmd.File)
	if err != nil {
		return nil, err
	}

	t, err := loadTenant(ctx, uc.tenantRepo, cmd.Session.TenantCNPJ, uc.logger)
	if err != nil {
		return nil, err
	}

	stored, err := uc.storage.Upload(ctx, services.UploadInput{
		Key:         intake.StorageKey("logos", t.CNPJ(), cmd.File.FileName),
		FileName:    cmd.File.FileName,
		ContentType: contentType,
		Size:        int64(len(cmd.File.Data)),
		Body:        bytes.NewReader(cmd.File.Data),
	})
	if err != nil {
		uc.logger.Errorw("failed to upload logo", "cnpj", t.CNPJ(), "error", err)
		return nil, errors.NewUpstreamError("failed to store logo")
	}

	t.SetLogoURL(stored.URL)
	if err := saveTenant(ctx, uc.tenantRepo, t, uc.logger); err != nil {
		if rmErr := uc.storage.Remove(ctx, stored.Key); rmErr != nil {
			uc.logger.Warnw("failed to remove orphan logo", "key", stored.Key, "error", rmErr)
		}
		return nil, err
	}

	uc.logger.Infow("logo updated", "cnpj", t.CNPJ(), "key", stored.Key)
	return dto.ToTenantDTO(t), nil
}
