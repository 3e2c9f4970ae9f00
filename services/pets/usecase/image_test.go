package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutiepets/admin/internal/pkg/apperr"
	"github.com/cutiepets/admin/internal/pkg/models"
)

func TestPetUC_DeletePetImage_NotFound(t *testing.T) {
	uc, mockRepo, _ := setupPetUCTest(t)

	petID, imageID := uuid.New(), uuid.New()
	mockRepo.EXPECT().
		GetPetImage(gomock.Any(), petID, imageID).
		Return(nil, apperr.ErrNotFound)

	err := uc.DeletePetImage(context.Background(), petID, imageID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestPetUC_DeletePetImage_NonPrimary(t *testing.T) {
	uc, mockRepo, mockStore := setupPetUCTest(t)

	petID := uuid.New()
	now := time.Now()
	primary := models.Image{ID: uuid.New(), OwnerID: petID, URL: "/uploads/pets/x/a.jpg", IsPrimary: true, UploadedAt: now}
	target := models.Image{ID: uuid.New(), OwnerID: petID, URL: "/uploads/pets/x/b.jpg", UploadedAt: now.Add(time.Minute)}

	mockRepo.EXPECT().GetPetImage(gomock.Any(), petID, target.ID).Return(&target, nil)
	mockRepo.EXPECT().GetPetImages(gomock.Any(), petID).Return([]models.Image{primary, target}, nil)

	// No promotion when a non-primary image is removed
	mockRepo.EXPECT().DeletePetImage(gomock.Any(), petID, target.ID, gomock.Nil()).Return(nil)

	mockStore.EXPECT().Locator(target.URL).Return("pets/x/b.jpg")
	mockStore.EXPECT().Delete(gomock.Any(), "pets/x/b.jpg").Return(nil)

	require.NoError(t, uc.DeletePetImage(context.Background(), petID, target.ID))
}

func TestPetUC_DeletePetImage_PromotesEarliestRemaining(t *testing.T) {
	uc, mockRepo, mockStore := setupPetUCTest(t)

	petID := uuid.New()
	now := time.Now()
	target := models.Image{ID: uuid.New(), OwnerID: petID, URL: "/uploads/pets/x/a.jpg", IsPrimary: true, UploadedAt: now}
	middle := models.Image{ID: uuid.New(), OwnerID: petID, URL: "/uploads/pets/x/b.jpg", UploadedAt: now.Add(time.Minute)}
	last := models.Image{ID: uuid.New(), OwnerID: petID, URL: "/uploads/pets/x/c.jpg", UploadedAt: now.Add(2 * time.Minute)}

	mockRepo.EXPECT().GetPetImage(gomock.Any(), petID, target.ID).Return(&target, nil)
	mockRepo.EXPECT().GetPetImages(gomock.Any(), petID).Return([]models.Image{target, middle, last}, nil)

	mockRepo.EXPECT().
		DeletePetImage(gomock.Any(), petID, target.ID, gomock.Any()).
		DoAndReturn(func(ctx context.Context, pID, iID uuid.UUID, promoteID *uuid.UUID) error {
			require.NotNil(t, promoteID)
			assert.Equal(t, middle.ID, *promoteID)
			return nil
		})

	mockStore.EXPECT().Locator(target.URL).Return("pets/x/a.jpg")
	mockStore.EXPECT().Delete(gomock.Any(), "pets/x/a.jpg").Return(nil)

	require.NoError(t, uc.DeletePetImage(context.Background(), petID, target.ID))
}

func TestPetUC_DeletePetImage_LastImage(t *testing.T) {
	uc, mockRepo, mockStore := setupPetUCTest(t)

	petID := uuid.New()
	target := models.Image{ID: uuid.New(), OwnerID: petID, URL: "/uploads/pets/x/a.jpg", IsPrimary: true, UploadedAt: time.Now()}

	mockRepo.EXPECT().GetPetImage(gomock.Any(), petID, target.ID).Return(&target, nil)
	mockRepo.EXPECT().GetPetImages(gomock.Any(), petID).Return([]models.Image{target}, nil)
	mockRepo.EXPECT().DeletePetImage(gomock.Any(), petID, target.ID, gomock.Nil()).Return(nil)

	mockStore.EXPECT().Locator(target.URL).Return("pets/x/a.jpg")
	mockStore.EXPECT().Delete(gomock.Any(), "pets/x/a.jpg").Return(nil)

	require.NoError(t, uc.DeletePetImage(context.Background(), petID, target.ID))
}

func TestPetUC_DeletePetImage_BlobFailureIsNotFatal(t *testing.T) {
	uc, mockRepo, mockStore := setupPetUCTest(t)

	petID := uuid.New()
	target := models.Image{ID: uuid.New(), OwnerID: petID, URL: "/uploads/pets/x/a.jpg", UploadedAt: time.Now()}

	mockRepo.EXPECT().GetPetImage(gomock.Any(), petID, target.ID).Return(&target, nil)
	mockRepo.EXPECT().GetPetImages(gomock.Any(), petID).Return([]models.Image{target}, nil)
	mockRepo.EXPECT().DeletePetImage(gomock.Any(), petID, target.ID, gomock.Any()).Return(nil)

	mockStore.EXPECT().Locator(target.URL).Return("pets/x/a.jpg")
	mockStore.EXPECT().Delete(gomock.Any(), "pets/x/a.jpg").Return(errors.New("bucket unavailable"))

	// The row is gone; a failed blob delete only logs
	require.NoError(t, uc.DeletePetImage(context.Background(), petID, target.ID))
}
