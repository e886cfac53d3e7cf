package usecase

import (
	"context"
	"errors"
	"testing"

	mock_interfaces "decora_festas/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, pngHeader)
	return data
}

func TestUploadUseCase_SaveInspirationImage(t *testing.T) {
	t.Run("empty upload", func(t *testing.T) {
		uc := NewUploadUseCase(nil)
		_, err := uc.SaveInspirationImage(context.Background(), "arch.png", nil)
		if !errors.Is(err, ErrEmptyImage) {
			t.Fatalf("expected ErrEmptyImage, got %v", err)
		}
	})

	t.Run("oversized upload", func(t *testing.T) {
		uc := NewUploadUseCase(nil)
		_, err := uc.SaveInspirationImage(context.Background(), "arch.png", pngBytes(MaxImageBytes+1))
		if !errors.Is(err, ErrImageTooLarge) {
			t.Fatalf("expected ErrImageTooLarge, got %v", err)
		}
	})

	t.Run("size at the limit is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewUploadUseCase(store)

		data := pngBytes(MaxImageBytes)
		store.EXPECT().Save(gomock.Any(), "arch.png", data).Return("uploads/abc_arch.png", nil)

		ref, err := uc.SaveInspirationImage(context.Background(), "arch.png", data)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ref != "uploads/abc_arch.png" {
			t.Fatalf("unexpected ref %q", ref)
		}
	})

	t.Run("non-image content is rejected by sniffing", func(t *testing.T) {
		uc := NewUploadUseCase(nil)
		_, err := uc.SaveInspirationImage(context.Background(), "malware.png", []byte("#!/bin/sh\necho hi\n"))
		if !errors.Is(err, ErrNotAnImage) {
			t.Fatalf("expected ErrNotAnImage, got %v", err)
		}
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIImageStore(ctrl)
		uc := NewUploadUseCase(store)

		store.EXPECT().Save(gomock.Any(), "arch.png", gomock.Any()).Return("", errors.New("disk full"))

		_, err := uc.SaveInspirationImage(context.Background(), "arch.png", pngBytes(64))
		if err == nil || err.Error() != "disk full" {
			t.Fatalf("expected disk error, got %v", err)
		}
	})
}
