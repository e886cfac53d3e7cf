package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"decora_festas/internal/usecase/interfaces"

	"github.com/gabriel-vasile/mimetype"
)

// MaxImageBytes is the fixed ceiling for inspiration images.
const MaxImageBytes = 5 << 20

var (
	ErrEmptyImage    = errors.New("empty image upload")
	ErrImageTooLarge = errors.New("image exceeds the 5 MB limit")
	ErrNotAnImage    = errors.New("file is not an image")
)

// IUploadUseCase validates and stores the optional inspiration image attached
// to a budget.

type IUploadUseCase interface {
	SaveInspirationImage(ctx context.Context, name string, data []byte) (string, error)
}

type UploadUseCase struct {
	store interfaces.IImageStore
}

var _ IUploadUseCase = (*UploadUseCase)(nil)

func NewUploadUseCase(store interfaces.IImageStore) *UploadUseCase {
	return &UploadUseCase{store: store}
}

// SaveInspirationImage rejects non-image content and oversized files before
// any store interaction. The content type is sniffed from the bytes; the file
// name and its extension are not trusted.
func (u *UploadUseCase) SaveInspirationImage(ctx context.Context, name string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}
	if mt := mimetype.Detect(data); !strings.HasPrefix(mt.String(), "image/") {
		log.Printf("[upload][usecase] rejected non-image name=%q detected=%s", name, mt.String())
		return "", ErrNotAnImage
	}

	ref, err := u.store.Save(ctx, name, data)
	if err != nil {
		log.Printf("[upload][usecase] store failed name=%q err=%v", name, err)
		return "", err
	}
	log.Printf("[upload][usecase] stored name=%q ref=%s size=%d", name, ref, len(data))
	return ref, nil
}
