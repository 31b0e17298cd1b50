package services

import (
	"context"
	"mime/multipart"
	"strconv"

	"github.com/kendall-kelly/tailorshop-api/models"
	"github.com/kendall-kelly/tailorshop-api/repository"
	"github.com/kendall-kelly/tailorshop-api/utils"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ImageService keeps fabric images and order photos in the BlobStore and
// their keys in the database.
type ImageService struct {
	repo  *repository.Repository
	store BlobStore
	log   *zap.Logger
}

func NewImageService(repo *repository.Repository, store BlobStore, log *zap.Logger) *ImageService {
	return &ImageService{repo: repo, store: store, log: log.Named("image")}
}

// UploadFabricImage validates and stores the image, then points the fabric at
// it. A previous image is removed from storage afterwards.
func (s *ImageService) UploadFabricImage(ctx context.Context, fabricID uint, fileHeader *multipart.FileHeader) (*models.Fabric, error) {
	contentType, err := utils.ValidateImageFile(fileHeader)
	if err != nil {
		return nil, err
	}

	fabric, err := s.repo.Fabrics.Get(ctx, fabricID)
	if err != nil {
		return nil, err
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			s.log.Warn("failed to close upload", zap.Error(closeErr))
		}
	}()

	key := utils.ObjectKey("fabrics", strconv.FormatUint(uint64(fabricID), 10), fileHeader.Filename)
	if err := s.store.Put(ctx, key, contentType, file); err != nil {
		return nil, errors.Wrap(err, "failed to upload image")
	}

	if err := s.repo.Fabrics.SetImageKey(ctx, fabricID, &key); err != nil {
		s.deleteQuietly(ctx, key)
		return nil, err
	}

	if fabric.ImageKey != nil {
		s.deleteQuietly(ctx, *fabric.ImageKey)
	}
	fabric.ImageKey = &key
	return fabric, nil
}

// FabricImageURL returns a time-limited download URL for the fabric's image.
func (s *ImageService) FabricImageURL(ctx context.Context, fabricID uint) (string, error) {
	fabric, err := s.repo.Fabrics.Get(ctx, fabricID)
	if err != nil {
		return "", err
	}
	if fabric.ImageKey == nil {
		return "", ErrNoImage
	}

	url, err := s.store.PresignDownload(ctx, *fabric.ImageKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate image URL")
	}
	return url, nil
}

// DeleteFabricImage detaches the image from the fabric and removes it from
// storage. The storage delete is best-effort; false means the object stayed.
func (s *ImageService) DeleteFabricImage(ctx context.Context, fabricID uint) (bool, error) {
	fabric, err := s.repo.Fabrics.Get(ctx, fabricID)
	if err != nil {
		return false, err
	}
	if fabric.ImageKey == nil {
		return false, ErrNoImage
	}

	if err := s.repo.Fabrics.SetImageKey(ctx, fabricID, nil); err != nil {
		return false, err
	}
	return s.deleteQuietly(ctx, *fabric.ImageKey), nil
}

// RemoveFabric deletes a fabric no item refers to, then its image. The
// storage delete is best-effort; false means an image object stayed.
func (s *ImageService) RemoveFabric(ctx context.Context, fabricID uint) (bool, error) {
	fabric, err := s.repo.Fabrics.Get(ctx, fabricID)
	if err != nil {
		return false, err
	}
	inUse, err := s.repo.Fabrics.InUse(ctx, fabricID)
	if err != nil {
		return false, errors.Wrapf(err, "check usage of fabric %d", fabricID)
	}
	if inUse {
		return false, errors.Wrapf(ErrFabricInUse, "fabric %d", fabricID)
	}
	if err := s.repo.Fabrics.Delete(ctx, fabricID); err != nil {
		return false, err
	}
	if fabric.ImageKey == nil {
		return true, nil
	}
	return s.deleteQuietly(ctx, *fabric.ImageKey), nil
}

// PhotoUpload is a photo row together with the URL the client uploads it to.
type PhotoUpload struct {
	Photo     models.OrderPhoto `json:"photo"`
	UploadURL string            `json:"upload_url"`
}

// RequestPhotoUpload records a new photo for the order and returns a presigned
// upload URL for it. An order holds at most models.MaxPhotosPerOrder photos.
func (s *ImageService) RequestPhotoUpload(ctx context.Context, orderNo, filename string) (*PhotoUpload, error) {
	contentType, err := utils.ValidateImageName(filename)
	if err != nil {
		return nil, err
	}

	key := utils.ObjectKey("orders", orderNo, filename)
	url, err := s.store.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate upload URL")
	}

	photo := models.OrderPhoto{OrderNo: orderNo, ObjectKey: key}
	err = s.repo.WithTx(ctx, func(tx *repository.Repository) error {
		ok, err := tx.Orders.Exists(ctx, orderNo)
		if err != nil {
			return errors.Wrapf(err, "look up order %s", orderNo)
		}
		if !ok {
			return errors.Wrapf(ErrOrderNotFound, "order %s", orderNo)
		}

		n, err := tx.Photos.CountByOrder(ctx, orderNo)
		if err != nil {
			return errors.Wrapf(err, "count photos of order %s", orderNo)
		}
		if n >= models.MaxPhotosPerOrder {
			return errors.Wrapf(ErrPhotoLimit, "order %s already has %d photos", orderNo, n)
		}
		return tx.Photos.Create(ctx, &photo)
	})
	if err != nil {
		return nil, err
	}

	return &PhotoUpload{Photo: photo, UploadURL: url}, nil
}

// ListPhotos returns the order's photos with download URLs filled in.
func (s *ImageService) ListPhotos(ctx context.Context, orderNo string) ([]models.OrderPhoto, error) {
	photos, err := s.repo.Photos.ListByOrder(ctx, orderNo)
	if err != nil {
		return nil, err
	}
	for i := range photos {
		url, err := s.store.PresignDownload(ctx, photos[i].ObjectKey)
		if err != nil {
			s.log.Warn("no download URL for photo", zap.String("key", photos[i].ObjectKey), zap.Error(err))
			continue
		}
		photos[i].ImageURL = &url
	}
	return photos, nil
}

// DeletePhoto removes the photo row, then its object. The storage delete is
// best-effort; false means the object stayed.
func (s *ImageService) DeletePhoto(ctx context.Context, orderNo string, photoID uint) (bool, error) {
	photo, err := s.repo.Photos.Get(ctx, orderNo, photoID)
	if err != nil {
		return false, err
	}
	if err := s.repo.Photos.Delete(ctx, orderNo, photoID); err != nil {
		return false, err
	}
	return s.deleteQuietly(ctx, photo.ObjectKey), nil
}

// ImageURL fills the fabric's ImageURL when it has an image.
func (s *ImageService) ImageURL(ctx context.Context, fabric *models.Fabric) {
	if fabric.ImageKey == nil {
		return
	}
	url, err := s.store.PresignDownload(ctx, *fabric.ImageKey)
	if err != nil {
		s.log.Warn("no download URL for fabric image", zap.Uint("fabric_id", fabric.FabricID), zap.Error(err))
		return
	}
	fabric.ImageURL = &url
}

func (s *ImageService) deleteQuietly(ctx context.Context, key string) bool {
	if err := s.store.Delete(ctx, key); err != nil {
		s.log.Warn("object left behind", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}
