package services

import (
	"errors"
	"fmt"
	"log"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"
	"github.com/ferbta/babyverse/utils"

	"gorm.io/gorm"
)

type MediaInput struct {
	ImageData string `json:"imageData" binding:"required"`
	Caption   string `json:"caption"`
	TakenDate string `json:"takenDate"`
}

// uploadImage and deleteObject are seams over the S3 helpers so tests can run
// without AWS credentials.
var (
	uploadImage  = utils.UploadBase64Image
	deleteObject = utils.DeleteObject
)

// ListMedia returns the child's general gallery, newest first. Photos
// attached to other entities keep their own relatedType and stay out.
func ListMedia(userID, childID uint) ([]models.Media, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}
	var media []models.Media
	err = config.DB.
		Where("child_id = ? AND related_type = ?", child.ID, models.MediaRelatedGeneral).
		Order("created_at DESC").
		Find(&media).Error
	return media, err
}

func CreateMedia(userID, childID uint, input MediaInput) (*models.Media, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}

	url, key, err := uploadImage(input.ImageData, fmt.Sprintf("babyverse/%d", child.ID))
	if err != nil {
		return nil, err
	}

	media := models.Media{
		ChildID:     child.ID,
		URL:         url,
		PublicID:    key,
		Type:        "image",
		Caption:     input.Caption,
		RelatedType: models.MediaRelatedGeneral,
	}
	if input.TakenDate != "" {
		takenDate, err := utils.ParseDate(input.TakenDate)
		if err != nil {
			return nil, err
		}
		media.TakenDate = &takenDate
	}

	if err := config.DB.Create(&media).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

// DeleteMedia removes the row, then the object. The object delete is best
// effort; an orphaned file is preferable to a dangling DB row.
func DeleteMedia(userID, childID, mediaID uint) error {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return err
	}

	var media models.Media
	err = config.DB.
		Where("id = ? AND child_id = ?", mediaID, child.ID).
		First(&media).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := config.DB.Delete(&media).Error; err != nil {
		return err
	}
	if err := deleteObject(media.PublicID); err != nil {
		log.Printf("failed to delete object %s: %v", media.PublicID, err)
	}
	return nil
}
