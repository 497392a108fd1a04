package services

import (
	"errors"
	"time"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"
	"github.com/ferbta/babyverse/utils"

	"gorm.io/gorm"
)

type ChildInput struct {
	Name           string   `json:"name" binding:"required"`
	Nickname       string   `json:"nickname"`
	BirthDate      string   `json:"birthDate" binding:"required"`
	Gender         string   `json:"gender" binding:"required,oneof=male female other"`
	BloodType      string   `json:"bloodType" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	BirthWeight    *float64 `json:"birthWeight"`
	BirthHeight    *float64 `json:"birthHeight"`
	BirthCondition string   `json:"birthCondition" binding:"omitempty,oneof=natural c-section premature"`
}

type ChildUpdateInput struct {
	Name           *string  `json:"name" binding:"omitempty,min=1"`
	Nickname       *string  `json:"nickname"`
	Avatar         *string  `json:"avatar"`
	BloodType      *string  `json:"bloodType" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	BirthWeight    *float64 `json:"birthWeight"`
	BirthHeight    *float64 `json:"birthHeight"`
	BirthCondition *string  `json:"birthCondition" binding:"omitempty,oneof=natural c-section premature"`
}

// ChildView is a child row plus the derived age display string.
type ChildView struct {
	models.Child
	Age string `json:"age"`
}

// ChildDetail is the single-child response: profile plus the next few
// vaccinations and the latest growth records.
type ChildDetail struct {
	ChildView
	Vaccinations  []models.Vaccination  `json:"vaccinations"`
	GrowthRecords []models.GrowthRecord `json:"growthRecords"`
}

// OwnedChild loads a child and verifies ownership. Absent and foreign rows
// are both ErrNotFound so callers can't probe other users' data.
func OwnedChild(userID, childID uint, activeOnly bool) (*models.Child, error) {
	q := config.DB.Where("id = ? AND user_id = ?", childID, userID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var child models.Child
	if err := q.First(&child).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &child, nil
}

func ListChildren(userID uint, now time.Time) ([]ChildView, error) {
	var children []models.Child
	err := config.DB.
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("birth_date DESC").
		Find(&children).Error
	if err != nil {
		return nil, err
	}

	views := make([]ChildView, 0, len(children))
	for _, c := range children {
		views = append(views, ChildView{Child: c, Age: utils.FormatAge(c.BirthDate, now)})
	}
	return views, nil
}

func CreateChild(userID uint, input ChildInput) (*models.Child, error) {
	birthDate, err := utils.ParseDate(input.BirthDate)
	if err != nil {
		return nil, err
	}

	child := models.Child{
		UserID:         userID,
		Name:           input.Name,
		Nickname:       input.Nickname,
		BirthDate:      birthDate,
		Gender:         input.Gender,
		BloodType:      input.BloodType,
		BirthWeight:    input.BirthWeight,
		BirthHeight:    input.BirthHeight,
		BirthCondition: input.BirthCondition,
		IsActive:       true,
	}
	if err := config.DB.Create(&child).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func GetChild(userID, childID uint, now time.Time) (*ChildDetail, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}

	detail := ChildDetail{
		ChildView: ChildView{Child: *child, Age: utils.FormatAge(child.BirthDate, now)},
	}

	if err := config.DB.
		Where("child_id = ?", child.ID).
		Order("due_date ASC").
		Limit(5).
		Find(&detail.Vaccinations).Error; err != nil {
		return nil, err
	}

	if err := config.DB.
		Where("child_id = ?", child.ID).
		Order("measure_date DESC").
		Limit(10).
		Find(&detail.GrowthRecords).Error; err != nil {
		return nil, err
	}

	return &detail, nil
}

// UpdateChild applies a partial update. The birth date is deliberately not
// updatable: due dates generated from it are never recomputed.
func UpdateChild(userID, childID uint, input ChildUpdateInput) (*models.Child, error) {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		child.Name = *input.Name
	}
	if input.Nickname != nil {
		child.Nickname = *input.Nickname
	}
	if input.Avatar != nil {
		child.Avatar = *input.Avatar
	}
	if input.BloodType != nil {
		child.BloodType = *input.BloodType
	}
	if input.BirthWeight != nil {
		child.BirthWeight = input.BirthWeight
	}
	if input.BirthHeight != nil {
		child.BirthHeight = input.BirthHeight
	}
	if input.BirthCondition != nil {
		child.BirthCondition = *input.BirthCondition
	}

	if err := config.DB.Save(child).Error; err != nil {
		return nil, err
	}
	return child, nil
}

// SoftDeleteChild clears the active flag. Vaccination, growth, milestone,
// feeding and media rows stay untouched. Deleting an already-deleted child
// succeeds; the flag just stays false.
func SoftDeleteChild(userID, childID uint) error {
	child, err := OwnedChild(userID, childID, false)
	if err != nil {
		return err
	}
	child.IsActive = false
	return config.DB.Save(child).Error
}
