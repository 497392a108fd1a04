package config

import (
	"github.com/ferbta/babyverse/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func intPtr(v int) *int { return &v }

// vietnamSchedule is the Vietnam Ministry of Health standard vaccination
// schedule. Age offsets are relative to the birth date; each entry carries
// either weeks or months, never both.
var vietnamSchedule = []models.VaccinationSchedule{
	{Name: "BCG", NameVi: "Lao (BCG)", AgeWeeks: intPtr(1), Description: "Bacillus Calmette-Guérin vaccine for tuberculosis", Required: true, Order: 1},
	{Name: "Hepatitis B (1st dose)", NameVi: "Viêm gan B (mũi 1)", AgeWeeks: intPtr(1), Description: "First dose of Hepatitis B vaccine", Required: true, Order: 2},
	{Name: "Pentavalent (1st dose)", NameVi: "5 trong 1 (mũi 1)", AgeMonths: intPtr(2), Description: "DPT-HepB-Hib vaccine", Required: true, Order: 3},
	{Name: "Polio (1st dose)", NameVi: "Bại liệt (mũi 1)", AgeMonths: intPtr(2), Description: "Oral polio vaccine", Required: true, Order: 4},
	{Name: "Pentavalent (2nd dose)", NameVi: "5 trong 1 (mũi 2)", AgeMonths: intPtr(3), Description: "DPT-HepB-Hib vaccine", Required: true, Order: 5},
	{Name: "Polio (2nd dose)", NameVi: "Bại liệt (mũi 2)", AgeMonths: intPtr(3), Description: "Oral polio vaccine", Required: true, Order: 6},
	{Name: "Pentavalent (3rd dose)", NameVi: "5 trong 1 (mũi 3)", AgeMonths: intPtr(4), Description: "DPT-HepB-Hib vaccine", Required: true, Order: 7},
	{Name: "Polio (3rd dose)", NameVi: "Bại liệt (mũi 3)", AgeMonths: intPtr(4), Description: "Oral polio vaccine", Required: true, Order: 8},
	{Name: "MMR (1st dose)", NameVi: "Sởi - Quai bị - Rubella (mũi 1)", AgeMonths: intPtr(9), Description: "Measles, Mumps, Rubella vaccine", Required: true, Order: 9},
	{Name: "Japanese Encephalitis (1st dose)", NameVi: "Viêm não Nhật Bản (mũi 1)", AgeMonths: intPtr(12), Description: "Japanese Encephalitis vaccine", Required: true, Order: 10},
	{Name: "MMR (2nd dose)", NameVi: "Sởi - Quai bị - Rubella (mũi 2)", AgeMonths: intPtr(18), Description: "Measles, Mumps, Rubella vaccine booster", Required: true, Order: 11},
	{Name: "DPT Booster", NameVi: "Nhắc lại 3 trong 1", AgeMonths: intPtr(18), Description: "Diphtheria, Pertussis, Tetanus booster", Required: true, Order: 12},
	{Name: "Japanese Encephalitis (2nd dose)", NameVi: "Viêm não Nhật Bản (mũi 2)", AgeMonths: intPtr(24), Description: "Japanese Encephalitis vaccine booster", Required: true, Order: 13},
	{Name: "Hepatitis A", NameVi: "Viêm gan A", AgeMonths: intPtr(24), Description: "Hepatitis A vaccine", Required: false, Order: 14},
	{Name: "Varicella", NameVi: "Thủy đậu", AgeMonths: intPtr(12), Description: "Chickenpox vaccine", Required: false, Order: 15},
	{Name: "Pneumococcal", NameVi: "Phế cầu khuẩn", AgeMonths: intPtr(2), Description: "Pneumococcal conjugate vaccine", Required: false, Order: 16},
	{Name: "Rotavirus (1st dose)", NameVi: "Rota virus (mũi 1)", AgeMonths: intPtr(2), Description: "Rotavirus vaccine", Required: false, Order: 17},
	{Name: "Rotavirus (2nd dose)", NameVi: "Rota virus (mũi 2)", AgeMonths: intPtr(4), Description: "Rotavirus vaccine", Required: false, Order: 18},
}

// SeedVaccinationSchedule upserts the reference rows, keyed by name so
// re-running on boot never duplicates them.
func SeedVaccinationSchedule(db *gorm.DB) error {
	for _, entry := range vietnamSchedule {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"name_vi", "age_weeks", "age_months", "description", "required", "display_order"}),
		}).Create(&entry).Error
		if err != nil {
			return err
		}
	}
	return nil
}
