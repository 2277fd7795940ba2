package migration

import (
	"fmt"

	"Fitlog-Backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

func ptr(v float64) *float64 { return &v }

// Seed loads a small verified food catalog so quantity conversion works out
// of the box. Rows are matched by name and never duplicated.
func Seed(db *gorm.DB) error {
	records := []entities.FoodRecord{
		{
			Name: "chicken breast", ServingSize: 100, ServingUnit: "g",
			Calories: ptr(165), ProteinG: ptr(31), CarbsG: ptr(0), FatG: ptr(3.6),
			Verified: true,
		},
		{
			Name: "oatmeal", ServingSize: 100, ServingUnit: "g",
			Calories: ptr(71), ProteinG: ptr(2.5), CarbsG: ptr(12), FatG: ptr(1.5), FiberG: ptr(1.7),
			CupSizeG: ptr(240),
			Verified: true,
		},
		{
			Name: "whey protein", ServingSize: 30, ServingUnit: "g",
			Calories: ptr(120), ProteinG: ptr(24), CarbsG: ptr(3), FatG: ptr(1.5),
			ScoopSizeG: ptr(30),
			Verified:   true,
		},
		{
			Name: "maple syrup", ServingSize: 100, ServingUnit: "g",
			Calories: ptr(260), CarbsG: ptr(67), SugarG: ptr(60),
			DensityGPerML: ptr(1.32),
			Verified:      true,
		},
		{
			Name: "chicken broth", ServingSize: 240, ServingUnit: "ml",
			Calories: ptr(15), ProteinG: ptr(1.5),
			DensityGPerML: ptr(1.0),
			Verified:      true,
		},
		{
			Name: "white rice", ServingSize: 100, ServingUnit: "g",
			Calories: ptr(130), ProteinG: ptr(2.7), CarbsG: ptr(28), FatG: ptr(0.3),
			CupSizeG: ptr(158),
			Verified: true,
		},
		{
			Name: "whole egg", ServingSize: 50, ServingUnit: "g",
			Calories: ptr(72), ProteinG: ptr(6.3), FatG: ptr(4.8),
			PieceWeightG: ptr(50),
			Verified:     true,
		},
		{
			Name: "whole wheat bread", ServingSize: 100, ServingUnit: "g",
			Calories: ptr(247), ProteinG: ptr(13), CarbsG: ptr(41), FatG: ptr(3.4), FiberG: ptr(7),
			SliceWeightG: ptr(32),
			Verified:     true,
		},
		{
			Name: "banana", ServingSize: 118, ServingUnit: "g",
			Calories: ptr(105), CarbsG: ptr(27), SugarG: ptr(14), FiberG: ptr(3.1),
			PieceWeightG: ptr(118),
			Verified:     true,
		},
		{
			Name: "olive oil", ServingSize: 100, ServingUnit: "g",
			Calories: ptr(884), FatG: ptr(100),
			DensityGPerML: ptr(0.91),
			Verified:      true,
		},
	}

	for i := range records {
		record := &records[i]
		record.ID = uuid.New()
		if err := db.Where("name = ?", record.Name).FirstOrCreate(record).Error; err != nil {
			return err
		}
	}

	fmt.Println("Food catalog seed complete")
	return nil
}
