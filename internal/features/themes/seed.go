package themes

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const defaultThemeCost = 50

type seedTheme struct {
	Name   string
	Colors [3]string
}

var defaultThemes = []seedTheme{
	{Name: "Chocolate", Colors: [3]string{"#3E2723", "#795548", "#A1887F"}},
	{Name: "Ocean Blue", Colors: [3]string{"#0ea5e9", "#0369a1", "#075985"}},
	{Name: "Sunset", Colors: [3]string{"#fb7185", "#f97316", "#fde047"}},
	{Name: "Forest", Colors: [3]string{"#16a34a", "#22c55e", "#065f46"}},
	{Name: "Lavender", Colors: [3]string{"#a78bfa", "#c084fc", "#7c3aed"}},
	{Name: "Rosy", Colors: [3]string{"#f472b6", "#fb7185", "#db2777"}},
	{Name: "Slate", Colors: [3]string{"#64748b", "#475569", "#0f172a"}},
	{Name: "Neon", Colors: [3]string{"#22d3ee", "#f59e0b", "#84cc16"}},
	{Name: "Midnight", Colors: [3]string{"#111827", "#1f2937", "#374151"}},
	{Name: "Ghibli", Colors: [3]string{"#93c5fd", "#86efac", "#f9a8d4"}},
}

// EnsureSeeded inserts the default themes if and only if the themes table is
// completely empty. Same run-once-when-empty rule as the song catalog: a
// partial seed is not reconciled.
func EnsureSeeded(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Theme{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count themes: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, t := range defaultThemes {
		colors, err := json.Marshal(t.Colors)
		if err != nil {
			return err
		}
		theme := Theme{
			ID:     uuid.New(),
			Name:   t.Name,
			Colors: datatypes.JSON(colors),
			Cost:   defaultThemeCost,
		}
		if err := db.Create(&theme).Error; err != nil {
			return fmt.Errorf("failed to seed theme %q: %w", t.Name, err)
		}
	}

	slog.Info("seeded theme catalog", "themes", len(defaultThemes))
	return nil
}
