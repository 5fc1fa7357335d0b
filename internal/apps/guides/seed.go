package guides

import (
	"log/slog"

	"gorm.io/gorm"
)

var seedGuides = []Guide{
	{
		Title:       "Anaphylaxis: First Response",
		Category:    "Emergencies",
		Description: "Immediate steps for a suspected anaphylactic reaction in the practice.",
		Duration:    "5 min",
		Difficulty:  "critical",
		Icon:        "alert-circle",
		Content: "1. Stop the suspected trigger immediately.\n" +
			"2. Administer intramuscular adrenaline 0.3-0.5 mg (1:1000) in the anterolateral thigh.\n" +
			"3. Place the patient supine with legs elevated; lateral position if vomiting.\n" +
			"4. Call emergency services and give high-flow oxygen if available.\n" +
			"5. Repeat adrenaline after 5 minutes if there is no improvement.\n" +
			"6. Record the dose and time for the handover.",
	},
	{
		Title:       "Cold Chain Handling",
		Category:    "Storage",
		Description: "Keeping refrigerated stock within the 2-8 °C range.",
		Duration:    "10 min",
		Difficulty:  "basic",
		Icon:        "thermometer",
		Content: "Refrigerated items must stay between 2 °C and 8 °C at all times. " +
			"Check and log the fridge temperature at opening and closing. " +
			"Never store items in the door shelves. " +
			"If an excursion is detected, quarantine the affected stock, note the duration " +
			"and temperature reached, and contact the supplier before any further use.",
	},
	{
		Title:       "Expired Stock Disposal",
		Category:    "Storage",
		Description: "What to do with supplies past their expiration date.",
		Duration:    "10 min",
		Difficulty:  "basic",
		Icon:        "trash-2",
		Content: "Expired medication must never be returned to normal stock or discarded " +
			"with household waste. Move it to the marked disposal container, record the " +
			"item, lot number and quantity in the disposal log, and hand the container " +
			"to the licensed waste collector on their scheduled visit.",
	},
	{
		Title:       "Controlled Substances Log",
		Category:    "Compliance",
		Description: "Required record keeping for controlled medication.",
		Duration:    "15 min",
		Difficulty:  "intermediate",
		Icon:        "clipboard",
		Content: "Every movement of a controlled substance needs a log entry with the date, " +
			"patient or disposal reference, amount, remaining balance and the signature of " +
			"the responsible clinician. The logged balance must be reconciled against the " +
			"physical count at the end of each week.",
	},
}

// SeedGuides inserts the default reference guides, matching by title so
// reruns never duplicate and admin edits survive restarts.
func SeedGuides(db *gorm.DB) error {
	seeded := 0

	for _, sg := range seedGuides {
		var existing Guide
		err := db.Where("title = ?", sg.Title).First(&existing).Error
		if err == nil {
			continue
		}

		guide := sg
		if err := db.Create(&guide).Error; err != nil {
			return err
		}
		seeded++
	}

	if seeded > 0 {
		slog.Info("seeded guides", "new", seeded, "total", len(seedGuides))
	}
	return nil
}
