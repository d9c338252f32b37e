// Command schedule_preview runs the optimizer against a CSV seed file and
// prints the best schedule combinations. Useful for eyeballing scoring
// changes without standing up the API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/coursepilot/schedule-optimizer-api/internal/catalog"
	"github.com/coursepilot/schedule-optimizer-api/internal/models"
	"github.com/coursepilot/schedule-optimizer-api/internal/optimizer"
)

func main() {
	seedFile := flag.String("seed", "sections.csv", "CSV seed file of section meetings")
	limit := flag.Int("limit", 5, "number of combinations to print")
	days := flag.String("days", "", "comma-free preferred day symbols, e.g. MTR (empty keeps defaults)")
	flag.Parse()

	sections, err := catalog.LoadSectionsCSV(*seedFile)
	if err != nil {
		log.Fatalf("load seed: %v", err)
	}
	if len(sections) == 0 {
		log.Fatalf("seed %s contains no sections", *seedFile)
	}

	prefs := models.DefaultSchedulePreferences()
	if *days != "" {
		prefs.PreferredDays = optimizer.ParseDays(*days)
	}

	byCourse := make(map[string][]models.Section)
	var order []string
	for _, section := range sections {
		key := section.Subject + " " + section.CourseCode
		if _, ok := byCourse[key]; !ok {
			order = append(order, key)
		}
		byCourse[key] = append(byCourse[key], section)
	}

	coursesSections := make([][]models.Section, 0, len(order))
	for _, key := range order {
		coursesSections = append(coursesSections, byCourse[key])
	}

	scheduler := optimizer.NewScheduler(prefs)
	combos := scheduler.FindOptimalCombinations(coursesSections, *limit)
	if len(combos) == 0 {
		fmt.Println("no conflict-free combination found")
		return
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	for i, combo := range combos {
		fmt.Printf("--- combination %d (score %.1f) ---\n", i+1, combo.Score)
		if err := enc.Encode(combo); err != nil {
			log.Fatalf("encode combination: %v", err)
		}
	}
}
