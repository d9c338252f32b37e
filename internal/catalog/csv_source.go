package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

// sectionRecord is one CSV row of the seed file. Each row describes a single
// meeting; rows sharing (subject, course_code, section) are folded into one
// section with multiple meetings.
type sectionRecord struct {
	Subject    string `csv:"subject"`
	CourseCode string `csv:"course_code"`
	Section    string `csv:"section"`
	Days       string `csv:"days"`
	Time       string `csv:"time"`
	Instructor string `csv:"instructor"`
	Seats      int    `csv:"seats"`
	Waitlist   int    `csv:"waitlist"`
}

// LoadSectionsCSV reads a seed file of section meetings and assembles catalog
// sections from it. The file lets the service run demos and tests without a
// live catalog upstream.
func LoadSectionsCSV(path string) ([]models.Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv seed %s: %w", path, err)
	}
	defer f.Close()

	var records []*sectionRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse csv seed %s: %w", path, err)
	}

	var sections []models.Section
	index := make(map[string]int)

	for _, rec := range records {
		if rec.Subject == "" || rec.CourseCode == "" || rec.Section == "" {
			continue
		}

		key := sectionKey(rec.Subject, rec.CourseCode, rec.Section)
		meeting := models.Meeting{
			Days:       rec.Days,
			Time:       rec.Time,
			Instructor: rec.Instructor,
		}

		if i, ok := index[key]; ok {
			sections[i].Schedule = append(sections[i].Schedule, meeting)
			continue
		}

		index[key] = len(sections)
		sections = append(sections, models.Section{
			ID:         key,
			Subject:    rec.Subject,
			CourseCode: rec.CourseCode,
			Section:    rec.Section,
			Schedule:   []models.Meeting{meeting},
			Seats:      rec.Seats,
			Waitlist:   rec.Waitlist,
		})
	}

	return sections, nil
}

func sectionKey(subject, courseCode, section string) string {
	return strings.ToUpper(fmt.Sprintf("%s-%s-%s", subject, courseCode, section))
}
