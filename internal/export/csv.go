package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/balkashynov/clockwork/internal/daterange"
	"github.com/balkashynov/clockwork/internal/models"
)

// CSVFileName derives the deterministic artifact name for a query.
func CSVFileName(start, end time.Time, category string) string {
	name := fmt.Sprintf("timelog_%s_%s", daterange.Format(start), daterange.Format(end))
	if category != "" {
		name += "_" + category
	}
	return name + ".csv"
}

// WriteCSV serializes sessions into a CSV artifact in the temp directory
// and returns its path. Durations are written as raw integer seconds.
func WriteCSV(sessions []models.Session, start, end time.Time, category string) (string, error) {
	path := filepath.Join(os.TempDir(), CSVFileName(start, end, category))

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(Header(true)); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, s := range sessions {
		endTime := ""
		duration := ""
		if s.EndTime != nil {
			endTime = s.EndTime.Format(TimeLayout)
		}
		if s.DurationSeconds != nil {
			duration = strconv.FormatInt(*s.DurationSeconds, 10)
		}

		row := []string{
			strconv.FormatUint(uint64(s.ID), 10),
			s.Category,
			s.Activity,
			s.Task,
			s.StartTime.Format(TimeLayout),
			endTime,
			duration,
			s.Notes,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV file: %w", err)
	}

	return path, nil
}
