package services

import (
	"fmt"
	"strings"

	"github.com/eldon922/ekklesia-be/internal/importer"
	"github.com/eldon922/ekklesia-be/internal/models"
	"github.com/eldon922/ekklesia-be/internal/normalize"

	"gorm.io/gorm"
)

// ImportService runs the bulk-import pipeline: parse the uploaded
// file, resolve columns, and insert non-duplicate rows in one
// transaction while collecting duplicates for human review.
type ImportService struct {
	db *gorm.DB
}

func NewImportService(db *gorm.DB) *ImportService {
	return &ImportService{db: db}
}

// ImportResult is returned to the uploader. Duplicates are not part of
// the roster yet; the client resubmits the chosen subset via
// ConfirmDuplicateImport.
type ImportResult struct {
	Imported   int                         `json:"imported"`
	Skipped    int                         `json:"skipped"`
	Duplicates []models.DuplicateCandidate `json:"duplicates"`
	Stats      models.Stats                `json:"stats"`
}

// dupIndex matches candidates against the roster as it stood at
// transaction start plus rows inserted earlier in the same pass, so
// duplicates within one file are caught against each other too.
type dupIndex struct {
	byPhone map[string]models.Attendee
	byName  map[string]models.Attendee
}

func newDupIndex(existing []models.Attendee) *dupIndex {
	idx := &dupIndex{
		byPhone: make(map[string]models.Attendee),
		byName:  make(map[string]models.Attendee),
	}
	for _, a := range existing {
		idx.add(a)
	}
	return idx
}

// add registers an attendee under its normalized keys. The first
// holder of a key wins, so later equally-normalized rows report the
// earliest record as the conflict.
func (idx *dupIndex) add(a models.Attendee) {
	if key := normalize.Phone(a.Phone); key != "" {
		if _, ok := idx.byPhone[key]; !ok {
			idx.byPhone[key] = a
		}
	}
	if key := normalize.Name(a.Name); key != "" {
		if _, ok := idx.byName[key]; !ok {
			idx.byName[key] = a
		}
	}
}

// match finds a duplicate for the candidate. Phone is the stronger
// identity signal and is checked first; the name key is the fallback
// for attendees without phone data.
func (idx *dupIndex) match(name, phone string) (matchedBy string, existing models.Attendee, ok bool) {
	if key := normalize.Phone(phone); key != "" {
		if a, found := idx.byPhone[key]; found {
			return models.MatchedByPhone, a, true
		}
	}
	if key := normalize.Name(name); key != "" {
		if a, found := idx.byName[key]; found {
			return models.MatchedByName, a, true
		}
	}
	return "", models.Attendee{}, false
}

// ImportAttendees parses the uploaded file and inserts every
// non-duplicate row with a non-empty name, all inside one transaction.
// Rows matching an existing attendee come back as duplicate candidates
// instead of being written.
func (s *ImportService) ImportAttendees(eventID uint, filename string, data []byte) (*ImportResult, error) {
	if _, err := assertMutable(s.db, eventID); err != nil {
		return nil, err
	}

	headers, rows, err := importer.Parse(filename, data)
	if err != nil {
		return nil, err
	}

	cols, err := importer.ResolveColumns(headers)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Duplicates: []models.DuplicateCandidate{}}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var existing []models.Attendee
		if err := tx.Where("event_id = ?", eventID).Find(&existing).Error; err != nil {
			return err
		}
		idx := newDupIndex(existing)

		for i, row := range rows {
			name := strings.TrimSpace(row[cols.Name])
			if name == "" {
				result.Skipped++
				continue
			}

			phone := strings.TrimSpace(row[cols.Phone])
			affiliation := strings.TrimSpace(row[cols.Affiliation])

			if matchedBy, conflict, found := idx.match(name, phone); found {
				result.Duplicates = append(result.Duplicates, models.DuplicateCandidate{
					Name:          name,
					Phone:         phone,
					Affiliation:   affiliation,
					Row:           i + 2, // 1-based, after the header row
					MatchedBy:     matchedBy,
					ExistingName:  conflict.Name,
					ExistingPhone: conflict.Phone,
				})
				continue
			}

			attendee := models.Attendee{
				EventID:     eventID,
				Name:        name,
				Phone:       phone,
				Affiliation: affiliation,
				Source:      models.SourceImport,
			}
			if err := tx.Create(&attendee).Error; err != nil {
				return fmt.Errorf("row %d: %w", i+2, err)
			}
			idx.add(attendee)
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats, err := computeStats(s.db, eventID)
	if err != nil {
		return nil, err
	}
	result.Stats = *stats
	return result, nil
}

// ConfirmDuplicateImport inserts the duplicate candidates the client
// chose to keep. The payload is trusted verbatim; there is no
// server-side record of the earlier import to check it against.
func (s *ImportService) ConfirmDuplicateImport(eventID uint, candidates []models.DuplicateCandidate) (*ImportResult, error) {
	if _, err := assertMutable(s.db, eventID); err != nil {
		return nil, err
	}

	result := &ImportResult{Duplicates: []models.DuplicateCandidate{}}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, cand := range candidates {
			name := strings.TrimSpace(cand.Name)
			if name == "" {
				continue
			}
			attendee := models.Attendee{
				EventID:     eventID,
				Name:        name,
				Phone:       cand.Phone,
				Affiliation: cand.Affiliation,
				Source:      models.SourceImport,
			}
			if err := tx.Create(&attendee).Error; err != nil {
				return err
			}
			result.Imported++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	stats, err := computeStats(s.db, eventID)
	if err != nil {
		return nil, err
	}
	result.Stats = *stats
	return result, nil
}
