package database

import (
	"arcadia-sales/internal/models"
)

// Options returns the allowed values of one enumeration, lexicographic.
func (s *Store) Options(kind models.OptionKind) ([]string, error) {
	var values []string
	err := s.db.Model(&models.FieldOption{}).
		Where("kind = ?", kind).
		Order("value asc").
		Pluck("value", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *Store) IsValidOption(kind models.OptionKind, value string) (bool, error) {
	var count int64
	err := s.db.Model(&models.FieldOption{}).
		Where("kind = ? AND value = ?", kind, value).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddOption fails with ErrOptionExists on a duplicate value; the conflict
// is non-fatal and reported to the caller.
func (s *Store) AddOption(kind models.OptionKind, value string) error {
	ok, err := s.IsValidOption(kind, value)
	if err != nil {
		return err
	}
	if ok {
		return ErrOptionExists
	}
	return s.db.Create(&models.FieldOption{Kind: kind, Value: value}).Error
}

// RemoveOption is a no-op when the value is absent.
func (s *Store) RemoveOption(kind models.OptionKind, value string) error {
	return s.db.
		Where("kind = ? AND value = ?", kind, value).
		Delete(&models.FieldOption{}).Error
}
