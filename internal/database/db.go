package database

import (
	"errors"
	"fmt"
	"time"

	"arcadia-sales/internal/models"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrOptionExists  = errors.New("option already exists")
)

// Store is the storage handle passed to middleware and handlers. There is
// no package-level connection; lifecycle belongs to the caller.
type Store struct {
	db  *gorm.DB
	log *logrus.Logger
}

// Open connects with a bounded retry (the DB container may still be
// starting), runs migrations and returns the handle.
func Open(dialector gorm.Dialector, log *logrus.Logger) (*Store, error) {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		db, err = gorm.Open(dialector, &gorm.Config{})
		if err == nil {
			break
		}
		log.WithFields(logrus.Fields{
			"attempt": i,
			"of":      maxAttempts,
		}).Warnf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("connect after %d attempts: %w", maxAttempts, err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.FieldOption{},
		&models.SaleDetail{},
	); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, log: log}, nil
}

// SeedAccounts holds the bootstrap credentials; values come from config,
// never from code.
type SeedAccounts struct {
	AdminUsername string
	AdminPassword string
	CRMUsername   string
	CRMPassword   string
}

// Seed creates the two bootstrap accounts when their usernames are absent
// and the default enumeration values when the corresponding set is empty.
func (s *Store) Seed(acc SeedAccounts) error {
	seedUsers := []struct {
		username string
		password string
		role     models.UserRole
	}{
		{acc.CRMUsername, acc.CRMPassword, models.RoleCRM},
		{acc.AdminUsername, acc.AdminPassword, models.RoleAdmin},
	}

	for _, u := range seedUsers {
		var count int64
		if err := s.db.Model(&models.User{}).
			Where("username = ?", u.username).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := models.User{
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
		}
		if err := s.db.Create(&user).Error; err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"username": u.username,
			"role":     u.role,
		}).Info("created seed user")
	}

	defaults := map[models.OptionKind][]string{
		models.OptionSPG:      {"SPG", "Praneeth"},
		models.OptionSaleType: {"OTP", "R"},
	}
	for kind, values := range defaults {
		var count int64
		if err := s.db.Model(&models.FieldOption{}).
			Where("kind = ?", kind).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		for _, v := range values {
			opt := models.FieldOption{Kind: kind, Value: v}
			if err := s.db.Create(&opt).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
