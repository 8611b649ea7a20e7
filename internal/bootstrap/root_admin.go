package bootstrap

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/muhammaaddsafii-dev/BE-terestria/internal/config"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/modules/model"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/utils/secrets"
	"github.com/muhammaaddsafii-dev/BE-terestria/internal/pkg/utils/tokens"
)

// EnsureRootAdmin creates or aligns the configured staff account and its API
// token when the service starts. It is a no-op unless root.admin_username and
// root.admin_password are both set.
func EnsureRootAdmin(ctx context.Context, db *gorm.DB, cfg *config.Config, log *zap.Logger) error {
	username := cfg.Root.AdminUsername
	password := cfg.Root.AdminPassword
	if username == "" || password == "" {
		return nil
	}

	encoded, err := secrets.MakePassword(password, secrets.PBKDF2Iterations)
	if err != nil {
		return err
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var u model.User
		err := tx.Where("username = ?", username).First(&u).Error
		switch {
		case err == nil:
			updates := map[string]interface{}{
				"password":     encoded,
				"is_staff":     true,
				"is_superuser": true,
				"is_active":    true,
			}
			if cfg.Root.AdminEmail != "" {
				updates["email"] = cfg.Root.AdminEmail
			}
			if uErr := tx.Model(&u).Updates(updates).Error; uErr != nil {
				return uErr
			}
			log.Sugar().Infow("root admin exists", "user", u.ID)

		case errors.Is(err, gorm.ErrRecordNotFound):
			u = model.User{
				Username:    username,
				Password:    encoded,
				Email:       cfg.Root.AdminEmail,
				IsStaff:     true,
				IsSuperuser: true,
				IsActive:    true,
			}
			if cErr := tx.Create(&u).Error; cErr != nil {
				return cErr
			}
			log.Sugar().Infow("root admin created", "user", u.ID)

		default:
			return err
		}

		return ensureToken(tx, u.ID, cfg.Root.AdminToken, log)
	})
}

// ensureToken gives the user an API token. A configured key replaces
// whatever the user had; otherwise an existing token is kept.
func ensureToken(tx *gorm.DB, userID uint, key string, log *zap.Logger) error {
	var existing model.Token
	err := tx.Where("user_id = ?", userID).First(&existing).Error
	switch {
	case err == nil:
		if key == "" || existing.Key == key {
			return nil
		}
		if dErr := tx.Delete(&existing).Error; dErr != nil {
			return dErr
		}
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	if key == "" {
		if key, err = tokens.NewKey(); err != nil {
			return err
		}
	}
	if err := tx.Create(&model.Token{Key: key, UserID: userID}).Error; err != nil {
		return err
	}
	log.Sugar().Infow("root admin token issued", "user", userID)
	return nil
}
