package services

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"nestling/internal/infra"
	"nestling/internal/models/db_models"
	"nestling/pkg/config"
	"nestling/pkg/utils"
)

func TestMain(m *testing.M) {
	utils.InitJWT(config.JWTConfig{
		AccessSecret:      "test-access-secret",
		RefreshSecret:     "test-refresh-secret",
		AccessExpiration:  15 * time.Minute,
		RefreshExpiration: time.Hour,
	})
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))
	return db
}

func seedParent(t *testing.T, db *gorm.DB, email string) *db_models.Parent {
	t.Helper()

	parent := &db_models.Parent{
		FirstName:   "Test",
		LastName:    "Parent",
		Email:       email,
		Password:    "not-a-real-hash",
		PhoneNumber: email,
	}
	require.NoError(t, db.Create(parent).Error)
	return parent
}

func seedChild(t *testing.T, db *gorm.DB, parentID uuid.UUID) *db_models.Child {
	t.Helper()

	child := &db_models.Child{
		FirstName: "Test",
		LastName:  "Child",
		Birthday:  time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Region:    "EU",
		Gender:    "female",
	}
	require.NoError(t, db.Create(child).Error)
	linkGuardian(t, db, parentID, child.ID)
	return child
}

func linkGuardian(t *testing.T, db *gorm.DB, parentID, childID uuid.UUID) {
	t.Helper()

	relation := &db_models.ParentChild{
		ParentID:      parentID,
		ChildID:       childID,
		Relation:      "Parent",
		Status:        db_models.RelationActive,
		RequestedDate: time.Now(),
	}
	require.NoError(t, db.Create(relation).Error)
}

// fakeMail records outgoing mail instead of talking SMTP.
type fakeMail struct {
	welcomes    []string
	resetTokens map[string]string
}

func newFakeMail() *fakeMail {
	return &fakeMail{resetTokens: map[string]string{}}
}

func (f *fakeMail) SendWelcome(to, firstName string) error {
	f.welcomes = append(f.welcomes, to)
	return nil
}

func (f *fakeMail) SendPasswordReset(to, token string) error {
	f.resetTokens[to] = token
	return nil
}
