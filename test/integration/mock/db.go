package mock

import (
	"fmt"
	"slices"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/goal-tracker/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens the shared in-memory store used by every scenario and migrates
// the full schema once.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	models := model.All()
	if err := dbConn.AutoMigrate(models...); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn, models: models}
}

// ClearDB removes every row, children before parents so foreign keys hold.
func (d *Db) ClearDB() error {
	models := slices.Clone(d.models)
	slices.Reverse(models)
	for _, m := range models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to clear %T: %w", m, err)
		}
	}
	return nil
}

// Count returns the number of rows in table.
func (d *Db) Count(table string) (int64, error) {
	var n int64
	err := d.DbConn.Table(table).Count(&n).Error
	return n, err
}

// CountWhere returns the number of rows in table whose columns equal values.
func (d *Db) CountWhere(table string, values map[string]any) (int64, error) {
	var n int64
	err := d.DbConn.Table(table).Where(values).Count(&n).Error
	return n, err
}
