package store

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"oktodeck-backend/internal/models"
)

// stockWrittenMarker records that the stock collection has been written at
// least once. Row count alone cannot tell a deliberately emptied table
// from a first boot, and only the latter may fall back to the seed catalog.
const stockWrittenMarker = "stock_written"

// GormBackend mirrors the collections into Postgres. Collection saves run
// as replace-all transactions: the dataset is low hundreds of rows and the
// store's explicit positions stay the single source of ordering truth.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (b *GormBackend) LoadStock() ([]models.StockItem, bool, error) {
	var marker models.MetaEntry
	err := b.db.Where("name = ?", stockWrittenMarker).First(&marker).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []models.StockItem
	if err := b.db.Order("position").Find(&items).Error; err != nil {
		return nil, false, err
	}
	return items, true, nil
}

func (b *GormBackend) SaveStock(items []models.StockItem) error {
	return b.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.StockItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		marker := models.MetaEntry{Name: stockWrittenMarker, Value: "true"}
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&marker).Error
	})
}

func (b *GormBackend) LoadUsage() ([]models.UsageEntry, error) {
	var entries []models.UsageEntry
	err := b.db.Order("id").Find(&entries).Error
	return entries, err
}

func (b *GormBackend) AppendUsage(e models.UsageEntry) error {
	return b.db.Create(&e).Error
}

func (b *GormBackend) SaveUsage(entries []models.UsageEntry) error {
	return replaceAll(b.db, &models.UsageEntry{}, entries)
}

func (b *GormBackend) LoadNotifications() ([]models.Notification, error) {
	var ns []models.Notification
	err := b.db.Order("timestamp").Find(&ns).Error
	return ns, err
}

func (b *GormBackend) SaveNotifications(ns []models.Notification) error {
	return replaceAll(b.db, &models.Notification{}, ns)
}

func (b *GormBackend) LoadCustomBoxes() ([]string, error) {
	var boxes []models.CustomBox
	if err := b.db.Find(&boxes).Error; err != nil {
		return nil, err
	}
	names := make([]string, 0, len(boxes))
	for _, bx := range boxes {
		names = append(names, bx.Name)
	}
	return names, nil
}

func (b *GormBackend) SaveCustomBoxes(names []string) error {
	boxes := make([]models.CustomBox, 0, len(names))
	for _, n := range names {
		boxes = append(boxes, models.CustomBox{Name: n})
	}
	return replaceAll(b.db, &models.CustomBox{}, boxes)
}

func (b *GormBackend) LoadDeckOrder() ([]models.DeckOrderItem, error) {
	var items []models.DeckOrderItem
	err := b.db.Order("position").Find(&items).Error
	return items, err
}

func (b *GormBackend) SaveDeckOrder(items []models.DeckOrderItem) error {
	return replaceAll(b.db, &models.DeckOrderItem{}, items)
}

func (b *GormBackend) LoadTasks() ([]models.Task, error) {
	var tasks []models.Task
	err := b.db.Order("position").Find(&tasks).Error
	return tasks, err
}

func (b *GormBackend) SaveTasks(tasks []models.Task) error {
	return replaceAll(b.db, &models.Task{}, tasks)
}

func replaceAll[T any](db *gorm.DB, model any, rows []T) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
