package services

import "gorm.io/gorm"

// txRunner выполняет fn в транзакции. В юнит-тестах подменяется на прямой вызов.
type txRunner func(db *gorm.DB, fn func(tx *gorm.DB) error) error

func gormTransaction(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}
