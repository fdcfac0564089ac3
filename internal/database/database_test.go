package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

func TestOptionsDefaults(t *testing.T) {
	opts := (*Options)(nil).withDefaults()
	assert.Equal(t, logger.Error, opts.LogLevel)
	assert.Equal(t, 20, opts.MaxOpenConns)
	assert.Equal(t, 10, opts.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, opts.ConnMaxLifetime)
	assert.Equal(t, 10*time.Minute, opts.ConnMaxIdleTime)
	assert.False(t, opts.SkipMigrate)

	custom := &Options{MaxOpenConns: 5, SkipMigrate: true}
	got := custom.withDefaults()
	assert.Equal(t, 5, got.MaxOpenConns)
	assert.True(t, got.SkipMigrate)
	// the caller's options are not modified
	assert.Equal(t, 0, custom.MaxIdleConns)
}

func TestTableNamesCoverModels(t *testing.T) {
	var names []string
	for _, m := range Models() {
		tabler, ok := m.(schema.Tabler)
		if assert.True(t, ok) {
			names = append(names, tabler.TableName())
		}
	}
	assert.ElementsMatch(t, names, TableNames())
	// children are truncated before the revisions they reference
	assert.Equal(t, "revisions", TableNames()[len(TableNames())-1])
}
