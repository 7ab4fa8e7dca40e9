package types

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

type Table struct {
	Model interface{}
	Name  string
}

// StoredEntry is one value of the key-value store. Key holds the ordered
// parts of a composite key, e.g. {"econConf", "1"}.
type StoredEntry struct {
	Key       pq.StringArray  `gorm:"type:text[];primaryKey"`
	Value     json.RawMessage `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time       `gorm:"type:timestamptz;autoUpdateTime"`
}

func (StoredEntry) TableName() string {
	return "kv_entry"
}

// AllTables lists every model managed by migrations.
var AllTables = []Table{
	{Model: &StoredEntry{}, Name: StoredEntry{}.TableName()},
}
