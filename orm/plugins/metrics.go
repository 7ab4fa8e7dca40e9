package plugins

import (
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/initia-labs/bridgeinfo/metrics"
)

const startTimeKey = "metrics:start_time"

var tableFromSQL = regexp.MustCompile(`(?i)FROM\s+["\x60]?(\w+)["\x60]?`)

// MetricsPlugin is a GORM plugin that tracks database query metrics
type MetricsPlugin struct{}

func NewMetricsPlugin() *MetricsPlugin {
	return &MetricsPlugin{}
}

func (p *MetricsPlugin) Name() string {
	return "MetricsPlugin"
}

// Initialize hooks the read paths; the store never writes through gorm at runtime.
func (p *MetricsPlugin) Initialize(db *gorm.DB) error {
	if err := db.Callback().Query().Before("*").Register("metrics:before_query", p.before); err != nil {
		return err
	}
	if err := db.Callback().Query().After("*").Register("metrics:after_query", p.after); err != nil {
		return err
	}
	if err := db.Callback().Row().Before("*").Register("metrics:before_row", p.before); err != nil {
		return err
	}
	return db.Callback().Row().After("*").Register("metrics:after_row", p.after)
}

func (p *MetricsPlugin) before(db *gorm.DB) {
	db.Set(startTimeKey, time.Now())
}

func (p *MetricsPlugin) after(db *gorm.DB) {
	startTime, exists := db.Get(startTimeKey)
	if !exists {
		return
	}
	start, ok := startTime.(time.Time)
	if !ok {
		return
	}

	status := "success"
	if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
		status = "error"
	}

	metrics.DBQueriesTotal().WithLabelValues(getOperationType(db), status).Inc()
	metrics.DBQueryDuration().WithLabelValues(getOperationType(db), getTableName(db)).Observe(time.Since(start).Seconds())
}

// getOperationType extracts the operation type from the SQL statement
func getOperationType(db *gorm.DB) string {
	if db.Statement == nil || db.Statement.SQL.String() == "" {
		return "UNKNOWN"
	}

	sql := strings.ToUpper(strings.TrimSpace(db.Statement.SQL.String()))
	if i := strings.IndexAny(sql, " \n\t"); i > 0 {
		sql = sql[:i]
	}
	switch sql {
	case "SELECT", "INSERT", "UPDATE", "DELETE":
		return sql
	default:
		return "OTHER"
	}
}

// getTableName extracts the table name from the GORM statement
func getTableName(db *gorm.DB) string {
	if db.Statement == nil {
		return "unknown"
	}
	if db.Statement.Table != "" {
		return db.Statement.Table
	}
	if m := tableFromSQL.FindStringSubmatch(db.Statement.SQL.String()); len(m) > 1 {
		return m[1]
	}
	return "unknown"
}
