package redisx

import "time"

const (
	// Cache laporan harian: cache:report:daily:{date} -> JSON
	KeyDailyReport = "cache:report:daily:%s"

	// Cache ringkasan AI per tanggal: cache:ai:summary:{date} -> text
	KeyAISummary = "cache:ai:summary:%s"

	// Cache ide menu, keyed by a hash of the current menu names.
	KeyMenuIdeas = "cache:ai:ideas:%s"
)

var (
	TTLReportCache = 5 * time.Minute
	TTLAICache     = time.Hour
)
