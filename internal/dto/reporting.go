package dto

import (
	"time"
)

// ReportParams lets a caller evaluate a report as of another day than today.
type ReportParams struct {
	AsOf  string `form:"asOf" binding:"omitempty,datetime=2006-01-02"`
	Query string `form:"q" binding:"max=100"`
}

// Today returns AsOf when set, otherwise now's date.
func (p ReportParams) Today(now time.Time) (time.Time, error) {
	if p.AsOf == "" {
		return now, nil
	}
	return ParseDate(p.AsOf)
}
