package api

import (
	"net/url"
	"strconv"

	"github.com/everettroeth/vitalis-sub000/internal/domain"
)

// Query encoding keeps the omission rule: a key appears only when its
// filter value is set, so absence and explicit-empty stay distinguishable
// at the wire level.

func setStr(v url.Values, key, val string) {
	if val != "" {
		v.Set(key, val)
	}
}

func setInt(v url.Values, key string, val *int) {
	if val != nil {
		v.Set(key, strconv.Itoa(*val))
	}
}

func setBool(v url.Values, key string, val *bool) {
	if val != nil {
		v.Set(key, strconv.FormatBool(*val))
	}
}

func rangeQuery(f domain.RangeFilter) url.Values {
	v := url.Values{}
	setStr(v, "start_date", f.StartDate)
	setStr(v, "end_date", f.EndDate)
	setStr(v, "source", f.Source)
	setInt(v, "limit", f.Limit)
	return v
}

func panelQuery(f domain.PanelFilter) url.Values {
	v := url.Values{}
	setStr(v, "start_date", f.StartDate)
	setStr(v, "end_date", f.EndDate)
	setInt(v, "limit", f.Limit)
	return v
}

func trendQuery(f domain.TrendFilter) url.Values {
	v := url.Values{}
	setStr(v, "biomarker_id", f.BiomarkerID)
	setStr(v, "start_date", f.StartDate)
	setStr(v, "end_date", f.EndDate)
	setInt(v, "limit", f.Limit)
	return v
}

func biomarkerQuery(f domain.BiomarkerFilter) url.Values {
	v := url.Values{}
	setStr(v, "category", f.Category)
	return v
}

func measurementQuery(f domain.MeasurementFilter) url.Values {
	v := url.Values{}
	setStr(v, "type", f.Type)
	setStr(v, "start_date", f.StartDate)
	setStr(v, "end_date", f.EndDate)
	setInt(v, "limit", f.Limit)
	return v
}

func supplementQuery(f domain.SupplementFilter) url.Values {
	v := url.Values{}
	setBool(v, "active", f.Active)
	return v
}

func logQuery(f domain.LogFilter) url.Values {
	v := url.Values{}
	setStr(v, "start_date", f.StartDate)
	setStr(v, "end_date", f.EndDate)
	setInt(v, "limit", f.Limit)
	return v
}

func journalQuery(f domain.JournalFilter) url.Values {
	v := url.Values{}
	setStr(v, "start_date", f.StartDate)
	setStr(v, "end_date", f.EndDate)
	setInt(v, "limit", f.Limit)
	return v
}

func goalQuery(f domain.GoalFilter) url.Values {
	v := url.Values{}
	setStr(v, "metric", f.Metric)
	setBool(v, "active", f.Active)
	return v
}

func alertQuery(f domain.AlertFilter) url.Values {
	v := url.Values{}
	setBool(v, "acknowledged", f.Acknowledged)
	return v
}

func insightQuery(f domain.InsightFilter) url.Values {
	v := url.Values{}
	setStr(v, "category", f.Category)
	setBool(v, "unread", f.Unread)
	setInt(v, "limit", f.Limit)
	return v
}

func documentQuery(f domain.DocumentFilter) url.Values {
	v := url.Values{}
	setStr(v, "document_type", f.DocumentType)
	setStr(v, "parse_status", f.ParseStatus)
	setInt(v, "limit", f.Limit)
	return v
}

func entryQuery(f domain.EntryFilter) url.Values {
	v := url.Values{}
	setStr(v, "start_date", f.StartDate)
	setStr(v, "end_date", f.EndDate)
	setInt(v, "limit", f.Limit)
	return v
}
