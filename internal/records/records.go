// Copyright (c) 2026 Asistencia Jóvenes. All rights reserved.

// Package records builds the per-event attendance views: every registered
// attendee grouped by life stage, with young adults split by sub-profile.
package records

import (
	"github.com/F0ch1s/asistencia-jovenes/internal/attendee"
)

// Row is one attendee line in a records view.
type Row struct {
	AttendeeID  string `json:"attendee_id"`
	DisplayName string `json:"display_name"`
	Age         int    `json:"age"`
	FirstTime   bool   `json:"first_time"`
}

// Group is one of the four disjoint buckets of a [Summary].
type Group struct {
	Label string `json:"label"`
	Count int    `json:"count"`
	Rows  []Row  `json:"rows"`
}

// Summary is the grouped attendance view for one event.
//
// The four groups are disjoint and, together with the dropped rows, cover
// every registration. Total counts only grouped rows.
type Summary struct {
	PreAdolescents Group `json:"pre_adolescents"`
	Adolescents    Group `json:"adolescents"`
	University     Group `json:"university"`
	Professionals  Group `json:"professionals"`
	Total          int   `json:"total"`
}

// Age band accepted into the view. The form admits any positive age, so
// out-of-band rows do exist; they are excluded here rather than misfiled
// under the classifier's pre-adolescent fall-through.
const (
	minAge = 11
	maxAge = 25
)

// Aggregate recomputes the grouped view from scratch.
//
// Rows are silently dropped when they cannot be grouped consistently:
//
//   - age outside the 11-25 band
//   - a young adult without a sub-profile
//   - a sub-profile on a non-young-adult
//
// Dropped rows are invisible in every group and in Total. The caller logs
// the drop count if it cares; the view itself never reports them.
func Aggregate(attendees []*attendee.Attendee) Summary {
	summary := Summary{
		PreAdolescents: Group{Label: "Pre-adolescents", Rows: []Row{}},
		Adolescents:    Group{Label: "Adolescents", Rows: []Row{}},
		University:     Group{Label: "University", Rows: []Row{}},
		Professionals:  Group{Label: "Professionals", Rows: []Row{}},
	}

	for _, a := range attendees {
		if a.Age < minAge || a.Age > maxAge {
			continue
		}

		category := attendee.ClassifyAge(a.Age)
		if !category.IsValidSubProfile(a.SubProfile) {
			continue
		}

		row := Row{
			AttendeeID:  a.ID,
			DisplayName: a.DisplayName(),
			Age:         a.Age,
			FirstTime:   a.FirstTime,
		}

		switch {
		case category == attendee.CategoryPreAdolescent:
			summary.PreAdolescents.append(row)
		case category == attendee.CategoryAdolescent:
			summary.Adolescents.append(row)
		case a.SubProfile == attendee.SubProfileUniversity:
			summary.University.append(row)
		default:
			summary.Professionals.append(row)
		}
		summary.Total++
	}

	return summary
}

func (g *Group) append(row Row) {
	g.Rows = append(g.Rows, row)
	g.Count++
}
