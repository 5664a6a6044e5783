package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/normalize"
	"github.com/dalemusser/consulthub/internal/app/system/search"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/dalemusser/consulthub/internal/domain/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type listFlags struct {
	status string
	q      string
}

// resolveStatus maps a --status value to a filter status. Empty and "all"
// mean no filter. Unlike the web tabs, an unknown value is an error.
func resolveStatus(defs []search.TabDef, raw string) (string, error) {
	v := normalize.Status(raw)
	if v == "" || v == search.TabAll {
		return "", nil
	}
	if search.ResolveTab(defs, v) == search.TabAll {
		valid := make([]string, 0, len(defs))
		for _, d := range defs {
			valid = append(valid, d.Value)
		}
		return "", fmt.Errorf("unknown status %q (want one of %s)", raw, strings.Join(valid, ", "))
	}
	return v, nil
}

type consultationRecord struct {
	ID           int    `json:"id" yaml:"id"`
	Title        string `json:"title" yaml:"title"`
	Group        string `json:"group" yaml:"group"`
	Status       string `json:"status" yaml:"status"`
	StatusTone   string `json:"status_tone" yaml:"status_tone"`
	Priority     string `json:"priority" yaml:"priority"`
	PriorityTone string `json:"priority_tone" yaml:"priority_tone"`
	StartDate    string `json:"start_date" yaml:"start_date"`
	EndDate      string `json:"end_date" yaml:"end_date"`
	Responses    int    `json:"responses" yaml:"responses"`
	Target       int    `json:"target_responses" yaml:"target_responses"`
	Progress     int    `json:"progress" yaml:"progress"`
	LastActivity string `json:"last_activity" yaml:"last_activity"`
}

func newConsultationsCmd(c *cli) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:     "consultations",
		Aliases: []string{"cons"},
		Short:   "List consultations, filtered by status and search term",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := resolveStatus(search.ConsultationTabs, f.status)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Medium())
			defer cancel()

			reader, closeFn, err := c.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			all, err := reader.Consultations(ctx)
			if err != nil {
				return fmt.Errorf("load consultations: %w", err)
			}
			shown := search.Filter(all, search.Consultations, status, f.q)
			c.logger.Debug("consultations filtered",
				zap.String("status", status),
				zap.String("q", f.q),
				zap.Int("results", len(shown)))

			records := make([]consultationRecord, 0, len(shown))
			for _, m := range shown {
				records = append(records, consultationRecord{
					ID:           m.ID,
					Title:        m.Title,
					Group:        m.Group,
					Status:       m.Status,
					StatusTone:   string(badges.ConsultationStatus(m.Status).Tone),
					Priority:     m.Priority,
					PriorityTone: string(badges.ConsultationPriority(m.Priority).Tone),
					StartDate:    m.StartDate,
					EndDate:      m.EndDate,
					Responses:    m.Responses,
					Target:       m.TargetResponses,
					Progress:     m.Progress(),
					LastActivity: m.LastActivity,
				})
			}

			out := cmd.OutOrStdout()
			if done, err := writeData(out, c.format, records); done {
				return err
			}
			s := newStyles(out, c.color)
			rows := make([][]string, 0, len(shown))
			for _, m := range shown {
				rows = append(rows, []string{
					strconv.Itoa(m.ID),
					m.Title,
					m.Group,
					s.badge(badges.ConsultationStatus(m.Status)),
					s.badge(badges.ConsultationPriority(m.Priority)),
					fmt.Sprintf("%d/%d (%d%%)", m.Responses, m.TargetResponses, m.Progress()),
					m.EndDate,
				})
			}
			return writeTable(out, s,
				[]string{"ID", "Title", "Group", "Status", "Priority", "Responses", "Ends"},
				rows,
				fmt.Sprintf("%d of %d consultations", len(shown), len(all)))
		},
	}
	cmd.Flags().StringVar(&f.status, "status", "", "active, review, draft, archived or all")
	cmd.Flags().StringVarP(&f.q, "q", "q", "", "search title, description and group")
	return cmd
}

type feedbackRecord struct {
	ID            int    `json:"id" yaml:"id"`
	DocumentTitle string `json:"document_title" yaml:"document_title"`
	Section       string `json:"section" yaml:"section"`
	SubmittedBy   string `json:"submitted_by" yaml:"submitted_by"`
	Status        string `json:"status" yaml:"status"`
	StatusTone    string `json:"status_tone" yaml:"status_tone"`
	Priority      string `json:"priority" yaml:"priority"`
	PriorityTone  string `json:"priority_tone" yaml:"priority_tone"`
	Category      string `json:"category" yaml:"category"`
	CategoryTone  string `json:"category_tone" yaml:"category_tone"`
	Helpful       int    `json:"helpful" yaml:"helpful"`
	Timestamp     string `json:"timestamp" yaml:"timestamp"`
}

func newFeedbackCmd(c *cli) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:     "feedback",
		Aliases: []string{"fb"},
		Short:   "List feedback, filtered by status and search term",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := resolveStatus(search.FeedbackTabs, f.status)
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Medium())
			defer cancel()

			reader, closeFn, err := c.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			all, err := reader.Feedback(ctx)
			if err != nil {
				return fmt.Errorf("load feedback: %w", err)
			}
			shown := search.Filter(all, search.Feedback, status, f.q)

			records := make([]feedbackRecord, 0, len(shown))
			for _, m := range shown {
				records = append(records, feedbackRecord{
					ID:            m.ID,
					DocumentTitle: m.DocumentTitle,
					Section:       m.Section,
					SubmittedBy:   m.SubmittedBy,
					Status:        m.Status,
					StatusTone:    string(badges.FeedbackStatus(m.Status).Tone),
					Priority:      m.Priority,
					PriorityTone:  string(badges.FeedbackPriority(m.Priority).Tone),
					Category:      m.Category,
					CategoryTone:  string(badges.FeedbackCategory(m.Category).Tone),
					Helpful:       m.Helpful,
					Timestamp:     m.Timestamp,
				})
			}

			out := cmd.OutOrStdout()
			if done, err := writeData(out, c.format, records); done {
				return err
			}
			s := newStyles(out, c.color)
			rows := make([][]string, 0, len(shown))
			for _, m := range shown {
				rows = append(rows, []string{
					strconv.Itoa(m.ID),
					m.DocumentTitle,
					m.Section,
					m.SubmittedBy,
					s.badge(badges.FeedbackStatus(m.Status)),
					s.badge(badges.FeedbackPriority(m.Priority)),
					s.badge(badges.FeedbackCategory(m.Category)),
				})
			}
			pending := search.Count(all, search.Feedback, models.FeedbackPending, f.q)
			return writeTable(out, s,
				[]string{"ID", "Document", "Section", "From", "Status", "Priority", "Category"},
				rows,
				fmt.Sprintf("%d of %d feedback items, %d pending", len(shown), len(all), pending))
		},
	}
	cmd.Flags().StringVar(&f.status, "status", "", "pending, under-review, reviewed or all")
	cmd.Flags().StringVarP(&f.q, "q", "q", "", "search document, section, body and submitter")
	return cmd
}

type groupRecord struct {
	ID                  string `json:"id" yaml:"id"`
	Name                string `json:"name" yaml:"name"`
	AccessLevel         string `json:"access_level" yaml:"access_level"`
	AccessTone          string `json:"access_tone" yaml:"access_tone"`
	MemberCount         int    `json:"member_count" yaml:"member_count"`
	ActiveConsultations int    `json:"active_consultations" yaml:"active_consultations"`
	LastActivity        string `json:"last_activity" yaml:"last_activity"`
}

func newGroupsCmd(c *cli) *cobra.Command {
	var q string
	cmd := &cobra.Command{
		Use:   "groups",
		Short: "List consultation groups, filtered by search term",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Medium())
			defer cancel()

			reader, closeFn, err := c.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			all, err := reader.Groups(ctx)
			if err != nil {
				return fmt.Errorf("load groups: %w", err)
			}
			shown := search.Filter(all, search.Groups, "", q)

			records := make([]groupRecord, 0, len(shown))
			for _, g := range shown {
				records = append(records, groupRecord{
					ID:                  g.ID,
					Name:                g.Name,
					AccessLevel:         g.AccessLevel,
					AccessTone:          string(badges.AccessLevel(g.AccessLevel).Tone),
					MemberCount:         g.MemberCount,
					ActiveConsultations: g.ActiveConsultations,
					LastActivity:        g.LastActivity,
				})
			}

			out := cmd.OutOrStdout()
			if done, err := writeData(out, c.format, records); done {
				return err
			}
			s := newStyles(out, c.color)
			rows := make([][]string, 0, len(shown))
			for _, g := range shown {
				rows = append(rows, []string{
					g.ID,
					g.Name,
					s.badge(badges.AccessLevel(g.AccessLevel)),
					strconv.Itoa(g.MemberCount),
					strconv.Itoa(g.ActiveConsultations),
				})
			}
			return writeTable(out, s,
				[]string{"ID", "Name", "Access", "Members", "Active"},
				rows,
				fmt.Sprintf("%d of %d groups", len(shown), len(all)))
		},
	}
	cmd.Flags().StringVarP(&q, "q", "q", "", "search name and description")
	return cmd
}
