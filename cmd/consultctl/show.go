package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dalemusser/consulthub/internal/app/system/badges"
	"github.com/dalemusser/consulthub/internal/app/system/timeouts"
	"github.com/spf13/cobra"
)

// Record kinds accepted by "show".
const (
	kindConsultation = "consultation"
	kindFeedback     = "feedback"
	kindGroup        = "group"
)

func newShowCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "show <consultation|feedback|group> <id>",
		Short:     "Print one record by id",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{kindConsultation, kindFeedback, kindGroup},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, id := args[0], args[1]

			ctx, cancel := context.WithTimeout(cmd.Context(), timeouts.Short())
			defer cancel()

			reader, closeFn, err := c.openCatalog(ctx)
			if err != nil {
				return err
			}
			defer closeFn()

			out := cmd.OutOrStdout()
			s := newStyles(out, c.color)

			switch kind {
			case kindConsultation, kindFeedback:
				n, err := strconv.Atoi(id)
				if err != nil {
					return fmt.Errorf("%s id must be a number, got %q", kind, id)
				}
				if kind == kindConsultation {
					m, err := reader.Consultation(ctx, n)
					if err != nil {
						return err
					}
					if done, err := writeData(out, c.format, m); done {
						return err
					}
					return writeFields(out, s, [][2]string{
						{"Title", m.Title},
						{"Description", m.Description},
						{"Group", m.Group},
						{"Status", s.badge(badges.ConsultationStatus(m.Status))},
						{"Priority", s.badge(badges.ConsultationPriority(m.Priority))},
						{"Period", m.StartDate + " - " + m.EndDate},
						{"Responses", fmt.Sprintf("%d/%d (%d%%)", m.Responses, m.TargetResponses, m.Progress())},
						{"Last activity", m.LastActivity},
					})
				}
				m, err := reader.FeedbackItem(ctx, n)
				if err != nil {
					return err
				}
				if done, err := writeData(out, c.format, m); done {
					return err
				}
				return writeFields(out, s, [][2]string{
					{"Document", m.DocumentTitle},
					{"Section", m.Section},
					{"From", fmt.Sprintf("%s (%s)", m.SubmittedBy, m.Role)},
					{"Status", s.badge(badges.FeedbackStatus(m.Status))},
					{"Priority", s.badge(badges.FeedbackPriority(m.Priority))},
					{"Category", s.badge(badges.FeedbackCategory(m.Category))},
					{"Helpful", strconv.Itoa(m.Helpful)},
					{"Submitted", m.Timestamp},
					{"Body", m.Body},
				})
			case kindGroup:
				g, err := reader.Group(ctx, id)
				if err != nil {
					return err
				}
				if done, err := writeData(out, c.format, g); done {
					return err
				}
				fields := [][2]string{
					{"Name", g.Name},
					{"Description", g.Description},
					{"Access", s.badge(badges.AccessLevel(g.AccessLevel))},
					{"Members", strconv.Itoa(g.MemberCount)},
					{"Active", strconv.Itoa(g.ActiveConsultations)},
					{"Last activity", g.LastActivity},
				}
				for _, m := range g.PreviewMembers() {
					fields = append(fields, [2]string{"Member", fmt.Sprintf("%s, %s <%s>", m.Name, m.Role, m.Email)})
				}
				if n := g.OverflowCount(); n > 0 {
					fields = append(fields, [2]string{"", fmt.Sprintf("+%d more", n)})
				}
				return writeFields(out, s, fields)
			default:
				return fmt.Errorf("unknown record kind %q (want consultation, feedback or group)", kind)
			}
		},
	}
}

// writeFields prints label/value pairs with the labels aligned.
func writeFields(out io.Writer, s styles, fields [][2]string) error {
	width := 0
	for _, f := range fields {
		if len(f[0]) > width {
			width = len(f[0])
		}
	}
	for _, f := range fields {
		if _, err := fmt.Fprintf(out, "%s  %s\n", s.title(fmt.Sprintf("%-*s", width, f[0])), f[1]); err != nil {
			return err
		}
	}
	return nil
}
