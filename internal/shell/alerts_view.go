package shell

import (
	"context"
	"fmt"
)

// viewAlerts lists every alert, newest first, then offers to resolve one.
func (s *Shell) viewAlerts(ctx context.Context) {
	alerts, err := s.alrts.List(ctx)
	if err != nil {
		s.report(ctx, "view alerts", err)
		return
	}

	fmt.Fprintln(s.out, "\nAlerts:")
	s.renderAlerts(alerts)

	alertID, err := s.promptInt("\nEnter alert ID to mark as resolved (0 to skip): ")
	if err != nil {
		if err == errInputClosed {
			return
		}
		s.report(ctx, "resolve alert", err)
		return
	}
	if alertID <= 0 {
		return
	}

	if err := s.alrts.Resolve(ctx, alertID); err != nil {
		s.report(ctx, "resolve alert", err)
		return
	}
	fmt.Fprintln(s.out, "Alert marked as resolved")
	s.logg.Info(s.logg.WithField(ctx, "alert_id", alertID), "alert resolved")
}
