package printers

import (
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/folio/pkg/urgency"
)

var (
	calm, _  = colorful.Hex("#6cc3a0")
	alarm, _ = colorful.Hex("#e5484d")
	muted, _ = colorful.Hex("#8b8d98")
)

// tierHex blends from calm to alarm as a milestone gets closer to due.
func tierHex(t urgency.Tier) string {
	switch t {
	case urgency.Completed:
		return muted.Hex()
	case urgency.Overdue:
		return alarm.Hex()
	case urgency.Critical:
		return calm.BlendLab(alarm, 0.75).Clamped().Hex()
	case urgency.Soon:
		return calm.BlendLab(alarm, 0.4).Clamped().Hex()
	default:
		return calm.Hex()
	}
}

// tierRank orders tiers from least to most pressing.
func tierRank(t urgency.Tier) int {
	switch t {
	case urgency.Overdue:
		return 4
	case urgency.Critical:
		return 3
	case urgency.Soon:
		return 2
	case urgency.Normal:
		return 1
	default:
		return 0
	}
}

func (pp *PrettyPrint) tierStyle(t urgency.Tier) lipgloss.Style {
	s := lipgloss.NewStyle()
	if pp.Plain {
		return s
	}
	s = s.Foreground(lipgloss.Color(tierHex(t)))
	if t == urgency.Overdue {
		s = s.Bold(true)
	}
	return s
}
